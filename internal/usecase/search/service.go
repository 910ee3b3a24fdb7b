// Package search implements the filtered company search use case.
package search

import (
	"context"
	"fmt"

	domco "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/company"
	domsearch "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/search"
)

// Service runs filtered, paginated company searches.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search returns one page of companies for an already-validated filter set.
// Params carry their own invariants, so anything reaching the repository is
// within bounds.
func (s *Service) Search(ctx context.Context, params domsearch.Params) ([]domco.Company, error) {
	companies, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	return companies, nil
}
