// Package stats implements the aggregate statistics use case.
package stats

import (
	"context"
	"fmt"

	domco "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/company"
)

// Service reports table-wide statistics.
type Service struct {
	repo Repository
}

// New creates a stats service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the current aggregate statistics.
func (s *Service) Get(ctx context.Context) (domco.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return domco.Stats{}, fmt.Errorf("collect statistics: %w", err)
	}
	return stats, nil
}
