// Package company implements the lookup-by-domain use case.
package company

import (
	"context"
	"fmt"

	"github.com/LoaiAlaa24/fetch-companies-data/internal/domain"
	domco "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/company"
	"github.com/LoaiAlaa24/fetch-companies-data/internal/domain/website"
)

// Service resolves companies by website domain.
type Service struct {
	repo Repository
}

// New creates a lookup service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// LookupByDomain normalizes the raw domain and returns the first company
// whose stored website matches it as a prefix. An input that normalizes to
// the empty string is rejected before the store is touched.
func (s *Service) LookupByDomain(ctx context.Context, rawDomain string) (domco.Company, error) {
	key := website.Normalize(rawDomain)
	if key == "" {
		return domco.Company{}, fmt.Errorf("%w: invalid domain %q", domain.ErrInvalidInput, rawDomain)
	}

	c, err := s.repo.ByDomainPrefix(ctx, key)
	if err != nil {
		return domco.Company{}, fmt.Errorf("lookup domain %q: %w", key, err)
	}
	return c, nil
}
