// Package fuzzy implements the fuzzy name-match use case.
package fuzzy

import (
	"context"
	"fmt"
	"sort"

	domco "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/company"
	domsearch "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/search"
	"github.com/LoaiAlaa24/fetch-companies-data/internal/domain/similarity"
)

// Service ranks companies by name similarity against a query string.
type Service struct {
	repo Repository
}

// New creates a fuzzy-match service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Match scores every named company against the query, keeps those at or
// above the confidence threshold, and returns at most Limit matches sorted
// by confidence descending. The sort is stable over the id-ordered candidate
// set, so equal confidences rank by ascending id.
func (s *Service) Match(ctx context.Context, params domsearch.FuzzyParams) ([]domco.FuzzyMatch, error) {
	candidates, err := s.repo.Candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	matches := make([]domco.FuzzyMatch, 0, len(candidates))
	for _, c := range candidates {
		if c.Name == nil {
			continue
		}
		confidence := similarity.Confidence(similarity.Trigram(params.Name(), *c.Name))
		if confidence >= params.Confidence() {
			matches = append(matches, domco.FuzzyMatch{Company: c, Confidence: confidence})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	if len(matches) > params.Limit() {
		matches = matches[:params.Limit()]
	}
	return matches, nil
}
