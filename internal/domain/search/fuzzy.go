package search

import (
	"fmt"

	"github.com/LoaiAlaa24/fetch-companies-data/internal/domain"
)

// DefaultConfidence is the default fuzzy-match threshold percentage.
const DefaultConfidence = 90.0

// FuzzyParams is a validated fuzzy-search request.
type FuzzyParams struct {
	name       string
	confidence float64
	limit      int
}

// NewFuzzyParams validates fuzzy-search parameters. The name is required and
// the confidence threshold must lie in [0,100].
func NewFuzzyParams(name string, confidence float64, limit int) (FuzzyParams, error) {
	if name == "" {
		return FuzzyParams{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if confidence < 0 || confidence > 100 {
		return FuzzyParams{}, fmt.Errorf("%w: confidence must be between 0 and 100, got %v",
			domain.ErrInvalidInput, confidence)
	}
	if limit < MinLimit || limit > MaxLimit {
		return FuzzyParams{}, fmt.Errorf("%w: limit must be between %d and %d, got %d",
			domain.ErrInvalidInput, MinLimit, MaxLimit, limit)
	}

	return FuzzyParams{name: name, confidence: confidence, limit: limit}, nil
}

// Name returns the query name.
func (p FuzzyParams) Name() string { return p.name }

// Confidence returns the minimum confidence percentage.
func (p FuzzyParams) Confidence() float64 { return p.confidence }

// Limit returns the maximum number of matches to return.
func (p FuzzyParams) Limit() int { return p.limit }
