// Package search defines validated query parameters for the company
// listing operations.
package search

import (
	"fmt"

	"github.com/LoaiAlaa24/fetch-companies-data/internal/domain"
)

// Pagination limits.
const (
	DefaultLimit  = 10
	MinLimit      = 1
	MaxLimit      = 100
	DefaultOffset = 0
)

// Params is a validated filtered-search request. Empty filter strings mean
// "no filter"; the zero filter set matches all rows.
type Params struct {
	country  string
	name     string
	industry string
	limit    int
	offset   int
}

// NewParams validates search parameters. Out-of-range limit/offset are
// rejected, not clamped, so a violating request never reaches the store.
func NewParams(country, name, industry string, limit, offset int) (Params, error) {
	if limit < MinLimit || limit > MaxLimit {
		return Params{}, fmt.Errorf("%w: limit must be between %d and %d, got %d",
			domain.ErrInvalidInput, MinLimit, MaxLimit, limit)
	}
	if offset < 0 {
		return Params{}, fmt.Errorf("%w: offset must be >= 0, got %d",
			domain.ErrInvalidInput, offset)
	}

	return Params{
		country:  country,
		name:     name,
		industry: industry,
		limit:    limit,
		offset:   offset,
	}, nil
}

// Country returns the exact-match country filter ("" = unfiltered).
func (p Params) Country() string { return p.country }

// Name returns the substring name filter ("" = unfiltered).
func (p Params) Name() string { return p.name }

// Industry returns the substring industry filter ("" = unfiltered).
func (p Params) Industry() string { return p.industry }

// Limit returns the page size.
func (p Params) Limit() int { return p.limit }

// Offset returns the page offset.
func (p Params) Offset() int { return p.offset }
