package search

import (
	"context"

	domco "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/company"
	domsearch "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/search"
)

// Repository defines the storage contract for filtered search.
type Repository interface {
	Search(ctx context.Context, params domsearch.Params) ([]domco.Company, error)
}
