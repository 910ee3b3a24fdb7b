package company

import (
	"context"

	domco "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/company"
)

// Repository defines the storage contract for the domain lookup.
type Repository interface {
	ByDomainPrefix(ctx context.Context, key string) (domco.Company, error)
}
