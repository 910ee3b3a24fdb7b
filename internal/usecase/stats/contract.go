package stats

import (
	"context"

	domco "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/company"
)

// Repository defines the storage contract for aggregate statistics.
type Repository interface {
	Stats(ctx context.Context) (domco.Stats, error)
}
