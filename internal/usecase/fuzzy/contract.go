package fuzzy

import (
	"context"

	domco "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/company"
)

// Repository supplies the candidate set for fuzzy matching: every company
// with a non-null name, in ascending id order.
type Repository interface {
	Candidates(ctx context.Context) ([]domco.Company, error)
}
