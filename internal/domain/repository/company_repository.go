package repository

import (
	"context"

	"github.com/places-directory/internal/domain"
)

// CompanyRepository defines persistence for company owners. Multi-row
// operations are transactional: either both the place and the company row
// are written, or neither is.
type CompanyRepository interface {
	// CreateWithPlace inserts the place and then the company referencing
	// it, setting both generated ids on success.
	CreateWithPlace(ctx context.Context, company *domain.Company, place *domain.Place) error

	// Update mutates owner fields only; the linked place is not touched.
	Update(ctx context.Context, company *domain.Company) error

	GetByID(ctx context.Context, id int64) (*domain.Company, error)

	// DeleteWithPlace removes the company and its place, returning the
	// deleted place id.
	DeleteWithPlace(ctx context.Context, id int64) (int64, error)
}
