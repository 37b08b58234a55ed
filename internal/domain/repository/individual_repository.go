package repository

import (
	"context"

	"github.com/places-directory/internal/domain"
)

// IndividualRepository mirrors CompanyRepository for individual owners.
type IndividualRepository interface {
	CreateWithPlace(ctx context.Context, individual *domain.Individual, place *domain.Place) error

	Update(ctx context.Context, individual *domain.Individual) error

	GetByID(ctx context.Context, id int64) (*domain.Individual, error)

	DeleteWithPlace(ctx context.Context, id int64) (int64, error)
}
