package repository

import (
	"context"

	"github.com/places-directory/internal/domain"
)

// PlaceRepository defines read and bulk operations over places.
type PlaceRepository interface {
	// ListWithOwners returns places LEFT JOINed against both owner
	// tables, ordered by id, optionally restricted to the given
	// categories. The proximity pipeline filters and sorts the result in
	// memory.
	ListWithOwners(ctx context.Context, categories []string) ([]*domain.PlaceWithOwner, error)

	// ClearAll deletes companies, individuals and then places, in that
	// dependency order, inside one transaction.
	ClearAll(ctx context.Context) error
}
