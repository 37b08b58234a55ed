package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type placeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *placeRepository) ListWithOwners(ctx context.Context, categories []string) ([]*domain.PlaceWithOwner, error) {
	query := `
		SELECT
			p.id, p.lat, p.lng, p.title, p.address, p.category,
			p.created_at, p.updated_at,
			c.name AS company_name, c.website AS company_website, c.email AS company_email,
			i.first_name, i.last_name, i.email AS individual_email
		FROM places p
		LEFT JOIN companies c ON c.place_id = p.id
		LEFT JOIN individuals i ON i.place_id = p.id
	`

	args := []interface{}{}
	if len(categories) > 0 {
		query += " WHERE p.category = ANY($1)"
		args = append(args, pq.Array(categories))
	}
	query += " ORDER BY p.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list places with owners", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var result []*domain.PlaceWithOwner
	for rows.Next() {
		var (
			p                               domain.Place
			companyName, companyWebsite     sql.NullString
			companyEmail                    sql.NullString
			firstName, lastName, indivEmail sql.NullString
		)

		err := rows.Scan(
			&p.ID, &p.Lat, &p.Lng, &p.Title, &p.Address, &p.Category,
			&p.CreatedAt, &p.UpdatedAt,
			&companyName, &companyWebsite, &companyEmail,
			&firstName, &lastName, &indivEmail,
		)
		if err != nil {
			r.logger.Error("Failed to scan place row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}

		// Resolve the owner variant explicitly. A place has at most one
		// owner; a company row wins if both somehow exist.
		var owner domain.OwnerInfo
		switch {
		case companyName.Valid:
			owner = domain.CompanyOwner{
				Name:    companyName.String,
				Website: companyWebsite.String,
				Email:   companyEmail.String,
			}
		case firstName.Valid:
			owner = domain.IndividualOwner{
				FirstName: firstName.String,
				LastName:  lastName.String,
				Email:     indivEmail.String,
			}
		}

		result = append(result, &domain.PlaceWithOwner{Place: p, Owner: owner})
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate place rows", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return result, nil
}

func (r *placeRepository) ClearAll(ctx context.Context) error {
	// Owners first, then the places they reference.
	err := r.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		for _, stmt := range []string{
			"DELETE FROM companies",
			"DELETE FROM individuals",
			"DELETE FROM places",
		} {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to clear directory data", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
