package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type companyRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewCompanyRepository(db *DB) repository.CompanyRepository {
	return &companyRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *companyRepository) CreateWithPlace(ctx context.Context, company *domain.Company, place *domain.Place) error {
	err := r.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := insertPlace(ctx, tx, place); err != nil {
			return err
		}

		company.PlaceID = place.ID
		return tx.QueryRowContext(ctx, `
			INSERT INTO companies (place_id, name, website, email)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at`,
			company.PlaceID, company.Name, company.Website, company.Email,
		).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	})

	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrOwnerConflict
		}
		r.logger.Error("Failed to create company with place", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE companies
		SET name = $1, website = $2, email = $3, updated_at = NOW()
		WHERE id = $4`,
		company.Name, company.Website, company.Email, company.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update company", zap.Int64("id", company.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read update result", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrCompanyNotFound
	}

	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var company domain.Company
	err := r.db.GetContext(ctx, &company, `
		SELECT id, place_id, name, website, email, created_at, updated_at
		FROM companies
		WHERE id = $1`, id,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrCompanyNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get company by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &company, nil
}

func (r *companyRepository) DeleteWithPlace(ctx context.Context, id int64) (int64, error) {
	var placeID int64
	err := r.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowContext(ctx,
			"DELETE FROM companies WHERE id = $1 RETURNING place_id", id,
		).Scan(&placeID)
		if err == sql.ErrNoRows {
			return errors.ErrCompanyNotFound
		}
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, "DELETE FROM places WHERE id = $1", placeID)
		return err
	})

	if err == errors.ErrCompanyNotFound {
		return 0, err
	}
	if err != nil {
		r.logger.Error("Failed to delete company", zap.Int64("id", id), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return placeID, nil
}

// insertPlace writes the place row inside the caller's transaction and
// fills the generated fields.
func insertPlace(ctx context.Context, tx *sqlx.Tx, place *domain.Place) error {
	return tx.QueryRowContext(ctx, `
		INSERT INTO places (lat, lng, title, address, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		place.Lat, place.Lng, place.Title, place.Address, place.Category,
	).Scan(&place.ID, &place.CreatedAt, &place.UpdatedAt)
}
