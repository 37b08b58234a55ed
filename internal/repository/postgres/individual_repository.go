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

type individualRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewIndividualRepository(db *DB) repository.IndividualRepository {
	return &individualRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *individualRepository) CreateWithPlace(ctx context.Context, individual *domain.Individual, place *domain.Place) error {
	err := r.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := insertPlace(ctx, tx, place); err != nil {
			return err
		}

		individual.PlaceID = place.ID
		return tx.QueryRowContext(ctx, `
			INSERT INTO individuals (place_id, first_name, last_name, email)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at`,
			individual.PlaceID, individual.FirstName, individual.LastName, individual.Email,
		).Scan(&individual.ID, &individual.CreatedAt, &individual.UpdatedAt)
	})

	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrOwnerConflict
		}
		r.logger.Error("Failed to create individual with place", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *individualRepository) Update(ctx context.Context, individual *domain.Individual) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE individuals
		SET first_name = $1, last_name = $2, email = $3, updated_at = NOW()
		WHERE id = $4`,
		individual.FirstName, individual.LastName, individual.Email, individual.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update individual", zap.Int64("id", individual.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read update result", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrIndividualNotFound
	}

	return nil
}

func (r *individualRepository) GetByID(ctx context.Context, id int64) (*domain.Individual, error) {
	var individual domain.Individual
	err := r.db.GetContext(ctx, &individual, `
		SELECT id, place_id, first_name, last_name, email, created_at, updated_at
		FROM individuals
		WHERE id = $1`, id,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrIndividualNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get individual by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &individual, nil
}

func (r *individualRepository) DeleteWithPlace(ctx context.Context, id int64) (int64, error) {
	var placeID int64
	err := r.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowContext(ctx,
			"DELETE FROM individuals WHERE id = $1 RETURNING place_id", id,
		).Scan(&placeID)
		if err == sql.ErrNoRows {
			return errors.ErrIndividualNotFound
		}
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, "DELETE FROM places WHERE id = $1", placeID)
		return err
	})

	if err == errors.ErrIndividualNotFound {
		return 0, err
	}
	if err != nil {
		r.logger.Error("Failed to delete individual", zap.Int64("id", id), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return placeID, nil
}
