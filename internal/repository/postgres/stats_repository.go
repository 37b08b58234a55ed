package postgres

import (
	"context"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *statsRepository) GetStats(ctx context.Context) (*domain.DirectoryStats, error) {
	stats := &domain.DirectoryStats{
		PlacesByCategory: make(map[string]int),
		LastUpdated:      time.Now().UTC(),
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT category, COUNT(*) FROM places GROUP BY category",
	)
	if err != nil {
		r.logger.Error("Failed to count places by category", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			r.logger.Error("Failed to scan category count", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		stats.PlacesByCategory[domain.Category(category).DisplayLabel()] = count
		stats.TotalPlaces += count
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate category counts", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	err = r.db.GetContext(ctx, &stats.TotalCompanies, "SELECT COUNT(*) FROM companies")
	if err != nil {
		r.logger.Error("Failed to count companies", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	err = r.db.GetContext(ctx, &stats.TotalIndividuals, "SELECT COUNT(*) FROM individuals")
	if err != nil {
		r.logger.Error("Failed to count individuals", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	err = r.db.GetContext(ctx, &stats.OrphanedPlaces, `
		SELECT COUNT(*)
		FROM places p
		WHERE NOT EXISTS (SELECT 1 FROM companies c WHERE c.place_id = p.id)
		  AND NOT EXISTS (SELECT 1 FROM individuals i WHERE i.place_id = p.id)`,
	)
	if err != nil {
		r.logger.Error("Failed to count orphaned places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stats, nil
}
