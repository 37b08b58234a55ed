package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewPlaceRepositoryForTest creates a place repository with test database and logger
func NewPlaceRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PlaceRepository {
	return postgres.NewPlaceRepository(NewDBForTest(db, logger))
}

// NewCompanyRepositoryForTest creates a company repository with test database and logger
func NewCompanyRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CompanyRepository {
	return postgres.NewCompanyRepository(NewDBForTest(db, logger))
}

// NewIndividualRepositoryForTest creates an individual repository with test database and logger
func NewIndividualRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.IndividualRepository {
	return postgres.NewIndividualRepository(NewDBForTest(db, logger))
}

// NewAPIKeyRepositoryForTest creates an API key repository with test database and logger
func NewAPIKeyRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.APIKeyRepository {
	return postgres.NewAPIKeyRepository(NewDBForTest(db, logger))
}

// NewStatsRepositoryForTest creates a stats repository with test database and logger
func NewStatsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatsRepository {
	return postgres.NewStatsRepository(NewDBForTest(db, logger))
}
