package repository

import (
	"context"

	"github.com/places-directory/internal/domain"
)

// StatsRepository computes aggregate counts over the directory.
type StatsRepository interface {
	GetStats(ctx context.Context) (*domain.DirectoryStats, error)
}
