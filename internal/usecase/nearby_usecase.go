package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// NearbyUseCase is the proximity query engine: scan all places, compute
// great-circle distances, filter by radius, join owner data and emit
// distance-ordered rows.
type NearbyUseCase struct {
	places   repository.PlaceRepository
	cache    repository.CacheRepository
	logger   *zap.Logger
	cacheTTL time.Duration
}

func NewNearbyUseCase(
	places repository.PlaceRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *NearbyUseCase {
	return &NearbyUseCase{
		places:   places,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

func (uc *NearbyUseCase) Nearby(ctx context.Context, req dto.NearbyRequest) (*dto.NearbyResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadius(req.Radius) {
		return nil, errors.ErrInvalidRadius
	}

	// Category-filtered queries bypass the cache; the common unfiltered
	// query is the hot path.
	cacheable := len(req.Categories) == 0

	var version int64
	if cacheable {
		v, err := uc.cache.DataVersion(ctx)
		if err != nil {
			uc.logger.Warn("Data version lookup failed, skipping cache", zap.Error(err))
			cacheable = false
		} else {
			version = v
		}
	}

	if cacheable {
		if data, err := uc.cache.GetNearby(ctx, version, req.Lat, req.Lng, req.Radius); err == nil && data != nil {
			var cached dto.NearbyResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
			uc.logger.Warn("Failed to unmarshal cached nearby result", zap.Error(err))
		}
	}

	rows, err := uc.places.ListWithOwners(ctx, req.Categories)
	if err != nil {
		uc.logger.Error("Failed to load places for nearby query", zap.Error(err))
		return nil, err
	}

	results := make([]dto.NearbyPlace, 0, len(rows))
	for _, row := range rows {
		d := utils.HaversineDistance(req.Lat, req.Lng, row.Place.Lat, row.Place.Lng)
		if d > req.Radius {
			continue
		}
		results = append(results, shapeNearbyPlace(row, d))
	}

	// Ascending by distance; equal distances break ties on place id so
	// the order is deterministic.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].ID < results[j].ID
	})

	resp := &dto.NearbyResponse{
		Places: results,
		Total:  len(results),
	}

	if cacheable {
		if data, err := json.Marshal(resp); err == nil {
			if err := uc.cache.SetNearby(ctx, version, req.Lat, req.Lng, req.Radius, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache nearby result", zap.Error(err))
			}
		}
	}

	return resp, nil
}

// shapeNearbyPlace denormalizes one joined row into the uniform result
// shape, resolving the owner variant into nullable columns.
func shapeNearbyPlace(row *domain.PlaceWithOwner, distance float64) dto.NearbyPlace {
	p := dto.NearbyPlace{
		ID:       row.Place.ID,
		Position: []float64{row.Place.Lat, row.Place.Lng},
		Title:    row.Place.Title,
		Address:  row.Place.Address,
		Category: row.Place.Category.DisplayLabel(),
		Distance: distance,
	}

	if row.Owner == nil {
		return p
	}

	ownerType := row.Owner.OwnerType()
	name := row.Owner.DisplayName()
	email := row.Owner.ContactEmail()
	p.Type = &ownerType
	p.Name = &name
	p.Email = &email

	if company, ok := row.Owner.(domain.CompanyOwner); ok {
		website := company.Website
		p.Website = &website
	}

	return p
}
