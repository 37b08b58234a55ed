package domain

import "time"

// DirectoryStats are aggregate counts over the directory, cached in redis
// and refreshed by the stats worker.
type DirectoryStats struct {
	TotalPlaces      int            `json:"total_places"`
	PlacesByCategory map[string]int `json:"places_by_category"`
	TotalCompanies   int            `json:"total_companies"`
	TotalIndividuals int            `json:"total_individuals"`
	OrphanedPlaces   int            `json:"orphaned_places"`
	LastUpdated      time.Time      `json:"last_updated"`
}
