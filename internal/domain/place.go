package domain

import "time"

// Category is the fixed place classification stored in the database.
type Category string

const (
	CategoryDigitalFactory Category = "DIGITAL_FACTORY"
	CategoryRobosmith      Category = "ROBOSMITH"
	CategoryTechnoFarmer   Category = "TECHNO_FARMER"
)

// DisplayLabel returns the plural label used in API responses.
func (c Category) DisplayLabel() string {
	switch c {
	case CategoryDigitalFactory:
		return "DIGITAL_FACTORIES"
	case CategoryRobosmith:
		return "ROBOSMITHS"
	case CategoryTechnoFarmer:
		return "TECHNO_FARMERS"
	default:
		return string(c)
	}
}

// Valid reports whether the category is part of the fixed enumeration.
func (c Category) Valid() bool {
	switch c {
	case CategoryDigitalFactory, CategoryRobosmith, CategoryTechnoFarmer:
		return true
	}
	return false
}

// Place is a geocoded point of interest. A place is owned by at most one
// company or individual, never both.
type Place struct {
	ID        int64     `json:"id" db:"id"`
	Lat       float64   `json:"lat" db:"lat"`
	Lng       float64   `json:"lng" db:"lng"`
	Title     string    `json:"title" db:"title"`
	Address   string    `json:"address" db:"address"`
	Category  Category  `json:"category" db:"category"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PlaceWithOwner is one row of the places LEFT JOIN owners scan. Owner is
// nil for an orphaned place.
type PlaceWithOwner struct {
	Place Place
	Owner OwnerInfo
}
