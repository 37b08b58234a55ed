package dto

// NearbyRequest is the proximity query. Radius is in meters; zero matches
// exact positions only. Categories optionally narrow the scan.
type NearbyRequest struct {
	Lat        float64  `json:"lat" validate:"min=-90,max=90"`
	Lng        float64  `json:"lng" validate:"min=-180,max=180"`
	Radius     float64  `json:"radius" validate:"min=0"`
	Categories []string `json:"categories,omitempty" validate:"omitempty,dive,oneof=DIGITAL_FACTORY ROBOSMITH TECHNO_FARMER"`
}

// NearbyPlace is one denormalized result row. Owner columns are null for
// an orphaned place; category carries the plural display label.
type NearbyPlace struct {
	ID       int64     `json:"id"`
	Position []float64 `json:"position"`
	Title    string    `json:"title"`
	Address  string    `json:"address"`
	Category string    `json:"category"`
	Distance float64   `json:"distance"`
	Name     *string   `json:"name"`
	Website  *string   `json:"website"`
	Email    *string   `json:"email"`
	Type     *string   `json:"type"`
}

type NearbyResponse struct {
	Places []NearbyPlace `json:"places"`
	Total  int           `json:"total"`
}
