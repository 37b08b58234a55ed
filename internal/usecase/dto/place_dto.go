package dto

// PlaceInput is the embedded place payload of owner create requests.
// Position is [lat, lng] in degrees.
type PlaceInput struct {
	Position []float64 `json:"position" validate:"required,len=2"`
	Title    string    `json:"title" validate:"required"`
	Address  string    `json:"address" validate:"required"`
	Category string    `json:"category" validate:"required,oneof=DIGITAL_FACTORY ROBOSMITH TECHNO_FARMER"`
}

func (p PlaceInput) Lat() float64 { return p.Position[0] }
func (p PlaceInput) Lng() float64 { return p.Position[1] }
