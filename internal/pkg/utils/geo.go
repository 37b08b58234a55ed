package utils

import "math"

const earthRadiusM = 6371000.0

// Half the Earth's circumference; no two points are further apart.
const MaxRadiusM = math.Pi * earthRadiusM

// HaversineDistance returns the great-circle distance between two points
// in meters.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLng := (lng2 - lng1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// ValidateCoordinates checks latitude/longitude ranges.
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ValidateRadius checks a search radius in meters. Zero is allowed and
// matches exact positions only.
func ValidateRadius(radiusM float64) bool {
	return radiusM >= 0 && radiusM <= MaxRadiusM && !math.IsNaN(radiusM)
}
