package geo

import (
	"math"

	"trip-itinerary-service/internal/domain"
)

const earthRadiusKm = 6371.0

// DistanceKm computes the great-circle distance between two coordinates in
// kilometers using the haversine formula. It is symmetric and returns zero
// for identical points.
func DistanceKm(a, b domain.Coordinates) float64 {
	rlat1 := a.Lat * math.Pi / 180
	rlat2 := b.Lat * math.Pi / 180
	dlat := (b.Lat - a.Lat) * math.Pi / 180
	dlon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
