package services

import (
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/geo"
)

// OrderByNearestNeighbor orders a day's activities into a short visiting
// route using a greedy nearest-neighbor walk.
//
// The walk starts from the activity nearest the given reference point and
// repeatedly appends the unvisited activity nearest the last-placed one.
// It does not attempt exact shortest-route optimization; the design
// prioritizes determinism and simplicity over optimality. Distance ties
// break by ascending activity ID.
func OrderByNearestNeighbor(activities []domain.Activity, start domain.Coordinates) []domain.Activity {
	if len(activities) <= 1 {
		return activities
	}

	remaining := make([]domain.Activity, len(activities))
	copy(remaining, activities)

	ordered := make([]domain.Activity, 0, len(activities))
	current := start

	for len(remaining) > 0 {
		best := 0
		bestDist := geo.DistanceKm(current, remaining[0].Location)

		for i := 1; i < len(remaining); i++ {
			d := geo.DistanceKm(current, remaining[i].Location)
			if d < bestDist || (d == bestDist && remaining[i].ActivityID < remaining[best].ActivityID) {
				best = i
				bestDist = d
			}
		}

		next := remaining[best]
		ordered = append(ordered, next)
		current = next.Location
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return ordered
}

// RouteLengthKm returns the total great-circle length of visiting the
// activities in order, starting from the reference point.
func RouteLengthKm(activities []domain.Activity, start domain.Coordinates) float64 {
	total := 0.0
	current := start
	for _, a := range activities {
		total += geo.DistanceKm(current, a.Location)
		current = a.Location
	}
	return total
}
