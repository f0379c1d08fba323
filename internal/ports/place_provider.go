package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// Contract for resolving a destination city and fetching candidate places.
type PlaceProvider interface {
	// Resolve a city name to reference coordinates.
	GeocodeCity(ctx context.Context, city string) (domain.Coordinates, error)
	// Return candidate activities in a city, optionally filtered by category.
	PlacesInCity(ctx context.Context, city string, categories []domain.Category, limit int) ([]domain.Activity, error)
}
