package repositories

import (
	"context"
	"fmt"
	"log"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// PlaceFallbackRepository serves candidates from the primary repository and
// falls back to the place provider when a destination has nothing stored.
// Fetched places come back with provider defaults (zero cost, one hour), so
// stored data always wins when present.
type PlaceFallbackRepository struct {
	Primary ports.ActivityRepository
	Places  ports.PlaceProvider
}

func NewPlaceFallbackRepository(primary ports.ActivityRepository, places ports.PlaceProvider) *PlaceFallbackRepository {
	return &PlaceFallbackRepository{Primary: primary, Places: places}
}

func (p *PlaceFallbackRepository) ListActivities(ctx context.Context, destination string) ([]domain.Activity, error) {
	activities, err := p.Primary.ListActivities(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("place fallback: %w", err)
	}
	if len(activities) > 0 || p.Places == nil {
		return activities, nil
	}

	log.Printf("no stored activities for %q, fetching from place provider", destination)

	fetched, err := p.Places.PlacesInCity(ctx, destination, domain.Categories, 50)
	if err != nil {
		return nil, fmt.Errorf("place fallback: fetch places: %w", err)
	}

	return fetched, nil
}
