package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// Port: a boundary for retrieving candidate activities from a data source.
type ActivityRepository interface {
	// Retrieve all candidate activities for a destination.
	ListActivities(ctx context.Context, destination string) ([]domain.Activity, error)
}
