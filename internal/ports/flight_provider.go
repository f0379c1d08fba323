package ports

import (
	"context"
	"errors"
	"time"

	"trip-itinerary-service/internal/domain"
)

// ErrNoFlightsFound is returned when no offer exists for the requested
// origin, destination, and date range.
var ErrNoFlightsFound = errors.New("no flights found")

// Contract for retrieving the cheapest flight offer for a trip.
type FlightProvider interface {
	// Return the cheapest round-trip offer, or ErrNoFlightsFound.
	CheapestOffer(ctx context.Context, origin, destination string, depart, ret time.Time) (domain.FlightOffer, error)
}
