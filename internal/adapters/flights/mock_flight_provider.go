package flights

import (
	"context"
	"fmt"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

type MockRoute struct {
	Origin, Destination string
	Carrier             string
	PriceUSD            float64
}

// MockFlightProvider serves fixed offers keyed by route, for tests and
// offline runs.
type MockFlightProvider struct {
	m map[string]MockRoute
}

func NewMockFlightProvider(routes []MockRoute) *MockFlightProvider {
	m := make(map[string]MockRoute, len(routes))
	for _, r := range routes {
		m[r.Origin+"|"+r.Destination] = r
	}
	return &MockFlightProvider{m: m}
}

func (p *MockFlightProvider) CheapestOffer(
	ctx context.Context,
	origin, destination string,
	depart, ret time.Time,
) (domain.FlightOffer, error) {
	r, ok := p.m[origin+"|"+destination]
	if !ok {
		return domain.FlightOffer{}, fmt.Errorf("route %q -> %q: %w", origin, destination, ports.ErrNoFlightsFound)
	}

	return domain.FlightOffer{
		Carrier:    r.Carrier,
		PriceUSD:   r.PriceUSD,
		DepartDate: depart,
		ReturnDate: ret,
	}, nil
}
