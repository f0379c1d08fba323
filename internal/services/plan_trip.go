package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// PlanTrip runs one end-to-end planning pass: load candidates, drop invalid
// records, net the cheapest flight out of the budget, score, schedule, and
// assemble the itinerary.
//
// Invalid candidate records are skipped and warned about, not fatal: the
// repository is external input and one bad row should not sink the run. The
// flight provider is optional; with none configured (or no offers found) the
// trip is planned offline against the full budget.
func PlanTrip(
	ctx context.Context,
	trip domain.TripRequest,
	repo ports.ActivityRepository,
	flights ports.FlightProvider,
) (*domain.Itinerary, PlanDiagnostics, error) {
	if err := trip.Validate(); err != nil {
		return nil, PlanDiagnostics{}, fmt.Errorf("plan trip: %w", err)
	}

	candidates, err := repo.ListActivities(ctx, trip.Destination)
	if err != nil {
		return nil, PlanDiagnostics{}, fmt.Errorf("plan trip: list activities: %w", err)
	}

	valid := make([]domain.Activity, 0, len(candidates))
	skipped := make([]SkippedActivity, 0)
	for _, a := range candidates {
		if err := a.Validate(); err != nil {
			log.Printf("plan trip: skipping candidate: %v", err)
			skipped = append(skipped, SkippedActivity{ActivityID: a.ActivityID, Reason: err.Error()})
			continue
		}
		valid = append(valid, a)
	}

	var offer *domain.FlightOffer
	budget := trip.BudgetUSD

	if flights != nil {
		o, err := flights.CheapestOffer(ctx, trip.Origin, trip.Destination, trip.StartDate, trip.EndDate)
		switch {
		case errors.Is(err, ports.ErrNoFlightsFound):
			log.Printf(
				"plan trip: no flights %s -> %s, planning without flight",
				trip.Origin, trip.Destination,
			)
		case err != nil:
			return nil, PlanDiagnostics{}, fmt.Errorf("plan trip: cheapest offer: %w", err)
		default:
			offer = &o
			budget -= o.PriceUSD
			if budget < 0 {
				budget = 0
			}
		}
	}

	// The scheduler consumes the post-flight remaining budget.
	scheduleReq := trip
	scheduleReq.BudgetUSD = budget

	scored, err := ScoreAll(valid, trip.Preferences)
	if err != nil {
		return nil, PlanDiagnostics{}, fmt.Errorf("plan trip: %w", err)
	}

	days, diags, err := BuildDayPlans(scored, scheduleReq)
	if err != nil {
		return nil, PlanDiagnostics{}, fmt.Errorf("plan trip: %w", err)
	}
	diags.Skipped = skipped

	itinerary := &domain.Itinerary{
		ItineraryID: uuid.NewString(),
		Request:     trip,
		Flight:      offer,
		Days:        days,
	}

	return itinerary, diags, nil
}
