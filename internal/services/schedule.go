package services

import (
	"fmt"
	"slices"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/geo"
)

// Score penalty per kilometer of great-circle distance from a day's running
// centroid. Keeps each day's activities geographically clustered without
// solving a full routing problem.
const distancePenaltyPerKm = 0.8

// SkippedActivity records a candidate dropped before scheduling began.
type SkippedActivity struct {
	ActivityID int
	Reason     string
}

// PlanDiagnostics carries the informational outcomes of one planning run.
// None of these are errors: an unplaced or skipped candidate is a reportable
// result, not a failure.
type PlanDiagnostics struct {
	Skipped             []SkippedActivity
	UnplacedActivityIDs []int
	RemainingBudgetUSD  float64
}

// BuildDayPlans partitions scored candidates into one DayPlan per calendar
// day of the trip using a greedy score-proximity construction.
//
// Each day seeds with the highest-scoring unassigned candidate, then grows by
// repeatedly taking the unassigned candidate with the best score minus
// distance penalty from the day's running centroid, stopping when nothing
// fits or nothing improves the day. Unspent allocation carries forward, and
// no day may exceed the trip's total remaining budget. The construction is a
// heuristic: it reduces geographic scatter versus score-order filling but
// claims no optimality.
func BuildDayPlans(scored []ScoredActivity, trip domain.TripRequest) ([]*domain.DayPlan, PlanDiagnostics, error) {
	if err := trip.Validate(); err != nil {
		return nil, PlanDiagnostics{}, fmt.Errorf("build day plans: %w", err)
	}

	dates := trip.Dates()
	ceiling := trip.Preferences.DayDurationCeiling()

	// Work on a copy so concurrent callers can share the scored slice.
	unassigned := make([]ScoredActivity, len(scored))
	copy(unassigned, scored)

	remainingBudget := trip.BudgetUSD
	perDayShare := trip.BudgetUSD / float64(len(dates))
	carry := 0.0

	days := make([]*domain.DayPlan, 0, len(dates))

	for _, date := range dates {
		day := domain.NewDayPlan(date, ceiling)

		allowance := perDayShare + carry
		if allowance > remainingBudget {
			allowance = remainingBudget
		}

		for {
			best := -1
			bestValue := 0.0
			centroid, hasCentroid := day.Centroid()

			for i, sc := range unassigned {
				a := sc.Activity
				if a.CostUSD > remainingBudget {
					continue
				}
				if !day.CanFit(a, allowance) {
					continue
				}

				value := sc.Score
				if hasCentroid {
					value -= distancePenaltyPerKm * geo.DistanceKm(centroid, a.Location)
				}

				// Strict comparison keeps the first candidate in sorted
				// order on ties, so construction stays deterministic.
				if best == -1 || value > bestValue {
					best = i
					bestValue = value
				}
			}

			if best == -1 {
				break
			}
			// A non-empty day only grows while a candidate improves it.
			if hasCentroid && bestValue <= 0 {
				break
			}

			picked := unassigned[best].Activity
			if err := day.Add(picked, allowance); err != nil {
				return nil, PlanDiagnostics{}, fmt.Errorf("build day plans: %w", err)
			}
			unassigned = slices.Delete(unassigned, best, best+1)
		}

		// Fix the day's set, then order it into a short visiting route.
		day.Activities = OrderByNearestNeighbor(day.Activities, trip.DestinationCoords)

		remainingBudget -= day.TotalCostUSD
		carry = allowance - day.TotalCostUSD
		days = append(days, day)
	}

	diags := PlanDiagnostics{
		UnplacedActivityIDs: make([]int, 0, len(unassigned)),
		RemainingBudgetUSD:  remainingBudget,
	}
	for _, sc := range unassigned {
		diags.UnplacedActivityIDs = append(diags.UnplacedActivityIDs, sc.Activity.ActivityID)
	}
	slices.Sort(diags.UnplacedActivityIDs)

	return days, diags, nil
}
