package domain

import (
	"fmt"
	"time"
)

// TripRequest captures one user's trip: where, when, how much, and how the
// candidate pool should be weighted. DestinationCoords is the reference
// point intra-day routes start from.
type TripRequest struct {
	Origin            string
	Destination       string
	DestinationCoords Coordinates
	StartDate         time.Time
	EndDate           time.Time
	BudgetUSD         float64
	Preferences       UserPreferences
}

// TripLength returns the number of calendar days in the inclusive range.
func (t TripRequest) TripLength() int {
	start := dateOnly(t.StartDate)
	end := dateOnly(t.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// Dates returns each calendar day of the trip in order.
func (t TripRequest) Dates() []time.Time {
	n := t.TripLength()
	if n < 1 {
		return nil
	}
	dates := make([]time.Time, 0, n)
	d := dateOnly(t.StartDate)
	for i := 0; i < n; i++ {
		dates = append(dates, d.AddDate(0, 0, i))
	}
	return dates
}

// Validate enforces the request invariants before any scheduling work.
func (t TripRequest) Validate() error {
	if t.Destination == "" {
		return fmt.Errorf("trip request: destination must be non-empty: %w", ErrInvalidInput)
	}
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return fmt.Errorf("trip request: start and end dates are required: %w", ErrInvalidInput)
	}
	if dateOnly(t.EndDate).Before(dateOnly(t.StartDate)) {
		return fmt.Errorf(
			"trip request: end date %s precedes start date %s: %w",
			t.EndDate.Format("2006-01-02"), t.StartDate.Format("2006-01-02"), ErrInvalidInput,
		)
	}
	if t.BudgetUSD < 0 {
		return fmt.Errorf("trip request: budget must be non-negative, got %.2f: %w", t.BudgetUSD, ErrInvalidInput)
	}
	if err := t.Preferences.Validate(); err != nil {
		return fmt.Errorf("trip request: %w", err)
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
