package domain

import (
	"errors"
	"testing"
	"time"
)

func validTrip() TripRequest {
	return TripRequest{
		Origin:      "JFK",
		Destination: "Paris",
		StartDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
		BudgetUSD:   500,
		Preferences: UserPreferences{
			Weights: map[Category]float64{CategoryOutdoor: 2},
			Style:   StyleBalanced,
		},
	}
}

func TestTripLengthAndDates(t *testing.T) {
	trip := validTrip()

	if got := trip.TripLength(); got != 3 {
		t.Fatalf("TripLength = %d, want 3", got)
	}

	dates := trip.Dates()
	if len(dates) != 3 {
		t.Fatalf("Dates returned %d entries, want 3", len(dates))
	}
	for i, d := range dates {
		want := time.Date(2026, 6, 1+i, 0, 0, 0, 0, time.UTC)
		if !d.Equal(want) {
			t.Errorf("Dates[%d] = %v, want %v", i, d, want)
		}
	}
}

func TestTripLengthSingleDay(t *testing.T) {
	trip := validTrip()
	trip.EndDate = trip.StartDate

	if got := trip.TripLength(); got != 1 {
		t.Fatalf("TripLength = %d, want 1", got)
	}
}

func TestTripValidate(t *testing.T) {
	if err := validTrip().Validate(); err != nil {
		t.Fatalf("valid trip rejected: %v", err)
	}

	endBeforeStart := validTrip()
	endBeforeStart.EndDate = endBeforeStart.StartDate.AddDate(0, 0, -1)
	if err := endBeforeStart.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("end before start: err = %v, want ErrInvalidInput", err)
	}

	negativeBudget := validTrip()
	negativeBudget.BudgetUSD = -1
	if err := negativeBudget.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative budget: err = %v, want ErrInvalidInput", err)
	}

	zeroBudget := validTrip()
	zeroBudget.BudgetUSD = 0
	if err := zeroBudget.Validate(); err != nil {
		t.Errorf("zero budget should be valid, got %v", err)
	}

	negativeWeight := validTrip()
	negativeWeight.Preferences.Weights = map[Category]float64{CategoryDining: -1}
	if err := negativeWeight.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative weight: err = %v, want ErrInvalidInput", err)
	}

	noDestination := validTrip()
	noDestination.Destination = ""
	if err := noDestination.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty destination: err = %v, want ErrInvalidInput", err)
	}
}

func TestPreferencesValidateUnknownEnums(t *testing.T) {
	p := UserPreferences{Style: "frantic"}
	if err := p.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown style: err = %v, want ErrInvalidInput", err)
	}

	p = UserPreferences{CostSensitivity: "extreme"}
	if err := p.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown sensitivity: err = %v, want ErrInvalidInput", err)
	}
}

func TestDayDurationCeilingByStyle(t *testing.T) {
	cases := map[TravelStyle]time.Duration{
		StyleRelaxed:  6 * time.Hour,
		StyleBalanced: 8 * time.Hour,
		StylePacked:   10 * time.Hour,
		"":            8 * time.Hour,
	}
	for style, want := range cases {
		p := UserPreferences{Style: style}
		if got := p.DayDurationCeiling(); got != want {
			t.Errorf("style %q ceiling = %v, want %v", style, got, want)
		}
	}
}
