package services

import (
	"errors"
	"testing"
	"time"

	"trip-itinerary-service/internal/domain"
)

func basePrefs() domain.UserPreferences {
	return domain.UserPreferences{
		Weights: map[domain.Category]float64{
			domain.CategoryOutdoor: 3,
			domain.CategoryDining:  1,
		},
		Style:           domain.StyleBalanced,
		CostSensitivity: domain.CostSensitivityMedium,
	}
}

func TestScoreActivityMonotonicInWeight(t *testing.T) {
	prefs := basePrefs()

	outdoor := domain.Activity{ActivityID: 1, Name: "Hike", Category: domain.CategoryOutdoor, CostUSD: 25, Duration: 2 * time.Hour}
	dining := outdoor
	dining.ActivityID = 2
	dining.Name = "Bistro"
	dining.Category = domain.CategoryDining

	so, err := ScoreActivity(outdoor, prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sd, err := ScoreActivity(dining, prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if so <= sd {
		t.Errorf("higher-weighted category did not score higher: outdoor=%v dining=%v", so, sd)
	}
}

func TestScoreActivityUnweightedCategory(t *testing.T) {
	prefs := basePrefs()

	free := domain.Activity{ActivityID: 1, Name: "Stroll", Category: domain.CategoryShopping, Duration: time.Hour}
	s, err := ScoreActivity(free, prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Missing category means weight zero, not an error; zero cost means no
	// penalty, so the score bottoms out at exactly zero.
	if s != 0 {
		t.Errorf("score = %v, want 0 for unweighted zero-cost activity", s)
	}
}

func TestScoreActivityCostSensitivity(t *testing.T) {
	a := domain.Activity{ActivityID: 1, Name: "Tour", Category: domain.CategoryOutdoor, CostUSD: 100, Duration: 2 * time.Hour}

	low := basePrefs()
	low.CostSensitivity = domain.CostSensitivityLow
	high := basePrefs()
	high.CostSensitivity = domain.CostSensitivityHigh

	sl, err := ScoreActivity(a, low)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sh, err := ScoreActivity(a, high)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sh >= sl {
		t.Errorf("higher sensitivity should penalize cost more: low=%v high=%v", sl, sh)
	}
}

func TestScoreActivityRatingBonus(t *testing.T) {
	prefs := basePrefs()

	rated := domain.Activity{ActivityID: 1, Name: "Hike", Category: domain.CategoryOutdoor, CostUSD: 25, Duration: 2 * time.Hour}
	r := 4.5
	rated.Rating = &r

	unrated := rated
	unrated.ActivityID = 2
	unrated.Rating = nil

	sr, err := ScoreActivity(rated, prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	su, err := ScoreActivity(unrated, prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sr <= su {
		t.Errorf("rated activity should outrank identical unrated one: rated=%v unrated=%v", sr, su)
	}
}

func TestScoreActivityDeterminism(t *testing.T) {
	prefs := basePrefs()
	a := domain.Activity{ActivityID: 1, Name: "Hike", Category: domain.CategoryOutdoor, CostUSD: 25, Duration: 2 * time.Hour}

	first, err := ScoreActivity(a, prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		s, err := ScoreActivity(a, prefs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s != first {
			t.Fatalf("run %d: score = %v, want %v", i, s, first)
		}
	}
}

func TestScoreActivityInvalidInputs(t *testing.T) {
	negWeight := basePrefs()
	negWeight.Weights[domain.CategoryCulture] = -2
	a := domain.Activity{ActivityID: 1, Name: "Hike", Category: domain.CategoryOutdoor, Duration: time.Hour}

	if _, err := ScoreActivity(a, negWeight); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("negative weight: err = %v, want ErrInvalidInput", err)
	}

	negCost := domain.Activity{ActivityID: 2, Name: "Hike", Category: domain.CategoryOutdoor, CostUSD: -10, Duration: time.Hour}
	if _, err := ScoreActivity(negCost, basePrefs()); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("negative cost: err = %v, want ErrInvalidInput", err)
	}
}

func TestScoreAllOrderingAndTieBreaks(t *testing.T) {
	prefs := basePrefs()

	activities := []domain.Activity{
		{ActivityID: 3, Name: "C", Category: domain.CategoryDining, CostUSD: 10, Duration: time.Hour},
		{ActivityID: 1, Name: "A", Category: domain.CategoryOutdoor, CostUSD: 10, Duration: time.Hour},
		// Same category and cost as ID 1: tie resolves by ascending ID.
		{ActivityID: 2, Name: "B", Category: domain.CategoryOutdoor, CostUSD: 10, Duration: time.Hour},
	}

	scored, err := ScoreAll(activities, prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []int{1, 2, 3}
	for i, want := range wantOrder {
		if scored[i].Activity.ActivityID != want {
			t.Errorf("position %d: got activity %d, want %d", i, scored[i].Activity.ActivityID, want)
		}
	}
}

func TestScoreAllCheaperWinsTies(t *testing.T) {
	prefs := domain.UserPreferences{
		Weights:         map[domain.Category]float64{},
		CostSensitivity: domain.CostSensitivityLow,
	}

	// Zero weight everywhere: scores differ only by cost penalty, and the
	// tie-break on equal scores is exercised via equal-cost pairs.
	activities := []domain.Activity{
		{ActivityID: 5, Name: "E", Category: domain.CategoryShopping, CostUSD: 20, Duration: time.Hour},
		{ActivityID: 4, Name: "D", Category: domain.CategoryShopping, CostUSD: 0, Duration: time.Hour},
	}

	scored, err := ScoreAll(activities, prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scored[0].Activity.ActivityID != 4 {
		t.Errorf("cheaper activity should rank first, got %d", scored[0].Activity.ActivityID)
	}
}
