package domain

import (
	"testing"
	"time"
)

func TestDayPlanAddTracksTotals(t *testing.T) {
	day := NewDayPlan(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), 8*time.Hour)

	a1 := Activity{ActivityID: 1, Name: "A", Category: CategoryOutdoor, CostUSD: 20, Duration: 2 * time.Hour}
	a2 := Activity{ActivityID: 2, Name: "B", Category: CategoryDining, CostUSD: 30, Duration: 90 * time.Minute}

	if err := day.Add(a1, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := day.Add(a2, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if day.TotalCostUSD != 50 {
		t.Errorf("TotalCostUSD = %v, want 50", day.TotalCostUSD)
	}
	if day.TotalDuration != 3*time.Hour+30*time.Minute {
		t.Errorf("TotalDuration = %v, want 3h30m", day.TotalDuration)
	}
	if len(day.Activities) != 2 {
		t.Errorf("len(Activities) = %d, want 2", len(day.Activities))
	}
}

func TestDayPlanAddRejectsOverDuration(t *testing.T) {
	day := NewDayPlan(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), 4*time.Hour)

	long := Activity{ActivityID: 1, Name: "A", Category: CategoryCulture, Duration: 5 * time.Hour}
	if err := day.Add(long, 1000); err == nil {
		t.Fatal("expected error adding activity over duration ceiling")
	}
	if len(day.Activities) != 0 {
		t.Errorf("day mutated on failed add")
	}
}

func TestDayPlanAddRejectsOverCost(t *testing.T) {
	day := NewDayPlan(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), 8*time.Hour)

	pricey := Activity{ActivityID: 1, Name: "A", Category: CategoryDining, CostUSD: 80, Duration: time.Hour}
	if err := day.Add(pricey, 50); err == nil {
		t.Fatal("expected error adding activity over cost allowance")
	}
}

func TestDayPlanCentroid(t *testing.T) {
	day := NewDayPlan(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), 8*time.Hour)

	if _, ok := day.Centroid(); ok {
		t.Fatal("empty day should have no centroid")
	}

	day.Add(Activity{ActivityID: 1, Name: "A", Category: CategoryOutdoor, Location: Coordinates{Lat: 10, Lon: 20}, Duration: time.Hour}, 100)
	day.Add(Activity{ActivityID: 2, Name: "B", Category: CategoryOutdoor, Location: Coordinates{Lat: 20, Lon: 40}, Duration: time.Hour}, 100)

	c, ok := day.Centroid()
	if !ok {
		t.Fatal("expected centroid for non-empty day")
	}
	if c.Lat != 15 || c.Lon != 30 {
		t.Errorf("centroid = %+v, want {15 30}", c)
	}
}
