package services

import (
	"testing"

	"trip-itinerary-service/internal/domain"
)

func TestOrderByNearestNeighbor(t *testing.T) {
	// Points laid out along a line of latitude, shuffled. Starting from the
	// westernmost reference, the walk should visit them west to east.
	start := domain.Coordinates{Lat: 48.85, Lon: 2.20}
	activities := []domain.Activity{
		{ActivityID: 3, Name: "C", Location: domain.Coordinates{Lat: 48.85, Lon: 2.40}},
		{ActivityID: 1, Name: "A", Location: domain.Coordinates{Lat: 48.85, Lon: 2.25}},
		{ActivityID: 2, Name: "B", Location: domain.Coordinates{Lat: 48.85, Lon: 2.32}},
	}

	ordered := OrderByNearestNeighbor(activities, start)

	wantOrder := []int{1, 2, 3}
	if len(ordered) != len(wantOrder) {
		t.Fatalf("got %d activities, want %d", len(ordered), len(wantOrder))
	}
	for i, want := range wantOrder {
		if ordered[i].ActivityID != want {
			t.Errorf("position %d: got activity %d, want %d", i, ordered[i].ActivityID, want)
		}
	}
}

func TestOrderByNearestNeighborIdenticalCoordinates(t *testing.T) {
	start := domain.Coordinates{Lat: 48.85, Lon: 2.35}
	same := domain.Coordinates{Lat: 48.86, Lon: 2.36}

	activities := []domain.Activity{
		{ActivityID: 7, Name: "Second", Location: same},
		{ActivityID: 2, Name: "First", Location: same},
	}

	first := OrderByNearestNeighbor(activities, start)

	// Equal distances resolve by ascending ID, and repeated runs agree.
	if first[0].ActivityID != 2 || first[1].ActivityID != 7 {
		t.Fatalf("tie-break order = [%d %d], want [2 7]", first[0].ActivityID, first[1].ActivityID)
	}
	for i := 0; i < 5; i++ {
		again := OrderByNearestNeighbor(activities, start)
		if again[0].ActivityID != first[0].ActivityID || again[1].ActivityID != first[1].ActivityID {
			t.Fatalf("run %d produced different ordering", i)
		}
	}
}

func TestOrderByNearestNeighborNoWorseThanInputOrder(t *testing.T) {
	// A deliberately bad input order that zig-zags across the city.
	start := domain.Coordinates{Lat: 48.85, Lon: 2.20}
	activities := []domain.Activity{
		{ActivityID: 1, Name: "Far east", Location: domain.Coordinates{Lat: 48.85, Lon: 2.45}},
		{ActivityID: 2, Name: "Near west", Location: domain.Coordinates{Lat: 48.85, Lon: 2.22}},
		{ActivityID: 3, Name: "Mid east", Location: domain.Coordinates{Lat: 48.85, Lon: 2.40}},
		{ActivityID: 4, Name: "Mid west", Location: domain.Coordinates{Lat: 48.85, Lon: 2.28}},
	}

	baseline := RouteLengthKm(activities, start)
	ordered := OrderByNearestNeighbor(activities, start)
	routed := RouteLengthKm(ordered, start)

	if routed > baseline {
		t.Errorf("nearest-neighbor route %.2f km is longer than input order %.2f km", routed, baseline)
	}
}

func TestOrderByNearestNeighborPreservesSet(t *testing.T) {
	start := domain.Coordinates{Lat: 0, Lon: 0}
	activities := []domain.Activity{
		{ActivityID: 1, Location: domain.Coordinates{Lat: 1, Lon: 1}},
		{ActivityID: 2, Location: domain.Coordinates{Lat: 2, Lon: 2}},
		{ActivityID: 3, Location: domain.Coordinates{Lat: 3, Lon: 3}},
	}

	ordered := OrderByNearestNeighbor(activities, start)

	seen := map[int]bool{}
	for _, a := range ordered {
		if seen[a.ActivityID] {
			t.Fatalf("activity %d appears twice", a.ActivityID)
		}
		seen[a.ActivityID] = true
	}
	if len(seen) != len(activities) {
		t.Fatalf("ordering lost activities: %d of %d", len(seen), len(activities))
	}
}

func TestOrderByNearestNeighborSmallInputs(t *testing.T) {
	start := domain.Coordinates{}

	if got := OrderByNearestNeighbor(nil, start); len(got) != 0 {
		t.Errorf("nil input: got %d activities", len(got))
	}

	one := []domain.Activity{{ActivityID: 1}}
	if got := OrderByNearestNeighbor(one, start); len(got) != 1 || got[0].ActivityID != 1 {
		t.Errorf("single input not returned as-is")
	}
}
