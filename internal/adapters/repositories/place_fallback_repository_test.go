package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"trip-itinerary-service/internal/domain"
)

type stubPrimary struct {
	activities []domain.Activity
	err        error
}

func (s *stubPrimary) ListActivities(ctx context.Context, destination string) ([]domain.Activity, error) {
	return s.activities, s.err
}

type stubPlaces struct {
	activities []domain.Activity
	calls      int
}

func (s *stubPlaces) GeocodeCity(ctx context.Context, city string) (domain.Coordinates, error) {
	return domain.Coordinates{}, nil
}

func (s *stubPlaces) PlacesInCity(ctx context.Context, city string, categories []domain.Category, limit int) ([]domain.Activity, error) {
	s.calls++
	return s.activities, nil
}

func TestPlaceFallbackPrefersStoredData(t *testing.T) {
	stored := []domain.Activity{{ActivityID: 1, Name: "Stored", Category: domain.CategoryCulture, Duration: time.Hour}}
	places := &stubPlaces{activities: []domain.Activity{{ActivityID: 2, Name: "Fetched", Category: domain.CategoryOutdoor}}}

	repo := NewPlaceFallbackRepository(&stubPrimary{activities: stored}, places)

	got, err := repo.ListActivities(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Stored" {
		t.Fatalf("got %+v, want stored data", got)
	}
	if places.calls != 0 {
		t.Errorf("place provider called %d times despite stored data", places.calls)
	}
}

func TestPlaceFallbackFetchesWhenEmpty(t *testing.T) {
	places := &stubPlaces{activities: []domain.Activity{{ActivityID: 2, Name: "Fetched", Category: domain.CategoryOutdoor}}}

	repo := NewPlaceFallbackRepository(&stubPrimary{}, places)

	got, err := repo.ListActivities(context.Background(), "Reykjavik")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Fetched" {
		t.Fatalf("got %+v, want fetched data", got)
	}
	if places.calls != 1 {
		t.Errorf("place provider calls = %d, want 1", places.calls)
	}
}

func TestPlaceFallbackPropagatesPrimaryError(t *testing.T) {
	repo := NewPlaceFallbackRepository(&stubPrimary{err: errors.New("db down")}, &stubPlaces{})

	if _, err := repo.ListActivities(context.Background(), "Paris"); err == nil {
		t.Fatal("expected primary error to surface")
	}
}
