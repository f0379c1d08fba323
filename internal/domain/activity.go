package domain

import (
	"fmt"
	"time"
)

// Category classifies an activity for preference matching.
type Category string

const (
	CategorySightseeing Category = "sightseeing"
	CategoryDining      Category = "dining"
	CategoryOutdoor     Category = "outdoor"
	CategoryCulture     Category = "culture"
	CategoryNightlife   Category = "nightlife"
	CategoryShopping    Category = "shopping"
	CategoryRelaxation  Category = "relaxation"
)

// Categories lists every valid category in a fixed order.
var Categories = []Category{
	CategorySightseeing,
	CategoryDining,
	CategoryOutdoor,
	CategoryCulture,
	CategoryNightlife,
	CategoryShopping,
	CategoryRelaxation,
}

// ParseCategory maps a raw string onto the fixed category set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("parse category: unknown category %q: %w", s, ErrInvalidInput)
}

// Represents a single candidate point of interest for scheduling.
// An Activity is immutable once loaded; the engine never mutates it and
// stores computed scores alongside, not on, the record.
type Activity struct {
	ActivityID int
	Name       string
	Category   Category
	Location   Coordinates
	CostUSD    float64
	Duration   time.Duration
	Rating     *float64
}

// Validate checks the invariants a candidate must satisfy before scoring.
func (a Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("activity %d: name must be non-empty: %w", a.ActivityID, ErrInvalidInput)
	}
	if _, err := ParseCategory(string(a.Category)); err != nil {
		return fmt.Errorf("activity %d: %w", a.ActivityID, err)
	}
	if a.CostUSD < 0 {
		return fmt.Errorf("activity %d: cost must be non-negative, got %.2f: %w", a.ActivityID, a.CostUSD, ErrInvalidInput)
	}
	if a.Duration < 0 {
		return fmt.Errorf("activity %d: duration must be non-negative: %w", a.ActivityID, ErrInvalidInput)
	}
	if a.Location.Lat < -90 || a.Location.Lat > 90 || a.Location.Lon < -180 || a.Location.Lon > 180 {
		return fmt.Errorf(
			"activity %d: coordinates out of range (lat=%.4f lon=%.4f): %w",
			a.ActivityID, a.Location.Lat, a.Location.Lon, ErrInvalidInput,
		)
	}
	return nil
}
