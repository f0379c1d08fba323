package domain

import (
	"fmt"
	"time"
)

// TravelStyle controls trip pacing through the per-day duration ceiling.
type TravelStyle string

const (
	StyleRelaxed  TravelStyle = "relaxed"
	StyleBalanced TravelStyle = "balanced"
	StylePacked   TravelStyle = "packed"
)

// CostSensitivity controls how strongly cost suppresses an activity's score.
type CostSensitivity string

const (
	CostSensitivityLow    CostSensitivity = "low"
	CostSensitivityMedium CostSensitivity = "medium"
	CostSensitivityHigh   CostSensitivity = "high"
)

// UserPreferences is the weighting a trip request applies to candidates.
// Weights are relative: they need not sum to one, only their magnitudes
// against each other matter. Read-only to the engine.
type UserPreferences struct {
	Weights         map[Category]float64
	Style           TravelStyle
	CostSensitivity CostSensitivity
}

// Weight returns the preference weight for a category, zero when unset.
func (p UserPreferences) Weight(c Category) float64 {
	return p.Weights[c]
}

// DayDurationCeiling returns the aggregate activity-hours allowed per day
// for the preference's travel style.
func (p UserPreferences) DayDurationCeiling() time.Duration {
	switch p.Style {
	case StyleRelaxed:
		return 6 * time.Hour
	case StylePacked:
		return 10 * time.Hour
	default:
		return 8 * time.Hour
	}
}

// Validate rejects negative weights and unknown sensitivity levels.
func (p UserPreferences) Validate() error {
	for cat, w := range p.Weights {
		if _, err := ParseCategory(string(cat)); err != nil {
			return fmt.Errorf("preferences: %w", err)
		}
		if w < 0 {
			return fmt.Errorf("preferences: weight for %q must be non-negative, got %.2f: %w", cat, w, ErrInvalidInput)
		}
	}
	switch p.Style {
	case StyleRelaxed, StyleBalanced, StylePacked, "":
	default:
		return fmt.Errorf("preferences: unknown travel style %q: %w", p.Style, ErrInvalidInput)
	}
	switch p.CostSensitivity {
	case CostSensitivityLow, CostSensitivityMedium, CostSensitivityHigh, "":
	default:
		return fmt.Errorf("preferences: unknown cost sensitivity %q: %w", p.CostSensitivity, ErrInvalidInput)
	}
	return nil
}
