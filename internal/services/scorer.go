package services

import (
	"fmt"
	"slices"

	"trip-itinerary-service/internal/domain"
)

// Scoring coefficients. These are held fixed so repeated runs over the same
// inputs produce identical rankings (regression tests depend on them).
const (
	// Points per unit of category preference weight.
	interestWeightScale = 10.0
	// Additive bonus per rating star for rated activities.
	ratingBonusPerStar = 0.5
)

// costPenaltyRate returns the score penalty per currency unit of activity
// cost for a sensitivity level.
func costPenaltyRate(s domain.CostSensitivity) float64 {
	switch s {
	case domain.CostSensitivityLow:
		return 0.05
	case domain.CostSensitivityHigh:
		return 0.40
	default:
		return 0.15
	}
}

// ScoredActivity pairs a candidate with its computed desirability score.
// Scores are engine-internal per-run values, never persisted on the
// Activity itself.
type ScoredActivity struct {
	Activity domain.Activity
	Score    float64
}

// ScoreActivity computes the desirability of one activity under the given
// preferences.
//
// The score is linear: weight term plus rating bonus minus cost penalty.
// A zero-cost activity can never score below zero, and among activities that
// differ only in category weight the higher-weighted one always scores
// strictly higher. The function is pure: equal inputs yield equal output.
func ScoreActivity(a domain.Activity, prefs domain.UserPreferences) (float64, error) {
	if err := prefs.Validate(); err != nil {
		return 0, fmt.Errorf("score activity: %w", err)
	}
	if a.CostUSD < 0 {
		return 0, fmt.Errorf(
			"score activity: activity %d has negative cost %.2f: %w",
			a.ActivityID, a.CostUSD, domain.ErrInvalidInput,
		)
	}

	score := prefs.Weight(a.Category) * interestWeightScale
	if a.Rating != nil {
		score += *a.Rating * ratingBonusPerStar
	}
	score -= a.CostUSD * costPenaltyRate(prefs.CostSensitivity)

	return score, nil
}

// ScoreAll scores every candidate and returns them ordered by descending
// score. Ties break by ascending cost, then ascending activity ID, so the
// ordering is stable across runs.
func ScoreAll(activities []domain.Activity, prefs domain.UserPreferences) ([]ScoredActivity, error) {
	scored := make([]ScoredActivity, 0, len(activities))
	for _, a := range activities {
		s, err := ScoreActivity(a, prefs)
		if err != nil {
			return nil, fmt.Errorf("score all: %w", err)
		}
		scored = append(scored, ScoredActivity{Activity: a, Score: s})
	}

	slices.SortFunc(scored, func(a, b ScoredActivity) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.Activity.CostUSD < b.Activity.CostUSD {
			return -1
		}
		if a.Activity.CostUSD > b.Activity.CostUSD {
			return 1
		}
		if a.Activity.ActivityID < b.Activity.ActivityID {
			return -1
		}
		if a.Activity.ActivityID > b.Activity.ActivityID {
			return 1
		}
		return 0
	})

	return scored, nil
}
