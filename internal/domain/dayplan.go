package domain

import (
	"fmt"
	"time"
)

// DayPlan is the ordered set of activities assigned to one calendar day.
// Totals are maintained on insert so budget and duration invariants can be
// checked without re-walking the slice. An empty DayPlan is a valid outcome
// for a day with no affordable candidates.
type DayPlan struct {
	Date            time.Time
	Activities      []Activity
	TotalCostUSD    float64
	TotalDuration   time.Duration
	DurationCeiling time.Duration
}

func NewDayPlan(date time.Time, ceiling time.Duration) *DayPlan {
	return &DayPlan{
		Date:            date,
		Activities:      []Activity{},
		DurationCeiling: ceiling,
	}
}

// CanFit reports whether adding the activity keeps the day inside its
// duration ceiling and the given cost allowance.
func (d *DayPlan) CanFit(a Activity, costAllowanceUSD float64) bool {
	if d.TotalDuration+a.Duration > d.DurationCeiling {
		return false
	}
	return d.TotalCostUSD+a.CostUSD <= costAllowanceUSD
}

// Add appends an activity to the day's schedule.
func (d *DayPlan) Add(a Activity, costAllowanceUSD float64) error {
	if !d.CanFit(a, costAllowanceUSD) {
		return fmt.Errorf(
			"day plan %s: activity %d does not fit (cost=%.2f/%.2f duration=%s/%s)",
			d.Date.Format("2006-01-02"), a.ActivityID,
			d.TotalCostUSD+a.CostUSD, costAllowanceUSD,
			d.TotalDuration+a.Duration, d.DurationCeiling,
		)
	}
	d.Activities = append(d.Activities, a)
	d.TotalCostUSD += a.CostUSD
	d.TotalDuration += a.Duration
	return nil
}

// Centroid returns the mean coordinate of the day's activities.
// The second return is false for an empty day.
func (d *DayPlan) Centroid() (Coordinates, bool) {
	if len(d.Activities) == 0 {
		return Coordinates{}, false
	}
	var lat, lon float64
	for _, a := range d.Activities {
		lat += a.Location.Lat
		lon += a.Location.Lon
	}
	n := float64(len(d.Activities))
	return Coordinates{Lat: lat / n, Lon: lon / n}, true
}
