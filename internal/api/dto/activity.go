package dto

type ActivityResponse struct {
	ActivityID      int      `json:"activity_id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Lat             float64  `json:"lat"`
	Lon             float64  `json:"lon"`
	CostUSD         float64  `json:"cost_usd"`
	DurationMinutes int      `json:"duration_minutes"`
	Rating          *float64 `json:"rating,omitempty"`
}

type ListActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}
