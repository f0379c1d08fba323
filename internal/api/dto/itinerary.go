package dto

type PlanItineraryRequest struct {
	Origin          string             `json:"origin"`
	Destination     string             `json:"destination"`
	DestinationLat  float64            `json:"destination_lat"`
	DestinationLon  float64            `json:"destination_lon"`
	StartDate       string             `json:"start_date"`
	EndDate         string             `json:"end_date"`
	BudgetUSD       float64            `json:"budget_usd"`
	InterestWeights map[string]float64 `json:"interest_weights"`
	TravelStyle     string             `json:"travel_style"`
	CostSensitivity string             `json:"cost_sensitivity"`
	IncludeFlight   bool               `json:"include_flight"`
}

type FlightResponse struct {
	Carrier  string  `json:"carrier"`
	PriceUSD float64 `json:"price_usd"`
	Stops    int     `json:"stops"`
}

type DayPlanResponse struct {
	Date                 string             `json:"date"`
	Activities           []ActivityResponse `json:"activities"`
	TotalCostUSD         float64            `json:"total_cost_usd"`
	TotalDurationMinutes int                `json:"total_duration_minutes"`
	RouteKm              float64            `json:"route_km"`
}

type SkippedActivityResponse struct {
	ActivityID int    `json:"activity_id"`
	Reason     string `json:"reason"`
}

type DiagnosticsResponse struct {
	Skipped             []SkippedActivityResponse `json:"skipped"`
	UnplacedActivityIDs []int                     `json:"unplaced_activity_ids"`
	RemainingBudgetUSD  float64                   `json:"remaining_budget_usd"`
}

type ItineraryResponse struct {
	ItineraryID          string              `json:"itinerary_id"`
	Destination          string              `json:"destination"`
	Flight               *FlightResponse     `json:"flight,omitempty"`
	Days                 []DayPlanResponse   `json:"days"`
	TotalActivityCostUSD float64             `json:"total_activity_cost_usd"`
	Diagnostics          DiagnosticsResponse `json:"diagnostics"`
}
