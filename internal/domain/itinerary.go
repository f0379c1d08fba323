package domain

import "time"

// FlightOffer is the cheapest round-trip option found for the trip's
// origin/destination pair. Produced by a flight provider, consumed when the
// itinerary is assembled; its price is netted out of the scheduling budget.
type FlightOffer struct {
	Carrier    string
	PriceUSD   float64
	DepartDate time.Time
	ReturnDate time.Time
	Stops      int
}

// Itinerary is the assembled result of one planning run: the request, the
// chosen flight (nil when planning offline), and exactly one DayPlan per
// calendar day of the trip, empty days included. It is immutable planning
// data and contains no side effects.
type Itinerary struct {
	ItineraryID string
	Request     TripRequest
	Flight      *FlightOffer
	Days        []*DayPlan
}

// TotalActivityCost sums spend across all day plans.
func (it Itinerary) TotalActivityCost() float64 {
	var total float64
	for _, d := range it.Days {
		total += d.TotalCostUSD
	}
	return total
}
