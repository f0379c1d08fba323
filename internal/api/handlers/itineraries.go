package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"
)

type ItineraryHandler struct {
	Repo          ports.ActivityRepository
	Flights       ports.FlightProvider
	DefaultOrigin string
}

// Plan orchestrates one itinerary planning run: it validates the request,
// maps it onto the trip model, and hands off to the planning service.
func (h *ItineraryHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanItineraryRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	weights := make(map[domain.Category]float64, len(req.InterestWeights))
	for raw, weight := range req.InterestWeights {
		cat, err := domain.ParseCategory(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "unknown interest category: "+raw)
			return
		}
		weights[cat] = weight
	}

	origin := strings.TrimSpace(req.Origin)
	if origin == "" {
		origin = strings.TrimSpace(h.DefaultOrigin)
	}

	trip := domain.TripRequest{
		Origin:      origin,
		Destination: strings.TrimSpace(req.Destination),
		DestinationCoords: domain.Coordinates{
			Lat: req.DestinationLat,
			Lon: req.DestinationLon,
		},
		StartDate: start,
		EndDate:   end,
		BudgetUSD: req.BudgetUSD,
		Preferences: domain.UserPreferences{
			Weights:         weights,
			Style:           domain.TravelStyle(req.TravelStyle),
			CostSensitivity: domain.CostSensitivity(req.CostSensitivity),
		},
	}

	var flights ports.FlightProvider
	if req.IncludeFlight {
		flights = h.Flights
	}

	itinerary, diags, err := services.PlanTrip(r.Context(), trip, h.Repo, flights)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("plan itinerary failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toItineraryResponse(itinerary, diags))
}

func toItineraryResponse(it *domain.Itinerary, diags services.PlanDiagnostics) dto.ItineraryResponse {
	res := dto.ItineraryResponse{
		ItineraryID:          it.ItineraryID,
		Destination:          it.Request.Destination,
		Days:                 make([]dto.DayPlanResponse, 0, len(it.Days)),
		TotalActivityCostUSD: it.TotalActivityCost(),
		Diagnostics: dto.DiagnosticsResponse{
			Skipped:             make([]dto.SkippedActivityResponse, 0, len(diags.Skipped)),
			UnplacedActivityIDs: diags.UnplacedActivityIDs,
			RemainingBudgetUSD:  diags.RemainingBudgetUSD,
		},
	}

	if it.Flight != nil {
		res.Flight = &dto.FlightResponse{
			Carrier:  it.Flight.Carrier,
			PriceUSD: it.Flight.PriceUSD,
			Stops:    it.Flight.Stops,
		}
	}

	for _, s := range diags.Skipped {
		res.Diagnostics.Skipped = append(res.Diagnostics.Skipped, dto.SkippedActivityResponse{
			ActivityID: s.ActivityID,
			Reason:     s.Reason,
		})
	}

	for _, day := range it.Days {
		dayRes := dto.DayPlanResponse{
			Date:                 day.Date.Format("2006-01-02"),
			Activities:           make([]dto.ActivityResponse, 0, len(day.Activities)),
			TotalCostUSD:         day.TotalCostUSD,
			TotalDurationMinutes: int(day.TotalDuration.Minutes()),
			RouteKm:              services.RouteLengthKm(day.Activities, it.Request.DestinationCoords),
		}
		for _, a := range day.Activities {
			dayRes.Activities = append(dayRes.Activities, toActivityResponse(a))
		}
		res.Days = append(res.Days, dayRes)
	}

	return res
}
