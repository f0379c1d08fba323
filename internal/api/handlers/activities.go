package handlers

import (
	"log"
	"net/http"
	"strings"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// ActivityHandler exposes read-only candidate retrieval endpoints.
type ActivityHandler struct {
	Repo ports.ActivityRepository
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	destination := strings.TrimSpace(r.URL.Query().Get("destination"))
	if destination == "" {
		writeError(w, r, http.StatusBadRequest, "destination query parameter is required")
		return
	}

	activities, err := h.Repo.ListActivities(r.Context(), destination)
	if err != nil {
		log.Printf("list activities failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListActivitiesResponse{
		Activities: make([]dto.ActivityResponse, 0, len(activities)),
	}
	for _, a := range activities {
		res.Activities = append(res.Activities, toActivityResponse(a))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toActivityResponse(a domain.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ActivityID:      a.ActivityID,
		Name:            a.Name,
		Category:        string(a.Category),
		Lat:             a.Location.Lat,
		Lon:             a.Location.Lon,
		CostUSD:         a.CostUSD,
		DurationMinutes: int(a.Duration.Minutes()),
		Rating:          a.Rating,
	}
}
