package api

import (
	"net/http"

	"trip-itinerary-service/internal/api/handlers"
	"trip-itinerary-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.ActivityRepository, flights ports.FlightProvider, defaultOrigin string) http.Handler {
	mux := http.NewServeMux()

	activityHandler := &handlers.ActivityHandler{Repo: repo}
	itineraryHandler := &handlers.ItineraryHandler{
		Repo:          repo,
		Flights:       flights,
		DefaultOrigin: defaultOrigin,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/activities", activityHandler.List)
	mux.HandleFunc("/itineraries", itineraryHandler.Plan)

	return loggingMiddleware(mux)
}
