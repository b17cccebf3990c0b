package rest

import (
	"net/http"

	"github.com/GustaveMAG/vienna-vibe/internal/core/services"
)

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc    *services.Orchestrator
	router *http.ServeMux
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Orchestrator) *Handler {
	h := &Handler{
		svc:    svc,
		router: http.NewServeMux(),
	}
	h.routes()
	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.HandleFunc("GET /health", h.HealthCheck)

	// Vibes
	h.router.HandleFunc("GET /vibe", h.CurrentVibe)
	h.router.HandleFunc("POST /vibe/map", h.MapVibe)
	h.router.HandleFunc("POST /vibes", h.RecordVibe)
	h.router.HandleFunc("GET /vibes", h.ListVibes)
	h.router.HandleFunc("GET /vibes/{id}", h.GetVibe)

	// Catalog
	h.router.HandleFunc("POST /playlists", h.GeneratePlaylist)
	h.router.HandleFunc("GET /me", h.CurrentUser)
	h.router.HandleFunc("GET /tracks/{id}/features", h.TrackFeatures)

	// Forecast
	h.router.HandleFunc("GET /forecast", h.Forecast)
	h.router.HandleFunc("GET /forecast/{date}/hourly", h.HourlyForecast)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
