package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

// mapRequest is the body of POST /vibe/map. Pointers let zero values pass
// the required checks.
type mapRequest struct {
	Condition    string   `json:"condition" validate:"required,condition"`
	Hour         *int     `json:"hour" validate:"required,min=0,max=23"`
	TemperatureC *float64 `json:"temperature_c" validate:"required"`
	WindSpeedKph *float64 `json:"wind_speed_kph" validate:"required,gte=0"`
}

// CurrentVibe handles GET /vibe.
func (h *Handler) CurrentVibe(w http.ResponseWriter, r *http.Request) {
	report := h.svc.CurrentVibe(r.Context())
	writeJSON(w, http.StatusOK, report)
}

// MapVibe handles POST /vibe/map: map an arbitrary observation without
// calling the weather provider.
func (h *Handler) MapVibe(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req mapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeErrorWithCode(w, http.StatusBadRequest, validationMessage(err), errCodeValidation)
		return
	}

	cond, _ := domain.LookupCondition(req.Condition)
	obs := domain.NewObservation(cond, *req.Hour, *req.TemperatureC, *req.WindSpeedKph, time.Time{})
	writeJSON(w, http.StatusOK, domain.VibeReport{
		Observation: obs,
		Profile:     h.svc.MapObservation(obs),
	})
}

// RecordVibe handles POST /vibes: snapshot the current vibe into history.
func (h *Handler) RecordVibe(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.RecordVibe(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Location", "/vibes/"+rec.ID)
	writeJSON(w, http.StatusCreated, rec)
}

// ListVibes handles GET /vibes?limit=N.
func (h *Handler) ListVibes(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	records, err := h.svc.ListVibes(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []domain.VibeRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// GetVibe handles GET /vibes/{id}.
func (h *Handler) GetVibe(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing vibe id")
		return
	}

	rec, err := h.svc.GetVibe(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// TrackFeatures handles GET /tracks/{id}/features.
func (h *Handler) TrackFeatures(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing track id")
		return
	}

	features, err := h.svc.TrackFeatures(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, features)
}
