package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

const errCodeWeatherUnavailable = "WEATHER_UNAVAILABLE"

// Forecast handles GET /forecast?days=N.
func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = n
	}

	forecast, err := h.svc.Forecast(r.Context(), days)
	if err != nil {
		writeForecastError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, forecast)
}

// HourlyForecast handles GET /forecast/{date}/hourly.
func (h *Handler) HourlyForecast(w http.ResponseWriter, r *http.Request) {
	hours, err := h.svc.HourlyForecast(r.Context(), r.PathValue("date"))
	if err != nil {
		writeForecastError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hours)
}

// writeForecastError reports provider failures as 502 and leaves argument
// errors to writeServiceError.
func writeForecastError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidArg) {
		writeServiceError(w, err)
		return
	}
	writeErrorWithCode(w, http.StatusBadGateway, err.Error(), errCodeWeatherUnavailable)
}
