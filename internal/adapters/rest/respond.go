package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
	"github.com/GustaveMAG/vienna-vibe/internal/core/ports"
)

const (
	errCodeNotEnoughTracks    = "NOT_ENOUGH_TRACKS"
	errCodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	errCodeValidation         = "VALIDATION_FAILED"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("WARN rest: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeErrorWithCode(w http.ResponseWriter, status int, msg, code string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var notEnough *domain.NotEnoughTracksError
	switch {
	case errors.As(err, &notEnough):
		writeErrorWithCode(w, http.StatusUnprocessableEntity, fmt.Sprintf("Not enough tracks (%d).", notEnough.Found), errCodeNotEnoughTracks)
	case errors.Is(err, ports.ErrCatalogUnavailable):
		writeErrorWithCode(w, http.StatusServiceUnavailable, err.Error(), errCodeCatalogUnavailable)
	case errors.Is(err, domain.ErrInvalidArg):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("WARN rest: request failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func isJSONContentType(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
