package rest

import (
	"net/http"
)

// GeneratePlaylist handles POST /playlists: build a playlist for the current
// weather and create it in the catalog.
func (h *Handler) GeneratePlaylist(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GeneratePlaylist(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if result.Playlist.URL != "" {
		w.Header().Set("Location", result.Playlist.URL)
	}
	writeJSON(w, http.StatusCreated, result)
}

// CurrentUser handles GET /me.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"display_name": h.svc.UserName(r.Context()),
	})
}
