package spotify

import (
	"strings"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

// mapTrackToDomain flattens a Spotify track. Audio features are filled in
// separately.
func mapTrackToDomain(st spotifyTrack) domain.Track {
	artistNames := make([]string, 0, len(st.Artists))
	for _, a := range st.Artists {
		artistNames = append(artistNames, a.Name)
	}

	coverURL := ""
	if len(st.Album.Images) > 0 {
		coverURL = st.Album.Images[0].URL
	}

	uri := st.URI
	if uri == "" && st.ID != "" {
		uri = "spotify:track:" + st.ID
	}

	return domain.Track{
		ID:         st.ID,
		URI:        uri,
		Title:      st.Name,
		Artist:     strings.Join(artistNames, ", "),
		Album:      st.Album.Name,
		CoverURL:   coverURL,
		PreviewURL: st.PreviewURL,
		DurationMs: st.DurationMs,
		ISRC:       st.ExternalIDs.ISRC,
	}
}

func mapFeaturesToDomain(f spotifyAudioFeatures) domain.AudioFeatures {
	return domain.AudioFeatures{
		Danceability:     f.Danceability,
		Energy:           f.Energy,
		Valence:          f.Valence,
		Tempo:            f.Tempo,
		Instrumentalness: f.Instrumentalness,
		Acousticness:     f.Acousticness,
	}
}

func mapPlaylistToDomain(sp spotifyPlaylist) domain.Playlist {
	return domain.Playlist{
		ID:     sp.ID,
		Name:   sp.Name,
		URL:    sp.ExternalURLs.Spotify,
		Tracks: []domain.Track{},
	}
}
