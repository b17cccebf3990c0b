package domain

// AudioFeatures holds catalog audio analysis values for a track or the
// average over a set of tracks.
type AudioFeatures struct {
	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Valence          float64 `json:"valence"`
	Tempo            float64 `json:"tempo"`
	Instrumentalness float64 `json:"instrumentalness"`
	Acousticness     float64 `json:"acousticness"`
}

// Track represents a musical track in the domain layer.
type Track struct {
	ID         string        `json:"id"`
	URI        string        `json:"uri"`
	Title      string        `json:"title"`
	Artist     string        `json:"artist"`
	Album      string        `json:"album,omitempty"`
	CoverURL   string        `json:"cover_url,omitempty"`
	PreviewURL string        `json:"preview_url,omitempty"`
	DurationMs int           `json:"duration_ms,omitempty"`
	ISRC       string        `json:"isrc,omitempty"` // International Standard Recording Code for matching
	Features   AudioFeatures `json:"features"`
}

// TrackPreview is the short artist/title/cover summary shown for the first
// tracks of a generated playlist.
type TrackPreview struct {
	Artist   string `json:"artist"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// UnavailablePreview stands in for the preview list when track details
// cannot be fetched.
var UnavailablePreview = TrackPreview{Artist: "System", Title: "Preview Unavailable"}
