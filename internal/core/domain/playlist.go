package domain

// Playlist is a named, ordered set of tracks. URL is set once the catalog
// has created it.
type Playlist struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	URL    string  `json:"url,omitempty"`
	Tracks []Track `json:"tracks"`
}

func NewPlaylist(id, name string) (*Playlist, error) {
	if id == "" || name == "" {
		return nil, ErrInvalidArg
	}
	return &Playlist{
		ID:     id,
		Name:   name,
		Tracks: []Track{},
	}, nil
}

// AddTrack appends a track to the playlist while preventing duplicate ISRCs.
// If the incoming track has a non-empty ISRC and that ISRC already exists in
// the playlist, AddTrack returns ErrDuplicateISRC.
func (p *Playlist) AddTrack(t Track) error {
	if t.ISRC != "" {
		for _, ex := range p.Tracks {
			if ex.ISRC != "" && ex.ISRC == t.ISRC {
				return ErrDuplicateISRC
			}
		}
	}
	p.Tracks = append(p.Tracks, t)
	return nil
}

// URIs lists the catalog URIs of the tracks in order.
func (p Playlist) URIs() []string {
	uris := make([]string, 0, len(p.Tracks))
	for _, t := range p.Tracks {
		if t.URI != "" {
			uris = append(uris, t.URI)
		}
	}
	return uris
}

// Analyze averages the audio features of all tracks. An empty playlist
// yields zero values.
func (p Playlist) Analyze() AudioFeatures {
	if len(p.Tracks) == 0 {
		return AudioFeatures{}
	}
	var sum AudioFeatures
	for _, t := range p.Tracks {
		sum.Danceability += t.Features.Danceability
		sum.Energy += t.Features.Energy
		sum.Valence += t.Features.Valence
		sum.Tempo += t.Features.Tempo
		sum.Instrumentalness += t.Features.Instrumentalness
		sum.Acousticness += t.Features.Acousticness
	}
	n := float64(len(p.Tracks))
	return AudioFeatures{
		Danceability:     sum.Danceability / n,
		Energy:           sum.Energy / n,
		Valence:          sum.Valence / n,
		Tempo:            sum.Tempo / n,
		Instrumentalness: sum.Instrumentalness / n,
		Acousticness:     sum.Acousticness / n,
	}
}
