package spotify

import (
	"context"
	"net/url"
	"strings"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

const maxTracksPerRequest = 50

// GetTracks fetches full track objects, batching IDs 50 at a time. Unknown
// IDs are skipped and order follows the input.
func (c *Client) GetTracks(ctx context.Context, ids []string) ([]domain.Track, error) {
	tracks := make([]domain.Track, 0, len(ids))
	for _, batch := range chunk(ids, maxTracksPerRequest) {
		u := c.baseURL + "/tracks?ids=" + url.QueryEscape(strings.Join(batch, ","))

		var body tracksResponse
		if err := c.getJSON(ctx, "tracks", u, &body); err != nil {
			return nil, err
		}
		for _, st := range body.Tracks {
			if st == nil {
				continue
			}
			tracks = append(tracks, mapTrackToDomain(*st))
		}
	}
	return tracks, nil
}

func chunk(ids []string, size int) [][]string {
	var out [][]string
	for len(ids) > 0 {
		n := size
		if len(ids) < n {
			n = len(ids)
		}
		out = append(out, ids[:n])
		ids = ids[n:]
	}
	return out
}
