package spotify

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

const maxSearchLimit = 50

// SearchTracks runs a track search. Spotify caps limit at 50.
func (c *Client) SearchTracks(ctx context.Context, query, market string, limit int) ([]domain.Track, error) {
	if query == "" {
		return nil, fmt.Errorf("spotify adapter: empty search query: %w", domain.ErrInvalidArg)
	}
	if limit <= 0 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	searchURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: invalid search url: %w", err)
	}
	params := searchURL.Query()
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(limit))
	if market != "" {
		params.Set("market", market)
	}
	searchURL.RawQuery = params.Encode()

	log.Printf("DEBUG spotify adapter: search %q market=%s", query, market) // #nosec G706 -- query is built from internal genre lists

	var body searchResponse
	if err := c.getJSON(ctx, "search", searchURL.String(), &body); err != nil {
		return nil, err
	}

	tracks := make([]domain.Track, 0, len(body.Tracks.Items))
	for _, item := range body.Tracks.Items {
		if item.ID == "" {
			continue
		}
		tracks = append(tracks, mapTrackToDomain(item))
	}
	return tracks, nil
}
