package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
	"github.com/GustaveMAG/vienna-vibe/internal/core/ports"
)

const maxURIsPerRequest = 100

// CurrentUser returns the account behind the user token.
func (c *Client) CurrentUser(ctx context.Context) (ports.CatalogUser, error) {
	if !c.userAuth {
		return ports.CatalogUser{}, fmt.Errorf("spotify adapter: no user token: %w", ports.ErrCatalogUnavailable)
	}

	var me spotifyUser
	if err := c.getJSON(ctx, "me", c.baseURL+"/me", &me); err != nil {
		return ports.CatalogUser{}, unauthorized(err)
	}
	return ports.CatalogUser{ID: me.ID, DisplayName: me.DisplayName}, nil
}

// CreatePlaylist creates an empty playlist owned by userID.
func (c *Client) CreatePlaylist(ctx context.Context, userID, name, description string, public bool) (domain.Playlist, error) {
	if !c.userAuth {
		return domain.Playlist{}, fmt.Errorf("spotify adapter: no user token: %w", ports.ErrCatalogUnavailable)
	}
	if userID == "" || name == "" {
		return domain.Playlist{}, fmt.Errorf("spotify adapter: user id and name are required: %w", domain.ErrInvalidArg)
	}

	u := fmt.Sprintf("%s/users/%s/playlists", c.baseURL, url.PathEscape(userID))
	req := createPlaylistRequest{Name: name, Description: description, Public: public}

	var created spotifyPlaylist
	if err := c.sendJSON(ctx, http.MethodPost, "create playlist", u, req, &created); err != nil {
		return domain.Playlist{}, unauthorized(err)
	}
	return mapPlaylistToDomain(created), nil
}

// AddTracks appends URIs to a playlist, 100 per request as the API allows.
func (c *Client) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	if !c.userAuth {
		return fmt.Errorf("spotify adapter: no user token: %w", ports.ErrCatalogUnavailable)
	}
	if playlistID == "" {
		return fmt.Errorf("spotify adapter: playlist id is required: %w", domain.ErrInvalidArg)
	}

	u := fmt.Sprintf("%s/playlists/%s/tracks", c.baseURL, url.PathEscape(playlistID))
	for _, batch := range chunk(uris, maxURIsPerRequest) {
		if err := c.sendJSON(ctx, http.MethodPost, "add tracks", u, addTracksRequest{URIs: batch}, nil); err != nil {
			return unauthorized(err)
		}
	}
	return nil
}

// unauthorized marks 401/403 responses as a missing catalog capability.
func unauthorized(err error) error {
	var se *statusError
	if errors.As(err, &se) && (se.Code == http.StatusUnauthorized || se.Code == http.StatusForbidden) {
		return fmt.Errorf("%w: %w", err, ports.ErrCatalogUnavailable)
	}
	return err
}
