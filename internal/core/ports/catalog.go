package ports

import (
	"context"
	"errors"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

// ErrCatalogUnavailable is returned when an operation needs a catalog
// capability that is not configured, such as playlist creation without a
// user token.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CatalogUser identifies the account playlists are created for.
type CatalogUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// CatalogProvider is the music catalog and playlist service.
type CatalogProvider interface {
	SearchTracks(ctx context.Context, query, market string, limit int) ([]domain.Track, error)
	GetTracks(ctx context.Context, ids []string) ([]domain.Track, error)
	GetAudioFeatures(ctx context.Context, ids []string) (map[string]domain.AudioFeatures, error)
	CurrentUser(ctx context.Context) (CatalogUser, error)
	CreatePlaylist(ctx context.Context, userID, name, description string, public bool) (domain.Playlist, error)
	AddTracks(ctx context.Context, playlistID string, uris []string) error
}
