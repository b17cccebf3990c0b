package ports

import (
	"context"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

// VibeRepository stores recorded vibe reports.
type VibeRepository interface {
	SaveVibe(ctx context.Context, rec domain.VibeRecord) error
	GetVibe(ctx context.Context, id string) (domain.VibeRecord, error)
	ListVibes(ctx context.Context, limit int) ([]domain.VibeRecord, error)
}

// TrackFeatureStore keeps audio features computed locally from previews.
type TrackFeatureStore interface {
	UpdateTrackFeatures(ctx context.Context, trackID string, features domain.AudioFeatures) error
	GetTrackFeatures(ctx context.Context, trackID string) (domain.AudioFeatures, error)
}
