package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

// UpdateTrackFeatures upserts locally analyzed features for a track.
func (a *Adapter) UpdateTrackFeatures(ctx context.Context, trackID string, features domain.AudioFeatures) error {
	query := `
		INSERT INTO track_features (
			track_id, danceability, energy, valence, tempo, instrumentalness, acousticness, analyzed_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(track_id) DO UPDATE SET
			danceability=excluded.danceability,
			energy=excluded.energy,
			valence=excluded.valence,
			tempo=excluded.tempo,
			instrumentalness=excluded.instrumentalness,
			acousticness=excluded.acousticness,
			analyzed_at=excluded.analyzed_at;
	`
	if _, err := a.db.ExecContext(
		ctx,
		query,
		trackID,
		features.Danceability,
		features.Energy,
		features.Valence,
		features.Tempo,
		features.Instrumentalness,
		features.Acousticness,
	); err != nil {
		return fmt.Errorf("sqlite adapter: failed to update track features: %w", err)
	}

	return nil
}

// GetTrackFeatures returns stored features or domain.ErrNotFound.
func (a *Adapter) GetTrackFeatures(ctx context.Context, trackID string) (domain.AudioFeatures, error) {
	query := `
		SELECT
			IFNULL(danceability, 0),
			IFNULL(energy, 0),
			IFNULL(valence, 0),
			IFNULL(tempo, 0),
			IFNULL(instrumentalness, 0),
			IFNULL(acousticness, 0)
		FROM track_features
		WHERE track_id = ?
	`

	var f domain.AudioFeatures
	if err := a.db.QueryRowContext(ctx, query, trackID).Scan(
		&f.Danceability,
		&f.Energy,
		&f.Valence,
		&f.Tempo,
		&f.Instrumentalness,
		&f.Acousticness,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AudioFeatures{}, domain.ErrNotFound
		}
		return domain.AudioFeatures{}, fmt.Errorf("sqlite adapter: failed to load track features: %w", err)
	}

	return f, nil
}
