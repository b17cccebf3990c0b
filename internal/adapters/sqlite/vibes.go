package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

const vibeColumns = `id, recorded_at, condition, hour, temperature_c, wind_speed_kph,
	description, observed_at, offline, mood, seed_genres,
	target_valence, target_energy, target_tempo, target_acousticness, track_limit`

// SaveVibe inserts or replaces a recorded vibe.
func (a *Adapter) SaveVibe(ctx context.Context, rec domain.VibeRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("sqlite adapter: vibe id is required: %w", domain.ErrInvalidArg)
	}

	genres, err := json.Marshal(rec.Report.Profile.SeedGenres)
	if err != nil {
		return fmt.Errorf("sqlite adapter: failed to encode genres: %w", err)
	}

	obs := rec.Report.Observation
	profile := rec.Report.Profile

	var observedAt sql.NullTime
	if !obs.ObservedAt.IsZero() {
		observedAt = sql.NullTime{Time: obs.ObservedAt.UTC(), Valid: true}
	}

	query := `
		INSERT INTO vibes (` + vibeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			recorded_at=excluded.recorded_at,
			condition=excluded.condition,
			hour=excluded.hour,
			temperature_c=excluded.temperature_c,
			wind_speed_kph=excluded.wind_speed_kph,
			description=excluded.description,
			observed_at=excluded.observed_at,
			offline=excluded.offline,
			mood=excluded.mood,
			seed_genres=excluded.seed_genres,
			target_valence=excluded.target_valence,
			target_energy=excluded.target_energy,
			target_tempo=excluded.target_tempo,
			target_acousticness=excluded.target_acousticness,
			track_limit=excluded.track_limit;
	`
	if _, err := a.db.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.RecordedAt.UTC(),
		obs.Condition.String(),
		obs.Hour,
		obs.TemperatureC,
		obs.WindSpeedKph,
		obs.Description,
		observedAt,
		rec.Report.Offline,
		profile.Mood,
		string(genres),
		profile.TargetValence,
		profile.TargetEnergy,
		profile.TargetTempo,
		profile.TargetAcousticness,
		profile.TrackLimit,
	); err != nil {
		return fmt.Errorf("sqlite adapter: failed to save vibe: %w", err)
	}

	return nil
}

// GetVibe loads one recorded vibe.
func (a *Adapter) GetVibe(ctx context.Context, id string) (domain.VibeRecord, error) {
	row := a.db.QueryRowContext(ctx, "SELECT "+vibeColumns+" FROM vibes WHERE id = ?", id)
	rec, err := scanVibe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.VibeRecord{}, domain.ErrNotFound
		}
		return domain.VibeRecord{}, fmt.Errorf("sqlite adapter: failed to load vibe: %w", err)
	}
	return rec, nil
}

// ListVibes returns up to limit records, newest first.
func (a *Adapter) ListVibes(ctx context.Context, limit int) ([]domain.VibeRecord, error) {
	rows, err := a.db.QueryContext(ctx,
		"SELECT "+vibeColumns+" FROM vibes ORDER BY recorded_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("sqlite adapter: failed to list vibes: %w", err)
	}
	defer rows.Close()

	recs := []domain.VibeRecord{}
	for rows.Next() {
		rec, err := scanVibe(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite adapter: failed to scan vibe: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite adapter: failed to iterate vibes: %w", err)
	}

	return recs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVibe(s scanner) (domain.VibeRecord, error) {
	var (
		rec         domain.VibeRecord
		condition   string
		description sql.NullString
		observedAt  sql.NullTime
		genres      string
		recordedAt  time.Time
	)
	obs := &rec.Report.Observation
	profile := &rec.Report.Profile

	if err := s.Scan(
		&rec.ID,
		&recordedAt,
		&condition,
		&obs.Hour,
		&obs.TemperatureC,
		&obs.WindSpeedKph,
		&description,
		&observedAt,
		&rec.Report.Offline,
		&profile.Mood,
		&genres,
		&profile.TargetValence,
		&profile.TargetEnergy,
		&profile.TargetTempo,
		&profile.TargetAcousticness,
		&profile.TrackLimit,
	); err != nil {
		return domain.VibeRecord{}, err
	}

	rec.RecordedAt = recordedAt.UTC()
	obs.Condition = domain.ParseCondition(condition)
	if description.Valid {
		obs.Description = description.String
	}
	if observedAt.Valid {
		obs.ObservedAt = observedAt.Time.UTC()
	}
	if err := json.Unmarshal([]byte(genres), &profile.SeedGenres); err != nil {
		return domain.VibeRecord{}, fmt.Errorf("decode genres: %w", err)
	}

	return rec, nil
}
