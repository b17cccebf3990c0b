package services

import (
	"context"
	"fmt"
	"log"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

const (
	defaultVibeLimit = 20
	maxVibeLimit     = 100
)

// CurrentVibe fetches the current observation and maps it. When the weather
// provider fails the offline observation is used instead, so a report is
// always returned.
func (o *Orchestrator) CurrentVibe(ctx context.Context) domain.VibeReport {
	obs, err := o.weather.Current(ctx)
	offline := false
	if err != nil {
		log.Printf("WARN service: weather unavailable, using offline observation: %v", err)
		obs = domain.OfflineObservation(o.now())
		offline = true
	}

	return domain.VibeReport{
		Observation: obs,
		Profile:     domain.MapWeather(obs),
		Offline:     offline,
	}
}

// MapObservation maps a caller-supplied observation without touching any
// collaborator.
func (o *Orchestrator) MapObservation(obs domain.Observation) domain.SoundProfile {
	return domain.MapWeather(obs)
}

// RecordVibe captures the current vibe and persists it.
func (o *Orchestrator) RecordVibe(ctx context.Context) (domain.VibeRecord, error) {
	rec := domain.VibeRecord{
		ID:         o.newID(),
		Report:     o.CurrentVibe(ctx),
		RecordedAt: o.now().UTC(),
	}

	if err := o.store.SaveVibe(ctx, rec); err != nil {
		return domain.VibeRecord{}, fmt.Errorf("service: failed to save vibe: %w", err)
	}

	return rec, nil
}

// GetVibe loads a recorded vibe.
func (o *Orchestrator) GetVibe(ctx context.Context, id string) (domain.VibeRecord, error) {
	if id == "" {
		return domain.VibeRecord{}, fmt.Errorf("service: vibe id cannot be empty: %w", domain.ErrInvalidArg)
	}

	rec, err := o.store.GetVibe(ctx, id)
	if err != nil {
		return domain.VibeRecord{}, fmt.Errorf("service: failed to load vibe: %w", err)
	}

	return rec, nil
}

// ListVibes returns the most recent records, newest first. Non-positive
// limits use the default and large ones are capped.
func (o *Orchestrator) ListVibes(ctx context.Context, limit int) ([]domain.VibeRecord, error) {
	if limit <= 0 {
		limit = defaultVibeLimit
	}
	if limit > maxVibeLimit {
		limit = maxVibeLimit
	}

	recs, err := o.store.ListVibes(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list vibes: %w", err)
	}

	return recs, nil
}

// TrackFeatures returns locally analyzed features for a track.
func (o *Orchestrator) TrackFeatures(ctx context.Context, trackID string) (domain.AudioFeatures, error) {
	if trackID == "" {
		return domain.AudioFeatures{}, fmt.Errorf("service: track id cannot be empty: %w", domain.ErrInvalidArg)
	}

	features, err := o.store.GetTrackFeatures(ctx, trackID)
	if err != nil {
		return domain.AudioFeatures{}, fmt.Errorf("service: failed to load track features: %w", err)
	}

	return features, nil
}
