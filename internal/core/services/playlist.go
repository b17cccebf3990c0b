package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

const (
	searchLimit  = 50
	previewCount = 6
)

// GenerationResult is everything produced by one playlist generation.
type GenerationResult struct {
	Message  string                `json:"message"`
	Report   domain.VibeReport     `json:"report"`
	Tech     domain.TechSummary    `json:"tech"`
	Playlist domain.Playlist       `json:"playlist"`
	Preview  []domain.TrackPreview `json:"preview"`
	Analysis domain.AudioFeatures  `json:"analysis"`
}

// GeneratePlaylist maps the current weather to a profile, searches the
// catalog with its seed genres and creates a playlist from the selection.
func (o *Orchestrator) GeneratePlaylist(ctx context.Context) (GenerationResult, error) {
	// 1. Weather -> profile
	report := o.CurrentVibe(ctx)
	profile := report.Profile
	result := GenerationResult{
		Report: report,
		Tech:   domain.Summarize(profile),
	}

	// 2. Candidate tracks, genre by genre
	candidates, err := o.searchCandidates(ctx, profile)
	if err != nil {
		return result, fmt.Errorf("service: search failed: %w", err)
	}

	// 3. Deduplicate, shuffle, cap
	draft, err := o.selectTracks(report.Observation, profile, candidates)
	if err != nil {
		return result, err
	}
	if len(draft.Tracks) < domain.MinPlaylistTracks {
		return result, fmt.Errorf("service: %w", &domain.NotEnoughTracksError{Found: len(draft.Tracks)})
	}

	result.Preview = o.previewTracks(ctx, draft.Tracks)
	o.attachFeatures(ctx, draft)
	result.Analysis = draft.Analyze()

	// 4. Create the playlist in the catalog
	user, err := o.catalog.CurrentUser(ctx)
	if err != nil {
		return result, fmt.Errorf("service: failed to load catalog user: %w", err)
	}

	description := fmt.Sprintf("Weather: %s | Mood: %s", report.Observation.Description, profile.Mood)
	created, err := o.catalog.CreatePlaylist(ctx, user.ID, draft.Name, description, true)
	if err != nil {
		return result, fmt.Errorf("service: failed to create playlist: %w", err)
	}

	if err := o.catalog.AddTracks(ctx, created.ID, draft.URIs()); err != nil {
		return result, fmt.Errorf("service: failed to add tracks: %w", err)
	}
	created.Tracks = draft.Tracks

	// 5. Hand previews to the analyzer
	o.queuePreviews(draft.Tracks)

	result.Playlist = created
	result.Message = "Playlist Created!"
	return result, nil
}

// UserName returns the catalog display name, "Guest" when the account is
// unavailable.
func (o *Orchestrator) UserName(ctx context.Context) string {
	user, err := o.catalog.CurrentUser(ctx)
	if err != nil {
		log.Printf("WARN service: failed to fetch user info: %v", err)
		return "Guest"
	}
	if user.DisplayName == "" {
		return "Music Lover"
	}
	return user.DisplayName
}

// searchCandidates runs one genre query per seed genre in order, then a
// combined OR query when the per-genre results fall short of the track limit.
// Failed queries are skipped.
func (o *Orchestrator) searchCandidates(ctx context.Context, profile domain.SoundProfile) ([]domain.Track, error) {
	var found []domain.Track
	for _, genre := range profile.SeedGenres {
		tracks, err := o.catalog.SearchTracks(ctx, genreQuery(genre), o.settings.Market, searchLimit)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("WARN service: genre search %q failed: %v", genre, err)
			continue
		}
		found = append(found, tracks...)
	}

	if len(found) < profile.TrackLimit && len(profile.SeedGenres) > 0 {
		parts := make([]string, len(profile.SeedGenres))
		for i, genre := range profile.SeedGenres {
			parts[i] = genreQuery(genre)
		}
		tracks, err := o.catalog.SearchTracks(ctx, strings.Join(parts, " OR "), o.settings.Market, searchLimit)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("WARN service: combined genre search failed: %v", err)
		} else {
			found = append(found, tracks...)
		}
	}

	return found, nil
}

func genreQuery(genre string) string {
	return fmt.Sprintf("genre:%q", genre)
}

func (o *Orchestrator) selectTracks(obs domain.Observation, profile domain.SoundProfile, candidates []domain.Track) (*domain.Playlist, error) {
	name := fmt.Sprintf("%s: %s", o.settings.PlaylistPrefix, obs.Condition)
	if o.settings.PlaylistFlag != "" {
		name += " " + o.settings.PlaylistFlag
	}
	draft, err := domain.NewPlaylist(o.newID(), name)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	seenURI := make(map[string]struct{}, len(candidates))
	seenRecording := make(map[string]struct{}, len(candidates))
	unique := make([]domain.Track, 0, len(candidates))
	for _, t := range candidates {
		if t.URI == "" {
			continue
		}
		if _, dup := seenURI[t.URI]; dup {
			continue
		}
		seenURI[t.URI] = struct{}{}

		key := domain.RecordingKey(t)
		if _, dup := seenRecording[key]; dup {
			continue
		}
		seenRecording[key] = struct{}{}
		unique = append(unique, t)
	}

	o.shuffle(unique)

	for _, t := range unique {
		if len(draft.Tracks) >= profile.TrackLimit {
			break
		}
		if err := draft.AddTrack(t); err != nil {
			continue
		}
	}

	return draft, nil
}

func (o *Orchestrator) previewTracks(ctx context.Context, tracks []domain.Track) []domain.TrackPreview {
	n := len(tracks)
	if n > previewCount {
		n = previewCount
	}
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = tracks[i].ID
	}

	details, err := o.catalog.GetTracks(ctx, ids)
	if err != nil || len(details) == 0 {
		if err != nil {
			log.Printf("WARN service: preview lookup failed: %v", err)
		}
		return []domain.TrackPreview{domain.UnavailablePreview}
	}

	previews := make([]domain.TrackPreview, 0, len(details))
	for _, t := range details {
		previews = append(previews, domain.TrackPreview{
			Artist:   t.Artist,
			Title:    t.Title,
			ImageURL: t.CoverURL,
		})
	}
	return previews
}

// attachFeatures fills in catalog audio features where the catalog has them.
func (o *Orchestrator) attachFeatures(ctx context.Context, draft *domain.Playlist) {
	ids := make([]string, len(draft.Tracks))
	for i, t := range draft.Tracks {
		ids[i] = t.ID
	}

	features, err := o.catalog.GetAudioFeatures(ctx, ids)
	if err != nil {
		log.Printf("WARN service: audio features unavailable: %v", err)
		return
	}

	for i := range draft.Tracks {
		if f, ok := features[draft.Tracks[i].ID]; ok {
			draft.Tracks[i].Features = f
		}
	}
}

func (o *Orchestrator) queuePreviews(tracks []domain.Track) {
	if o.previews == nil {
		return
	}
	for _, t := range tracks {
		if t.PreviewURL == "" {
			continue
		}
		o.previews.Enqueue(t.ID, t.PreviewURL)
	}
}
