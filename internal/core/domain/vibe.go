package domain

import "time"

// VibeReport pairs an observation with the profile mapped from it.
type VibeReport struct {
	Observation Observation  `json:"observation"`
	Profile     SoundProfile `json:"profile"`
	Offline     bool         `json:"offline"`
}

// VibeRecord is a persisted VibeReport.
type VibeRecord struct {
	ID         string     `json:"id"`
	Report     VibeReport `json:"report"`
	RecordedAt time.Time  `json:"recorded_at"`
}

// TechSummary is the compact view of a profile shown with a generated
// playlist.
type TechSummary struct {
	Mood    string   `json:"mood"`
	Valence float64  `json:"valence"`
	Energy  float64  `json:"energy"`
	Tempo   int      `json:"tempo"`
	Genres  []string `json:"genres"`
}

// Summarize builds the TechSummary for a profile, keeping the first three
// genres.
func Summarize(p SoundProfile) TechSummary {
	genres := p.SeedGenres
	if len(genres) > 3 {
		genres = genres[:3]
	}
	return TechSummary{
		Mood:    p.Mood,
		Valence: p.TargetValence,
		Energy:  p.TargetEnergy,
		Tempo:   int(p.TargetTempo),
		Genres:  append([]string(nil), genres...),
	}
}
