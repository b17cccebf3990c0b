package domain

// TrackLimit is the number of tracks a generated playlist aims for.
const TrackLimit = 20

// MaxSeedGenres caps how many genres a profile hands to catalog search.
const MaxSeedGenres = 5

// SoundProfile is the audio target derived from an observation.
type SoundProfile struct {
	Mood               string   `json:"mood"`
	SeedGenres         []string `json:"seed_genres"`
	TargetValence      float64  `json:"target_valence"`
	TargetEnergy       float64  `json:"target_energy"`
	TargetTempo        float64  `json:"target_tempo"`
	TargetAcousticness float64  `json:"target_acousticness"`
	TrackLimit         int      `json:"limit"`
}

// AdjustmentKind tags how a rule touches a numeric target.
type AdjustmentKind int

const (
	// Keep leaves the value untouched.
	Keep AdjustmentKind = iota
	// DeltaKind adds to the running value.
	DeltaKind
	// SetKind replaces the running value.
	SetKind
)

// Adjustment is a single rule effect on one numeric target.
type Adjustment struct {
	Kind  AdjustmentKind
	Value float64
}

// Delta returns an adjustment that adds x.
func Delta(x float64) Adjustment { return Adjustment{Kind: DeltaKind, Value: x} }

// SetAbsolute returns an adjustment that replaces the value with x.
func SetAbsolute(x float64) Adjustment { return Adjustment{Kind: SetKind, Value: x} }

// Apply returns v after the adjustment.
func (a Adjustment) Apply(v float64) float64 {
	switch a.Kind {
	case DeltaKind:
		return v + a.Value
	case SetKind:
		return a.Value
	default:
		return v
	}
}
