package domain

import "math"

const (
	windThresholdKph    = 20.0
	windTempoFactor     = 0.5
	coldThresholdC      = 5.0
	coldAcousticness    = 0.7
	defaultAcousticness = 0.2
)

// soundState is the accumulator threaded through the mapping stages. Stages
// take it by value and return a new one.
type soundState struct {
	vibe         TimeVibe
	genres       []string
	valence      float64
	energy       float64
	tempo        float64
	acousticness float64
}

// rule bundles the effects of one matched bracket or condition. A nil Genres
// keeps whatever the earlier stages chose.
type rule struct {
	Valence Adjustment
	Energy  Adjustment
	Tempo   Adjustment
	Genres  []string
}

func (r rule) apply(s soundState) soundState {
	s.valence = r.Valence.Apply(s.valence)
	s.energy = r.Energy.Apply(s.energy)
	s.tempo = r.Tempo.Apply(s.tempo)
	if r.Genres != nil {
		s.genres = r.Genres
	}
	return s
}

type stage func(s soundState, obs Observation) soundState

var stages = []stage{
	timeOfDayStage,
	conditionStage,
	windStage,
	temperatureStage,
	normalizeStage,
}

// MapWeather turns an observation into a sound profile. It never fails:
// unknown conditions count as Neutral and hours wrap modulo 24.
func MapWeather(obs Observation) SoundProfile {
	obs.Hour = normalizeHour(obs.Hour)
	if !obs.Condition.Valid() {
		obs.Condition = ConditionNeutral
	}

	s := baseline(obs)
	for _, apply := range stages {
		s = apply(s, obs)
	}

	n := len(s.genres)
	if n > MaxSeedGenres {
		n = MaxSeedGenres
	}
	genres := make([]string, n)
	copy(genres, s.genres)

	return SoundProfile{
		Mood:               obs.Condition.String() + " " + s.vibe.String(),
		SeedGenres:         genres,
		TargetValence:      s.valence,
		TargetEnergy:       s.energy,
		TargetTempo:        s.tempo,
		TargetAcousticness: s.acousticness,
		TrackLimit:         TrackLimit,
	}
}

func baseline(obs Observation) soundState {
	return soundState{
		vibe:         TimeVibeForHour(obs.Hour),
		genres:       []string{"pop"},
		valence:      0.5,
		energy:       0.5,
		tempo:        110,
		acousticness: 0,
	}
}

func timeOfDayStage(s soundState, _ Observation) soundState {
	return timeRule(s.vibe).apply(s)
}

func conditionStage(s soundState, obs Observation) soundState {
	return conditionRule(obs.Condition, s.vibe).apply(s)
}

func windStage(s soundState, obs Observation) soundState {
	if obs.WindSpeedKph > windThresholdKph {
		s.tempo = Delta(obs.WindSpeedKph * windTempoFactor).Apply(s.tempo)
	}
	return s
}

func temperatureStage(s soundState, obs Observation) soundState {
	if obs.TemperatureC < coldThresholdC {
		s.acousticness = coldAcousticness
	} else {
		s.acousticness = defaultAcousticness
	}
	return s
}

func normalizeStage(s soundState, _ Observation) soundState {
	s.valence = clamp01(s.valence)
	s.energy = clamp01(s.energy)
	return s
}

func timeRule(v TimeVibe) rule {
	switch v {
	case VibeMorning:
		return rule{Energy: Delta(-0.2)}
	case VibeDay:
		return rule{Energy: Delta(0.2)}
	case VibeEvening:
		return rule{Energy: Delta(-0.1), Tempo: Delta(-10)}
	default:
		return rule{
			Energy: SetAbsolute(0.4),
			Genres: []string{"deep-house", "ambient", "minimal-techno"},
		}
	}
}

func conditionRule(c Condition, v TimeVibe) rule {
	switch c {
	case ConditionClear:
		r := rule{Valence: SetAbsolute(0.8)}
		switch v {
		case VibeMorning:
			r.Genres = []string{"acoustic", "folk", "singer-songwriter"}
		case VibeDay:
			r.Genres = []string{"pop", "disco", "summer"}
		case VibeNight:
			r.Genres = []string{"tropical-house", "synth-pop"}
		}
		// Evening keeps the time-rule genres.
		return r
	case ConditionCloudy:
		return rule{
			Valence: SetAbsolute(0.5),
			Genres:  []string{"indie", "alternative", "lo-fi"},
		}
	case ConditionRain:
		r := rule{Valence: SetAbsolute(0.3), Energy: Delta(-0.1)}
		if v == VibeNight {
			r.Genres = []string{"jazz", "piano", "sleep"}
		} else {
			r.Genres = []string{"blues", "soul", "r-n-b"}
		}
		return r
	case ConditionSnow:
		return rule{
			Valence: SetAbsolute(0.6),
			Energy:  SetAbsolute(0.3),
			Tempo:   SetAbsolute(80),
			Genres:  []string{"classical", "ambient", "christmas"},
		}
	case ConditionThunderstorm:
		return rule{
			Valence: SetAbsolute(0.2),
			Energy:  SetAbsolute(0.9),
			Genres:  []string{"rock", "metal", "soundtracks"},
		}
	case ConditionNeutral:
		return rule{}
	}
	return rule{}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
