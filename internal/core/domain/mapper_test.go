package domain

import (
	"math"
	"reflect"
	"sync"
	"testing"
)

func TestMapWeather_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		obs  Observation
		want SoundProfile
	}{
		{
			name: "clear morning",
			obs:  Observation{Condition: ConditionClear, Hour: 9, TemperatureC: 18, WindSpeedKph: 5},
			want: SoundProfile{
				Mood:               "Clear Morning",
				SeedGenres:         []string{"acoustic", "folk", "singer-songwriter"},
				TargetValence:      0.8,
				TargetEnergy:       0.3,
				TargetTempo:        110,
				TargetAcousticness: 0.2,
				TrackLimit:         20,
			},
		},
		{
			name: "thunderstorm day with wind and cold",
			obs:  Observation{Condition: ConditionThunderstorm, Hour: 15, TemperatureC: 2, WindSpeedKph: 25},
			want: SoundProfile{
				Mood:               "Thunderstorm Day",
				SeedGenres:         []string{"rock", "metal", "soundtracks"},
				TargetValence:      0.2,
				TargetEnergy:       0.9,
				TargetTempo:        122.5,
				TargetAcousticness: 0.7,
				TrackLimit:         20,
			},
		},
		{
			name: "neutral night keeps night genres",
			obs:  Observation{Condition: ConditionNeutral, Hour: 2, TemperatureC: 10, WindSpeedKph: 0},
			want: SoundProfile{
				Mood:               "Neutral Night",
				SeedGenres:         []string{"deep-house", "ambient", "minimal-techno"},
				TargetValence:      0.5,
				TargetEnergy:       0.4,
				TargetTempo:        110,
				TargetAcousticness: 0.2,
				TrackLimit:         20,
			},
		},
		{
			name: "snow evening overrides evening deltas before wind",
			obs:  Observation{Condition: ConditionSnow, Hour: 20, TemperatureC: -3, WindSpeedKph: 30},
			want: SoundProfile{
				Mood:               "Snow Evening",
				SeedGenres:         []string{"classical", "ambient", "christmas"},
				TargetValence:      0.6,
				TargetEnergy:       0.3,
				TargetTempo:        95,
				TargetAcousticness: 0.7,
				TrackLimit:         20,
			},
		},
		{
			name: "clear evening keeps baseline genres",
			obs:  Observation{Condition: ConditionClear, Hour: 21, TemperatureC: 12, WindSpeedKph: 3},
			want: SoundProfile{
				Mood:               "Clear Evening",
				SeedGenres:         []string{"pop"},
				TargetValence:      0.8,
				TargetEnergy:       0.4,
				TargetTempo:        100,
				TargetAcousticness: 0.2,
				TrackLimit:         20,
			},
		},
		{
			name: "clear night",
			obs:  Observation{Condition: ConditionClear, Hour: 23, TemperatureC: 20, WindSpeedKph: 0},
			want: SoundProfile{
				Mood:               "Clear Night",
				SeedGenres:         []string{"tropical-house", "synth-pop"},
				TargetValence:      0.8,
				TargetEnergy:       0.4,
				TargetTempo:        110,
				TargetAcousticness: 0.2,
				TrackLimit:         20,
			},
		},
		{
			name: "rain night stacks energy delta on night reset",
			obs:  Observation{Condition: ConditionRain, Hour: 1, TemperatureC: 8, WindSpeedKph: 10},
			want: SoundProfile{
				Mood:               "Rain Night",
				SeedGenres:         []string{"jazz", "piano", "sleep"},
				TargetValence:      0.3,
				TargetEnergy:       0.3,
				TargetTempo:        110,
				TargetAcousticness: 0.2,
				TrackLimit:         20,
			},
		},
		{
			name: "rain day",
			obs:  Observation{Condition: ConditionRain, Hour: 13, TemperatureC: 14, WindSpeedKph: 21},
			want: SoundProfile{
				Mood:               "Rain Day",
				SeedGenres:         []string{"blues", "soul", "r-n-b"},
				TargetValence:      0.3,
				TargetEnergy:       0.6,
				TargetTempo:        120.5,
				TargetAcousticness: 0.2,
				TrackLimit:         20,
			},
		},
		{
			name: "cloudy six pm falls into night bracket",
			obs:  Observation{Condition: ConditionCloudy, Hour: 18, TemperatureC: 5, WindSpeedKph: 20},
			want: SoundProfile{
				Mood:               "Cloudy Night",
				SeedGenres:         []string{"indie", "alternative", "lo-fi"},
				TargetValence:      0.5,
				TargetEnergy:       0.4,
				TargetTempo:        110,
				TargetAcousticness: 0.2,
				TrackLimit:         20,
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := MapWeather(tc.obs)
			if got.Mood != tc.want.Mood {
				t.Errorf("Mood: got %q, want %q", got.Mood, tc.want.Mood)
			}
			if !reflect.DeepEqual(got.SeedGenres, tc.want.SeedGenres) {
				t.Errorf("SeedGenres: got %v, want %v", got.SeedGenres, tc.want.SeedGenres)
			}
			if !floatEquals(got.TargetValence, tc.want.TargetValence, 1e-9) {
				t.Errorf("TargetValence: got %v, want %v", got.TargetValence, tc.want.TargetValence)
			}
			if !floatEquals(got.TargetEnergy, tc.want.TargetEnergy, 1e-9) {
				t.Errorf("TargetEnergy: got %v, want %v", got.TargetEnergy, tc.want.TargetEnergy)
			}
			if !floatEquals(got.TargetTempo, tc.want.TargetTempo, 1e-9) {
				t.Errorf("TargetTempo: got %v, want %v", got.TargetTempo, tc.want.TargetTempo)
			}
			if got.TargetAcousticness != tc.want.TargetAcousticness {
				t.Errorf("TargetAcousticness: got %v, want %v", got.TargetAcousticness, tc.want.TargetAcousticness)
			}
			if got.TrackLimit != tc.want.TrackLimit {
				t.Errorf("TrackLimit: got %d, want %d", got.TrackLimit, tc.want.TrackLimit)
			}
		})
	}
}

func TestMapWeather_Invariants(t *testing.T) {
	conditions := []Condition{
		ConditionNeutral, ConditionClear, ConditionCloudy,
		ConditionRain, ConditionSnow, ConditionThunderstorm,
		Condition(42), Condition(-1),
	}
	temps := []float64{-40, 4.999, 5, 35, math.Inf(1)}
	winds := []float64{0, 20, 20.01, 150}

	for _, cond := range conditions {
		for hour := -3; hour < 30; hour++ {
			for _, temp := range temps {
				for _, wind := range winds {
					obs := Observation{Condition: cond, Hour: hour, TemperatureC: temp, WindSpeedKph: wind}
					got := MapWeather(obs)

					if got.TargetValence < 0 || got.TargetValence > 1 {
						t.Fatalf("%+v: valence %v out of range", obs, got.TargetValence)
					}
					if got.TargetEnergy < 0 || got.TargetEnergy > 1 {
						t.Fatalf("%+v: energy %v out of range", obs, got.TargetEnergy)
					}
					wantAcoustic := 0.2
					if temp < 5 {
						wantAcoustic = 0.7
					}
					if got.TargetAcousticness != wantAcoustic {
						t.Fatalf("%+v: acousticness %v, want %v", obs, got.TargetAcousticness, wantAcoustic)
					}
					if len(got.SeedGenres) == 0 || len(got.SeedGenres) > MaxSeedGenres {
						t.Fatalf("%+v: %d seed genres", obs, len(got.SeedGenres))
					}
					if got.TrackLimit != TrackLimit {
						t.Fatalf("%+v: track limit %d", obs, got.TrackLimit)
					}
				}
			}
		}
	}
}

func TestMapWeather_Deterministic(t *testing.T) {
	obs := Observation{Condition: ConditionRain, Hour: 7, TemperatureC: 3.25, WindSpeedKph: 41.7}
	first := MapWeather(obs)

	var wg sync.WaitGroup
	results := make([]SoundProfile, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = MapWeather(obs)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("call %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestMapWeather_ReturnsIndependentGenres(t *testing.T) {
	obs := Observation{Condition: ConditionCloudy, Hour: 10, TemperatureC: 10}
	first := MapWeather(obs)
	first.SeedGenres[0] = "mutated"

	second := MapWeather(obs)
	if second.SeedGenres[0] != "indie" {
		t.Fatalf("expected fresh genres, got %v", second.SeedGenres)
	}
}

func TestMapWeather_Hardening(t *testing.T) {
	tests := []struct {
		name     string
		obs      Observation
		wantMood string
	}{
		{
			name:     "unknown condition is neutral",
			obs:      Observation{Condition: Condition(99), Hour: 14},
			wantMood: "Neutral Day",
		},
		{
			name:     "hour wraps forward",
			obs:      Observation{Condition: ConditionCloudy, Hour: 33},
			wantMood: "Cloudy Morning",
		},
		{
			name:     "negative hour wraps backward",
			obs:      Observation{Condition: ConditionSnow, Hour: -4},
			wantMood: "Snow Evening",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapWeather(tc.obs)
			if got.Mood != tc.wantMood {
				t.Fatalf("Mood: got %q, want %q", got.Mood, tc.wantMood)
			}
		})
	}
}

func TestAdjustment_Apply(t *testing.T) {
	tests := []struct {
		name string
		adj  Adjustment
		in   float64
		want float64
	}{
		{name: "keep", adj: Adjustment{}, in: 0.5, want: 0.5},
		{name: "delta", adj: Delta(-0.2), in: 0.5, want: 0.3},
		{name: "set", adj: SetAbsolute(80), in: 100, want: 80},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.adj.Apply(tc.in); !floatEquals(got, tc.want, 1e-9) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
