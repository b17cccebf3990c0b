package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SPOTIFY_CLIENT_ID", "id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Market != "AT" || cfg.PlaylistPrefix != "Vienna Vibe" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Latitude != 48.2085 || cfg.Longitude != 16.3721 {
		t.Errorf("coordinates: got %v,%v", cfg.Latitude, cfg.Longitude)
	}
	if cfg.WeatherCacheTTL != 10*time.Minute || cfg.RefreshInterval != 15*time.Minute {
		t.Errorf("durations: ttl=%v refresh=%v", cfg.WeatherCacheTTL, cfg.RefreshInterval)
	}
	if cfg.SpotifyRetryBackoff != 500*time.Millisecond || cfg.SpotifyMaxRetries != 3 {
		t.Errorf("retry: %v x%d", cfg.SpotifyRetryBackoff, cfg.SpotifyMaxRetries)
	}
	if cfg.WorkerCount != 2 || cfg.WorkerQueue != 100 || !cfg.RefreshEnabled {
		t.Errorf("workers: %d/%d refresh=%v", cfg.WorkerCount, cfg.WorkerQueue, cfg.RefreshEnabled)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("VIBE_LATITUDE", "47.0707")
	t.Setenv("VIBE_LONGITUDE", "15.4395")
	t.Setenv("WEATHER_CACHE_TTL", "30s")
	t.Setenv("WORKER_COUNT", "-4")
	t.Setenv("REFRESH_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Latitude != 47.0707 || cfg.Longitude != 15.4395 {
		t.Errorf("coordinates: got %v,%v", cfg.Latitude, cfg.Longitude)
	}
	if cfg.WeatherCacheTTL != 30*time.Second {
		t.Errorf("ttl: got %v", cfg.WeatherCacheTTL)
	}
	if cfg.WorkerCount != 2 {
		t.Errorf("invalid worker count must fall back to default, got %d", cfg.WorkerCount)
	}
	if cfg.RefreshEnabled {
		t.Error("expected refresh disabled")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing spotify secret", env: map[string]string{"SPOTIFY_CLIENT_ID": "id", "SPOTIFY_CLIENT_SECRET": ""}},
		{name: "bad latitude", env: map[string]string{"VIBE_LATITUDE": "north"}},
		{name: "latitude out of range", env: map[string]string{"VIBE_LATITUDE": "91"}},
		{name: "bad duration", env: map[string]string{"REFRESH_INTERVAL": "often"}},
		{name: "zero refresh", env: map[string]string{"REFRESH_INTERVAL": "0s"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
