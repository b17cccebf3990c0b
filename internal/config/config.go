// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the API.
type Config struct {
	Port string

	Latitude     float64
	Longitude    float64
	LocationName string

	Market         string
	PlaylistPrefix string
	PlaylistFlag   string

	OpenMeteoURL     string
	WeatherCacheTTL  time.Duration
	WeatherRateLimit float64
	WeatherRateBurst int
	RefreshInterval  time.Duration
	RefreshEnabled   bool

	SpotifyClientID     string
	SpotifyClientSecret string
	SpotifyRefreshToken string
	SpotifyAPIURL       string
	SpotifyMaxRetries   int
	SpotifyRetryBackoff time.Duration

	StoragePath string
	WorkerCount int
	WorkerQueue int
}

// Load reads configuration from the environment, after loading a .env file
// when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN config: could not load .env: %v", err)
	}

	cfg := &Config{
		Port:                getenvDefault("PORT", "8080"),
		LocationName:        getenvDefault("VIBE_LOCATION_NAME", "Vienna"),
		Market:              getenvDefault("VIBE_MARKET", "AT"),
		PlaylistPrefix:      getenvDefault("VIBE_PLAYLIST_PREFIX", "Vienna Vibe"),
		PlaylistFlag:        getenvDefault("VIBE_PLAYLIST_FLAG", "🇦🇹"),
		OpenMeteoURL:        getenvDefault("OPEN_METEO_URL", "https://api.open-meteo.com/v1/forecast"),
		WeatherRateBurst:    getenvInt("WEATHER_RATE_LIMIT_BURST", 5),
		RefreshEnabled:      getenvBool("REFRESH_ENABLED", true),
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		SpotifyRefreshToken: os.Getenv("SPOTIFY_REFRESH_TOKEN"),
		SpotifyAPIURL:       getenvDefault("SPOTIFY_API_URL", "https://api.spotify.com/v1"),
		SpotifyMaxRetries:   getenvInt("SPOTIFY_MAX_RETRIES", 3),
		SpotifyRetryBackoff: time.Duration(getenvInt("SPOTIFY_RETRY_BACKOFF_MS", 500)) * time.Millisecond,
		StoragePath:         getenvDefault("STORAGE_PATH", "vienna-vibe.db"),
		WorkerCount:         getenvInt("WORKER_COUNT", 2),
		WorkerQueue:         getenvInt("WORKER_QUEUE", 100),
	}

	var err error
	if cfg.Latitude, err = getenvFloat("VIBE_LATITUDE", 48.2085); err != nil {
		return nil, err
	}
	if cfg.Longitude, err = getenvFloat("VIBE_LONGITUDE", 16.3721); err != nil {
		return nil, err
	}
	if cfg.WeatherRateLimit, err = getenvFloat("WEATHER_RATE_LIMIT_RPS", 1); err != nil {
		return nil, err
	}
	if cfg.WeatherCacheTTL, err = getenvDuration("WEATHER_CACHE_TTL", "10m"); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "15m"); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SpotifyClientID == "" || c.SpotifyClientSecret == "" {
		return fmt.Errorf("config: SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET are required")
	}
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("config: coordinates out of range (%v, %v)", c.Latitude, c.Longitude)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("config: REFRESH_INTERVAL must be positive")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("WARN config: ignoring invalid %s=%q", key, v)
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("WARN config: ignoring invalid %s=%q", key, v)
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return d, nil
}
