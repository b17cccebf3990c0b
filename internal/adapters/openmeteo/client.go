// Package openmeteo is the weather provider backed by the Open-Meteo
// forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
	"github.com/GustaveMAG/vienna-vibe/internal/core/ports"
)

// DefaultBaseURL is the public forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Config configures a Client. Zero values get defaults.
type Config struct {
	BaseURL    string
	Latitude   float64
	Longitude  float64
	HTTPClient *http.Client
	// RateLimit is requests per second; Burst the bucket size.
	RateLimit float64
	Burst     int
	Backoff   BackoffConfig
}

// Client implements ports.WeatherProvider.
type Client struct {
	baseURL    string
	latitude   string
	longitude  string
	httpClient *http.Client
	backoff    BackoffConfig
	circuit    *gobreaker.CircuitBreaker
	limiter    *rate.Limiter
	now        func() time.Time
}

var _ ports.WeatherProvider = (*Client)(nil)

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}
	if cfg.Backoff.InitialInterval <= 0 {
		cfg.Backoff = BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		}
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		latitude:   strconv.FormatFloat(cfg.Latitude, 'f', 4, 64),
		longitude:  strconv.FormatFloat(cfg.Longitude, 'f', 4, 64),
		httpClient: cfg.HTTPClient,
		backoff:    cfg.Backoff,
		circuit:    newBreaker("openmeteo"),
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		now:        time.Now,
	}
}

// Current returns the observation for the current local hour at the
// configured location.
func (c *Client) Current(ctx context.Context) (domain.Observation, error) {
	var payload hourlyPayload
	err := c.fetch(ctx, url.Values{
		"hourly":        {"temperature_2m,rain,snowfall,wind_speed_10m,weather_code,visibility"},
		"timezone":      {"auto"},
		"forecast_days": {"1"},
	}, &payload)
	if err != nil {
		return domain.Observation{}, err
	}

	now := c.now()
	local := now.UTC().Add(time.Duration(payload.UTCOffsetSeconds) * time.Second)
	hour := local.Hour()

	idx := hour
	stamp := local.Format("2006-01-02T15:00")
	for i, ts := range payload.Hourly.Time {
		if ts == stamp {
			idx = i
			break
		}
	}

	temp := floatAt(payload.Hourly.Temperature, idx)
	wind := floatAt(payload.Hourly.WindSpeed, idx)
	code := intAt(payload.Hourly.WeatherCode, idx)
	if temp == nil || wind == nil || code == nil {
		return domain.Observation{}, fmt.Errorf("openmeteo: incomplete data for hour %d", hour)
	}

	return domain.NewObservation(domain.ConditionFromCode(*code), hour, *temp, *wind, now), nil
}

// Daily returns one summary per forecast day.
func (c *Client) Daily(ctx context.Context, days int) ([]domain.DailyForecast, error) {
	if days <= 0 {
		days = 5
	}

	var payload dailyPayload
	err := c.fetch(ctx, url.Values{
		"daily":         {"temperature_2m_max,temperature_2m_min,weathercode"},
		"timezone":      {"auto"},
		"forecast_days": {strconv.Itoa(days)},
	}, &payload)
	if err != nil {
		return nil, err
	}

	out := make([]domain.DailyForecast, 0, len(payload.Daily.Time))
	for i, date := range payload.Daily.Time {
		code := intAt(payload.Daily.WeatherCode, i)
		cond := domain.ConditionNeutral
		if code != nil {
			cond = domain.ConditionFromCode(*code)
		}
		out = append(out, domain.DailyForecast{
			Date:        date,
			MaxC:        floatAt(payload.Daily.MaxTemp, i),
			MinC:        floatAt(payload.Daily.MinTemp, i),
			WeatherCode: code,
			Condition:   cond,
		})
	}
	return out, nil
}

// Hourly returns the hourly points whose timestamp falls on date
// (YYYY-MM-DD). days bounds how far ahead the forecast is requested.
func (c *Client) Hourly(ctx context.Context, date string, days int) ([]domain.HourlyForecast, error) {
	if days <= 0 {
		days = 5
	}

	var payload hourlyPayload
	err := c.fetch(ctx, url.Values{
		"hourly":        {"temperature_2m,weathercode,wind_speed_10m"},
		"timezone":      {"auto"},
		"forecast_days": {strconv.Itoa(days)},
	}, &payload)
	if err != nil {
		return nil, err
	}

	out := []domain.HourlyForecast{}
	for i, ts := range payload.Hourly.Time {
		if !strings.HasPrefix(ts, date) {
			continue
		}
		out = append(out, domain.HourlyForecast{
			Time:         ts,
			TemperatureC: floatAt(payload.Hourly.Temperature, i),
			WeatherCode:  intAt(payload.Hourly.WeatherCodeV1, i),
			WindSpeedKph: floatAt(payload.Hourly.WindSpeed, i),
		})
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("openmeteo: rate limit wait canceled: %w", err)
	}

	params.Set("latitude", c.latitude)
	params.Set("longitude", c.longitude)
	u := c.baseURL + "?" + params.Encode()

	resp, err := doRequestWithResilience(ctx, c.httpClient, c.backoff, c.circuit, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	})
	if err != nil {
		return fmt.Errorf("openmeteo: request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("openmeteo: decode error: %w", err)
	}
	return nil
}
