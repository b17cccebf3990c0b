package ports

import (
	"context"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

// WeatherProvider supplies observations and forecasts for the configured
// location.
type WeatherProvider interface {
	Current(ctx context.Context) (domain.Observation, error)
	Daily(ctx context.Context, days int) ([]domain.DailyForecast, error)
	Hourly(ctx context.Context, date string, days int) ([]domain.HourlyForecast, error)
}
