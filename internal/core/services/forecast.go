package services

import (
	"context"
	"fmt"
	"time"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

const (
	defaultForecastDays = 5
	maxForecastDays     = 16
)

// Forecast returns the daily outlook. Zero days means the default of five.
func (o *Orchestrator) Forecast(ctx context.Context, days int) ([]domain.DailyForecast, error) {
	if days == 0 {
		days = defaultForecastDays
	}
	if days < 1 || days > maxForecastDays {
		return nil, fmt.Errorf("service: forecast days must be between 1 and %d: %w", maxForecastDays, domain.ErrInvalidArg)
	}

	forecast, err := o.weather.Daily(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load forecast: %w", err)
	}

	return forecast, nil
}

// HourlyForecast returns the hourly points for a YYYY-MM-DD date.
func (o *Orchestrator) HourlyForecast(ctx context.Context, date string) ([]domain.HourlyForecast, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, fmt.Errorf("service: invalid date %q: %w", date, domain.ErrInvalidArg)
	}

	hourly, err := o.weather.Hourly(ctx, date, defaultForecastDays)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load hourly forecast: %w", err)
	}

	return hourly, nil
}
