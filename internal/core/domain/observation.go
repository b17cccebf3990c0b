package domain

import (
	"fmt"
	"time"
)

// Observation is a single weather reading at the configured location.
type Observation struct {
	Condition    Condition `json:"condition"`
	Hour         int       `json:"hour"`
	TemperatureC float64   `json:"temperature_c"`
	WindSpeedKph float64   `json:"wind_speed_kph"`
	Description  string    `json:"description"`
	ObservedAt   time.Time `json:"observed_at,omitempty"`
}

// NewObservation builds an observation and fills in its display description.
func NewObservation(cond Condition, hour int, tempC, windKph float64, at time.Time) Observation {
	return Observation{
		Condition:    cond,
		Hour:         hour,
		TemperatureC: tempC,
		WindSpeedKph: windKph,
		Description:  DescribeWeather(cond, tempC, windKph),
		ObservedAt:   at,
	}
}

// DescribeWeather renders the one-line summary shown next to a playlist.
func DescribeWeather(cond Condition, tempC, windKph float64) string {
	return fmt.Sprintf("%s | %.1f°C | Wind %.1f km/h", cond, tempC, windKph)
}

// OfflineObservation is used when the weather provider cannot be reached.
func OfflineObservation(at time.Time) Observation {
	return Observation{
		Condition:    ConditionNeutral,
		Hour:         12,
		TemperatureC: 15,
		WindSpeedKph: 10,
		Description:  "Offline Mode",
		ObservedAt:   at,
	}
}

// DailyForecast summarizes one forecast day. Pointer fields are nil when the
// provider omitted the value.
type DailyForecast struct {
	Date        string    `json:"date"`
	MaxC        *float64  `json:"max"`
	MinC        *float64  `json:"min"`
	WeatherCode *int      `json:"weather_code"`
	Condition   Condition `json:"condition"`
}

// HourlyForecast is one hourly forecast point.
type HourlyForecast struct {
	Time         string   `json:"time"`
	TemperatureC *float64 `json:"temp"`
	WeatherCode  *int     `json:"weather_code"`
	WindSpeedKph *float64 `json:"wind"`
}
