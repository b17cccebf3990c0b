package openmeteo

// Values are pointers because Open-Meteo reports gaps as null.
type hourlyPayload struct {
	UTCOffsetSeconds int `json:"utc_offset_seconds"`
	Hourly           struct {
		Time          []string   `json:"time"`
		Temperature   []*float64 `json:"temperature_2m"`
		WindSpeed     []*float64 `json:"wind_speed_10m"`
		WeatherCode   []*int     `json:"weather_code"`
		WeatherCodeV1 []*int     `json:"weathercode"`
	} `json:"hourly"`
}

type dailyPayload struct {
	Daily struct {
		Time        []string   `json:"time"`
		MaxTemp     []*float64 `json:"temperature_2m_max"`
		MinTemp     []*float64 `json:"temperature_2m_min"`
		WeatherCode []*int     `json:"weathercode"`
	} `json:"daily"`
}

func floatAt(values []*float64, i int) *float64 {
	if i < 0 || i >= len(values) {
		return nil
	}
	return values[i]
}

func intAt(values []*int, i int) *int {
	if i < 0 || i >= len(values) {
		return nil
	}
	return values[i]
}
