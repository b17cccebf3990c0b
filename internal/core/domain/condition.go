package domain

import "strings"

// Condition is the normalized weather condition the mood rules branch on.
type Condition int

const (
	ConditionNeutral Condition = iota
	ConditionClear
	ConditionCloudy
	ConditionRain
	ConditionSnow
	ConditionThunderstorm
)

var conditionNames = [...]string{
	ConditionNeutral:      "Neutral",
	ConditionClear:        "Clear",
	ConditionCloudy:       "Cloudy",
	ConditionRain:         "Rain",
	ConditionSnow:         "Snow",
	ConditionThunderstorm: "Thunderstorm",
}

// Valid reports whether c is one of the six known conditions.
func (c Condition) Valid() bool {
	return c >= ConditionNeutral && c <= ConditionThunderstorm
}

func (c Condition) String() string {
	if !c.Valid() {
		return conditionNames[ConditionNeutral]
	}
	return conditionNames[c]
}

// MarshalText encodes the condition by name.
func (c Condition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a condition name. Unknown names decode to Neutral.
func (c *Condition) UnmarshalText(text []byte) error {
	*c = ParseCondition(string(text))
	return nil
}

// ParseCondition resolves a case-insensitive condition name. Unknown names
// resolve to ConditionNeutral.
func ParseCondition(name string) Condition {
	cond, _ := LookupCondition(name)
	return cond
}

// LookupCondition is ParseCondition with an explicit found flag.
func LookupCondition(name string) (Condition, bool) {
	trimmed := strings.TrimSpace(name)
	for i, n := range conditionNames {
		if strings.EqualFold(n, trimmed) {
			return Condition(i), true
		}
	}
	return ConditionNeutral, false
}

// ConditionFromCode maps a WMO weather interpretation code, as reported by
// Open-Meteo, to a Condition. Codes outside the known groups (fog, for
// instance) map to ConditionNeutral.
func ConditionFromCode(code int) Condition {
	switch code {
	case 0:
		return ConditionClear
	case 1, 2, 3:
		return ConditionCloudy
	case 51, 53, 55, 56, 57, 61, 63, 65, 66, 67, 80, 81, 82:
		return ConditionRain
	case 71, 73, 75, 77, 85, 86:
		return ConditionSnow
	case 95, 96, 99:
		return ConditionThunderstorm
	default:
		return ConditionNeutral
	}
}
