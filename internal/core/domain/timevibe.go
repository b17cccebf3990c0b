package domain

// TimeVibe is the time-of-day bracket derived from the local hour.
type TimeVibe int

const (
	VibeMorning TimeVibe = iota
	VibeDay
	VibeEvening
	VibeNight
)

func (v TimeVibe) String() string {
	switch v {
	case VibeMorning:
		return "Morning"
	case VibeDay:
		return "Day"
	case VibeEvening:
		return "Evening"
	default:
		return "Night"
	}
}

// TimeVibeForHour buckets an hour of day. The brackets are checked in order
// and anything unmatched is Night, which includes 18:00 and 23:00.
func TimeVibeForHour(hour int) TimeVibe {
	hour = normalizeHour(hour)
	switch {
	case hour >= 5 && hour < 12:
		return VibeMorning
	case hour >= 12 && hour < 18:
		return VibeDay
	case hour >= 19 && hour < 23:
		return VibeEvening
	default:
		return VibeNight
	}
}

func normalizeHour(hour int) int {
	return ((hour % 24) + 24) % 24
}
