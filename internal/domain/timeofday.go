package domain

import (
	"fmt"

	"service-dispatch/internal/apperr"
)

// TimeOfDay is a clock time within a single day, stored as whole seconds
// since midnight. The zero value is midnight. Ordinary integer comparisons
// order two values within the same day.
type TimeOfDay int

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// MaxTimeOfDay is the last representable instant of the day, 23:59:59.
// Additions clamp here instead of wrapping to the next day, and it doubles
// as the sentinel departure time of an incomplete delivery.
const MaxTimeOfDay TimeOfDay = secondsPerDay - 1

// NewTimeOfDay builds a TimeOfDay from clock components.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, fmt.Errorf("time of day %02d:%02d:%02d: %w", hour, minute, second, apperr.Invalid)
	}
	return TimeOfDay(hour*secondsPerHour + minute*secondsPerMinute + second), nil
}

// MustTimeOfDay is NewTimeOfDay for known-good literals; it panics on error.
func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay parses an HH:MM:SS clock string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute, second int
	if n, err := fmt.Sscanf(s, "%d:%d:%d", &hour, &minute, &second); n != 3 || err != nil {
		return 0, fmt.Errorf("time of day %q: %w", s, apperr.Invalid)
	}
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		return 0, fmt.Errorf("time of day %q: %w", s, apperr.Invalid)
	}
	return t, nil
}

// Valid reports whether t lies within the representable day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t <= MaxTimeOfDay
}

// Hour returns the hour component, 0-23.
func (t TimeOfDay) Hour() int { return int(t) / secondsPerHour }

// Minute returns the minute component, 0-59.
func (t TimeOfDay) Minute() int { return int(t) % secondsPerHour / secondsPerMinute }

// Second returns the second component, 0-59.
func (t TimeOfDay) Second() int { return int(t) % secondsPerMinute }

// String formats t as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// AddMinutes returns t shifted by m minutes, clamped to the day:
// never past MaxTimeOfDay, never before midnight.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return clamp(t + TimeOfDay(m*secondsPerMinute))
}

// AddHours returns t shifted by h hours, clamped to the day.
func (t TimeOfDay) AddHours(h int) TimeOfDay {
	return clamp(t + TimeOfDay(h*secondsPerHour))
}

// HoursUntilEndOfDay returns the number of whole hours between t and
// MaxTimeOfDay, fractions discarded.
func (t TimeOfDay) HoursUntilEndOfDay() int {
	return int(MaxTimeOfDay-t) / secondsPerHour
}

// MinutesUntilEndOfDay returns the number of whole minutes between t and
// MaxTimeOfDay, fractions discarded.
func (t TimeOfDay) MinutesUntilEndOfDay() int {
	return int(MaxTimeOfDay-t) / secondsPerMinute
}

// HoursBetween returns the number of whole hours from one clock time to
// another. Fractions are discarded toward zero, so 1h59m59s still counts
// as one hour.
func HoursBetween(from, to TimeOfDay) int {
	return int(to-from) / secondsPerHour
}

func clamp(t TimeOfDay) TimeOfDay {
	if t > MaxTimeOfDay {
		return MaxTimeOfDay
	}
	if t < 0 {
		return 0
	}
	return t
}
