package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is 24 hours * 60 minutes.
const MinutesPerDay = 1440

// TimeInterval is a half-open minute-of-day range [Start, End). End may exceed
// 1440 for blocks that run past midnight; the engine treats the day as a flat
// window and never splits across days.
type TimeInterval struct {
	Start int
	End   int
}

// NewInterval builds an interval from a start minute and a positive duration.
func NewInterval(startMinute, durationMinutes int) (TimeInterval, error) {
	if startMinute < 0 || startMinute >= MinutesPerDay {
		return TimeInterval{}, NewInvalidInputError(fmt.Sprintf("start minute %d out of range [0, 1439]", startMinute))
	}
	if durationMinutes <= 0 {
		return TimeInterval{}, NewInvalidInputError(fmt.Sprintf("duration must be positive, got %d", durationMinutes))
	}
	return TimeInterval{Start: startMinute, End: startMinute + durationMinutes}, nil
}

// NewIntervalFromClock builds an interval from a raw "HH:MM" string and a
// positive duration. The clock string is normalized first, so "9:5" is
// accepted and treated as "09:05".
func NewIntervalFromClock(clock string, durationMinutes int) (TimeInterval, error) {
	start, err := ParseClock(clock)
	if err != nil {
		return TimeInterval{}, err
	}
	return NewInterval(start, durationMinutes)
}

// Duration returns the interval length in minutes.
func (t TimeInterval) Duration() int {
	return t.End - t.Start
}

// Overlaps reports whether two half-open intervals share any minute.
// Touching endpoints do not overlap.
func (t TimeInterval) Overlaps(other TimeInterval) bool {
	return t.Start < other.End && other.Start < t.End
}

// Contains reports whether t fully encloses other.
func (t TimeInterval) Contains(other TimeInterval) bool {
	return t.Start <= other.Start && t.End >= other.End
}

// ParseClock converts a 24-hour "HH:MM" string (zero-padding optional) to
// minutes from midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, NewInvalidInputError(fmt.Sprintf("invalid time %q, expected HH:MM", clock))
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, NewInvalidInputError(fmt.Sprintf("invalid hour in %q", clock))
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, NewInvalidInputError(fmt.Sprintf("invalid minute in %q", clock))
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, NewInvalidInputError(fmt.Sprintf("time %q out of range", clock))
	}
	return hours*60 + minutes, nil
}

// NormalizeClock rewrites an accepted raw time string to zero-padded 24-hour
// form, e.g. "9:5" becomes "09:05".
func NormalizeClock(clock string) (string, error) {
	mins, err := ParseClock(clock)
	if err != nil {
		return "", err
	}
	return FormatClock(mins), nil
}

// FormatClock renders minutes from midnight as zero-padded "HH:MM".
// Minutes past 1440 wrap into the next day for display.
func FormatClock(minute int) string {
	minute %= MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
