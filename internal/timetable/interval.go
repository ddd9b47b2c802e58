// Package timetable models weekly course meetings and detects pairwise
// schedule conflicts. All comparisons are wall-clock minutes within a single
// day-of-week bucket; cross-midnight spans are not supported.
package timetable

import (
	"fmt"

	"github.com/tasselapp/tassel/internal/domain"
)

// Interval is a half-open [Start, End) time range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// ParseClock parses an "HH:MM" 24-hour string into minutes since midnight.
// Both fields must be exactly two digits; trailing input is rejected.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	h, okH := twoDigits(s[:2])
	m, okM := twoDigits(s[3:])
	if !okH || !okM {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return h*60 + m, nil
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Overlaps reports whether two half-open intervals intersect. Touching
// intervals (one ending exactly when the other starts) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Intersect returns the overlap window of two intervals. Only meaningful
// when Overlaps is true.
func (iv Interval) Intersect(other Interval) Interval {
	out := iv
	if other.Start > out.Start {
		out.Start = other.Start
	}
	if other.End < out.End {
		out.End = other.End
	}
	return out
}

// MeetingInterval extracts the course's weekly interval. ok is false when the
// course is schedule-inert: no weekdays, unparseable times, or a start that
// is not strictly before its end.
func MeetingInterval(c *domain.Course) (Interval, bool) {
	if len(c.DaysOfWeek) == 0 || c.StartTime == "" || c.EndTime == "" {
		return Interval{}, false
	}
	start, err := ParseClock(c.StartTime)
	if err != nil {
		return Interval{}, false
	}
	end, err := ParseClock(c.EndTime)
	if err != nil {
		return Interval{}, false
	}
	if start >= end {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}
