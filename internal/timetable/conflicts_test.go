package timetable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasselapp/tassel/internal/domain"
)

// randomInterval returns a well-formed [start, end) pair within one day.
func randomInterval(rng *rand.Rand) (int, int) {
	start := rng.Intn(1380)          // up to 23:00
	length := rng.Intn(180) + 1      // 1–180 min
	end := start + length
	if end > 1439 {
		end = 1439
	}
	return start, end
}

func course(name string, days []domain.Weekday, start, end string) *domain.Course {
	return &domain.Course{ID: name, Name: name, DaysOfWeek: days, StartTime: start, EndTime: end}
}

func TestDetectConflicts_NoneWhenTouching(t *testing.T) {
	courses := []*domain.Course{
		course("Math", []domain.Weekday{domain.Monday}, "10:00", "11:00"),
		course("Physics", []domain.Weekday{domain.Monday}, "11:00", "12:00"),
	}
	assert.Empty(t, DetectConflicts(courses))
}

func TestDetectConflicts_SingleOverlap(t *testing.T) {
	courses := []*domain.Course{
		course("Math", []domain.Weekday{domain.Monday}, "10:00", "11:00"),
		course("Physics", []domain.Weekday{domain.Monday}, "10:30", "11:30"),
	}
	got := DetectConflicts(courses)
	require.Len(t, got, 1)
	assert.Equal(t, domain.Monday, got[0].Day)
	assert.Equal(t, Interval{Start: 630, End: 660}, got[0].Window, "window is the intersection")
}

func TestDetectConflicts_OneRecordPerSharedDay(t *testing.T) {
	courses := []*domain.Course{
		course("A", []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday}, "10:00", "11:00"),
		course("B", []domain.Weekday{domain.Monday, domain.Wednesday}, "10:30", "11:30"),
	}
	got := DetectConflicts(courses)
	require.Len(t, got, 2)

	days := map[domain.Weekday]bool{}
	for _, c := range got {
		days[c.Day] = true
		assert.Equal(t, Interval{Start: 630, End: 660}, c.Window)
	}
	assert.True(t, days[domain.Monday])
	assert.True(t, days[domain.Wednesday])
	assert.False(t, days[domain.Friday])
}

func TestDetectConflicts_InertCoursesSkipped(t *testing.T) {
	courses := []*domain.Course{
		course("Seminar", nil, "", ""),
		course("Math", []domain.Weekday{domain.Monday}, "10:00", "11:00"),
		course("Broken", []domain.Weekday{domain.Monday}, "14:00", "12:00"),
	}
	assert.Empty(t, DetectConflicts(courses))
}

func TestDetectConflicts_ThreeWayYieldsThreePairs(t *testing.T) {
	courses := []*domain.Course{
		course("A", []domain.Weekday{domain.Tuesday}, "09:00", "12:00"),
		course("B", []domain.Weekday{domain.Tuesday}, "10:00", "11:00"),
		course("C", []domain.Weekday{domain.Tuesday}, "10:30", "11:30"),
	}
	got := DetectConflicts(courses)
	assert.Len(t, got, 3, "each unordered pair conflicts once")
}

// Randomized check of the overlap rule: detection agrees with the strict
// inequality definition for arbitrary interval pairs on a shared day.
func TestDetectConflicts_OverlapRuleProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		s1, e1 := randomInterval(rng)
		s2, e2 := randomInterval(rng)
		courses := []*domain.Course{
			course("A", []domain.Weekday{domain.Thursday}, FormatClock(s1), FormatClock(e1)),
			course("B", []domain.Weekday{domain.Thursday}, FormatClock(s2), FormatClock(e2)),
		}
		got := DetectConflicts(courses)
		expect := s1 < e2 && s2 < e1
		if expect {
			assert.Len(t, got, 1, "[%s,%s) vs [%s,%s)", FormatClock(s1), FormatClock(e1), FormatClock(s2), FormatClock(e2))
		} else {
			assert.Empty(t, got, "[%s,%s) vs [%s,%s)", FormatClock(s1), FormatClock(e1), FormatClock(s2), FormatClock(e2))
		}
	}
}
