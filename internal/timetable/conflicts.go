package timetable

import "github.com/tasselapp/tassel/internal/domain"

// Conflict is a derived record: two courses meeting at overlapping times on
// one shared weekday. A pair overlapping on two days yields two records, one
// per day; records are never merged across day/time windows.
type Conflict struct {
	Day     domain.Weekday
	Window  Interval
	Courses [2]*domain.Course
}

// DetectConflicts finds every pairwise day+time overlap among the given
// courses. Pure function of its input; result order is pair-discovery order
// and callers should treat it as unordered.
func DetectConflicts(courses []*domain.Course) []Conflict {
	type scheduled struct {
		course   *domain.Course
		interval Interval
	}

	var items []scheduled
	for _, c := range courses {
		if iv, ok := MeetingInterval(c); ok {
			items = append(items, scheduled{course: c, interval: iv})
		}
	}

	var conflicts []Conflict
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			if !a.interval.Overlaps(b.interval) {
				continue
			}
			for _, day := range sharedDays(a.course.DaysOfWeek, b.course.DaysOfWeek) {
				conflicts = append(conflicts, Conflict{
					Day:     day,
					Window:  a.interval.Intersect(b.interval),
					Courses: [2]*domain.Course{a.course, b.course},
				})
			}
		}
	}
	return conflicts
}

// sharedDays returns the weekdays present in both sets, in Monday-first order.
func sharedDays(a, b []domain.Weekday) []domain.Weekday {
	inA := make(map[domain.Weekday]bool, len(a))
	for _, d := range a {
		inA[d] = true
	}
	inBoth := make(map[domain.Weekday]bool)
	for _, d := range b {
		if inA[d] {
			inBoth[d] = true
		}
	}

	var out []domain.Weekday
	for _, d := range domain.AllWeekdays {
		if inBoth[d] {
			out = append(out, d)
		}
	}
	return out
}
