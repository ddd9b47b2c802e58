package planner

import (
	"fmt"
	"sort"

	"github.com/tasselapp/tassel/internal/academics"
	"github.com/tasselapp/tassel/internal/domain"
	"github.com/tasselapp/tassel/internal/timetable"
)

// Queries are pure derivations recomputed on each call; nothing is cached.
// Conflict detection is O(n²) in courses per semester, which is fine at the
// few-dozen course counts a degree plan sees.

// Degree returns a copy of the degree, or nil when none is set.
func (s *Store) Degree() *domain.Degree {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.plan.Degree == nil {
		return nil
	}
	d := *s.plan.Degree
	return &d
}

// Semesters returns deep copies of all semesters in plan order.
func (s *Store) Semesters() []*domain.Semester {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Semester, len(s.plan.Semesters))
	for i, sem := range s.plan.Semesters {
		out[i] = sem.Clone()
	}
	return out
}

// ActiveSemester returns a copy of the active semester, or nil.
func (s *Store) ActiveSemester() *domain.Semester {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sem := s.plan.ActiveSemester(); sem != nil {
		return sem.Clone()
	}
	return nil
}

// Semester returns a copy of the semester with the given ID.
func (s *Store) Semester(id string) (*domain.Semester, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sem := s.plan.FindSemester(id)
	if sem == nil {
		return nil, fmt.Errorf("%w: %s", ErrSemesterNotFound, id)
	}
	return sem.Clone(), nil
}

// Notes returns a copy of the notes map.
func (s *Store) Notes() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.plan.Notes))
	for k, v := range s.plan.Notes {
		out[k] = v
	}
	return out
}

// CurrentSchedule returns the active semester's scheduled courses sorted by
// first meeting day, then start time. Schedule-inert courses are excluded.
func (s *Store) CurrentSchedule() []*domain.Course {
	sem := s.ActiveSemester()
	if sem == nil {
		return nil
	}

	type entry struct {
		course *domain.Course
		day    int
		start  int
	}
	var entries []entry
	for _, c := range sem.Courses {
		iv, ok := timetable.MeetingInterval(c)
		if !ok {
			continue
		}
		day := len(domain.AllWeekdays)
		for _, d := range c.DaysOfWeek {
			if idx := domain.WeekdayIndex(d); idx >= 0 && idx < day {
				day = idx
			}
		}
		entries = append(entries, entry{course: c, day: day, start: iv.Start})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].day != entries[j].day {
			return entries[i].day < entries[j].day
		}
		return entries[i].start < entries[j].start
	})

	out := make([]*domain.Course, len(entries))
	for i, e := range entries {
		out[i] = e.course
	}
	return out
}

// SemesterConflicts detects time-table conflicts within one semester.
func (s *Store) SemesterConflicts(semesterID string) ([]timetable.Conflict, error) {
	sem, err := s.Semester(semesterID)
	if err != nil {
		return nil, err
	}
	return timetable.DetectConflicts(sem.Courses), nil
}

// ScheduleConflicts detects conflicts in the active semester.
func (s *Store) ScheduleConflicts() []timetable.Conflict {
	sem := s.ActiveSemester()
	if sem == nil {
		return nil
	}
	return timetable.DetectConflicts(sem.Courses)
}

// PlanConflicts detects conflicts across every semester. Courses only clash
// within their own semester, so the result is the per-semester findings
// concatenated in plan order.
func (s *Store) PlanConflicts() []timetable.Conflict {
	var out []timetable.Conflict
	for _, sem := range s.Semesters() {
		out = append(out, timetable.DetectConflicts(sem.Courses)...)
	}
	return out
}

// SemesterGPA returns the credit-weighted GPA of one semester.
func (s *Store) SemesterGPA(semesterID string) (float64, error) {
	sem, err := s.Semester(semesterID)
	if err != nil {
		return 0, err
	}
	return academics.SemesterGPA(sem), nil
}

// CumulativeGPA returns the credit-weighted GPA over the whole plan.
func (s *Store) CumulativeGPA() float64 {
	return academics.CumulativeGPA(s.Snapshot())
}

// CompletedCredits sums credits over graded courses.
func (s *Store) CompletedCredits() float64 {
	return academics.CompletedCredits(s.Snapshot())
}

// Progress is completed credits over the degree requirement; may exceed 1.
func (s *Store) Progress() float64 {
	return academics.Progress(s.Snapshot())
}
