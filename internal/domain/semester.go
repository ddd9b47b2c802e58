package domain

import (
	"fmt"
	"strings"
)

// Semester is a named academic term owning an ordered list of courses.
// At most one semester is active at a time; the planner store maintains
// that invariant.
type Semester struct {
	ID       string
	Name     string
	Year     int
	Season   Season
	IsActive bool
	Courses  []*Course
}

// Validate checks semester fields and returns field-keyed messages.
func (s *Semester) Validate() error {
	v := NewValidationError()
	if s.Name == "" {
		v.Add("name", "semester name is required")
	}
	if s.Year < 1900 || s.Year > 2200 {
		v.Addf("year", "implausible year %d", s.Year)
	}
	if !ValidSeasons[string(s.Season)] {
		v.Addf("season", "unknown season %q (expected autumn, spring, or summer)", s.Season)
	}
	return v.OrNil()
}

// Label returns a display label such as "Autumn 2025".
func (s *Semester) Label() string {
	season := string(s.Season)
	if season == "" {
		return fmt.Sprintf("%s %d", s.Name, s.Year)
	}
	return fmt.Sprintf("%s%s %d", strings.ToUpper(season[:1]), season[1:], s.Year)
}

// FindCourse returns the course with the given ID, or nil.
func (s *Semester) FindCourse(id string) *Course {
	for _, c := range s.Courses {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Clone returns a deep copy of the semester and its courses.
func (s *Semester) Clone() *Semester {
	cp := *s
	cp.Courses = make([]*Course, len(s.Courses))
	for i, c := range s.Courses {
		cp.Courses[i] = c.Clone()
	}
	return &cp
}
