package testutil

import (
	"github.com/google/uuid"
	"github.com/tasselapp/tassel/internal/domain"
)

// CourseOption mutates a fixture course.
type CourseOption func(*domain.Course)

// WithGrade marks the course completed with the given grade points.
func WithGrade(grade float64) CourseOption {
	return func(c *domain.Course) {
		g := grade
		c.Grade = &g
	}
}

// WithMeeting gives the course a weekly meeting.
func WithMeeting(days []domain.Weekday, start, end string) CourseOption {
	return func(c *domain.Course) {
		c.DaysOfWeek = days
		c.StartTime = start
		c.EndTime = end
	}
}

// NewTestCourse builds a course with a fresh ID and the given credits.
func NewTestCourse(name string, credits float64, opts ...CourseOption) *domain.Course {
	c := &domain.Course{
		ID:      uuid.New().String(),
		Name:    name,
		Credits: credits,
		Color:   "#83a598",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTestSemester builds an autumn 2025 semester with a fresh ID.
func NewTestSemester(name string) *domain.Semester {
	return &domain.Semester{
		ID:      uuid.New().String(),
		Name:    name,
		Year:    2025,
		Season:  domain.SeasonAutumn,
		Courses: []*domain.Course{},
	}
}

// NewTestPlan builds a plan with a degree and one semester holding the
// given courses.
func NewTestPlan(courses ...*domain.Course) *domain.Plan {
	p := domain.NewPlan()
	p.Degree = &domain.Degree{Name: "BSc Computer Science", TotalCreditsRequired: 180}
	sem := NewTestSemester("First autumn")
	sem.IsActive = true
	sem.Courses = append(sem.Courses, courses...)
	p.Semesters = append(p.Semesters, sem)
	return p
}
