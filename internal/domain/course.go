package domain

// Credit bounds for a single course. Fractional credits are allowed.
const (
	MinCourseCredits = 0
	MaxCourseCredits = 6
)

// Course is a single offering inside a semester. Grade is nil until the
// course is completed; a course without days or times carries no weekly
// meeting and is ignored by conflict detection.
type Course struct {
	ID         string
	Name       string
	Credits    float64
	Grade      *float64
	DaysOfWeek []Weekday
	StartTime  string // "HH:MM", 24-hour
	EndTime    string // "HH:MM", 24-hour
	Location   string
	Color      string
}

// IsGraded reports whether the course has a recorded grade.
func (c *Course) IsGraded() bool {
	return c.Grade != nil
}

// Validate checks course fields and returns field-keyed messages.
// Meeting times are deliberately not validated here: a course whose times
// do not parse, or whose start is not before its end, is schedule-inert
// rather than invalid.
func (c *Course) Validate() error {
	v := NewValidationError()
	if c.Name == "" {
		v.Add("name", "course name is required")
	}
	if c.Credits < MinCourseCredits || c.Credits > MaxCourseCredits {
		v.Addf("credits", "must be between %d and %d", MinCourseCredits, MaxCourseCredits)
	}
	for _, d := range c.DaysOfWeek {
		if !ValidWeekdays[string(d)] {
			v.Addf("days_of_week", "unknown weekday %q", d)
			break
		}
	}
	return v.OrNil()
}

// Clone returns a deep copy of the course.
func (c *Course) Clone() *Course {
	cp := *c
	if c.Grade != nil {
		g := *c.Grade
		cp.Grade = &g
	}
	if c.DaysOfWeek != nil {
		cp.DaysOfWeek = append([]Weekday(nil), c.DaysOfWeek...)
	}
	return &cp
}
