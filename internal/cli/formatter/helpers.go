package formatter

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tasselapp/tassel/internal/domain"
	"github.com/tasselapp/tassel/internal/timetable"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatNumber prints a float without trailing zeros: 7.5, 180, 3.33.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatGrade prints a pointer grade, or a dimmed placeholder when ungraded.
func FormatGrade(grade *float64, scaleMax float64) string {
	if grade == nil {
		return Dim("--")
	}
	return GradeStyled(*grade, scaleMax)
}

var shortDays = map[domain.Weekday]string{
	domain.Monday:    "Mon",
	domain.Tuesday:   "Tue",
	domain.Wednesday: "Wed",
	domain.Thursday:  "Thu",
	domain.Friday:    "Fri",
	domain.Saturday:  "Sat",
	domain.Sunday:    "Sun",
}

// ShortDay abbreviates a weekday for table cells.
func ShortDay(d domain.Weekday) string {
	if s, ok := shortDays[d]; ok {
		return s
	}
	return string(d)
}

// MeetingLine summarizes a course's weekly meeting, like "Mon Wed 10:00-11:30".
// Courses without a usable meeting window show a dimmed placeholder.
func MeetingLine(c *domain.Course) string {
	window, ok := timetable.MeetingInterval(c)
	if !ok {
		return Dim("unscheduled")
	}

	days := make([]string, 0, len(c.DaysOfWeek))
	for _, d := range domain.AllWeekdays {
		for _, cd := range c.DaysOfWeek {
			if cd == d {
				days = append(days, ShortDay(d))
				break
			}
		}
	}
	return strings.Join(days, " ") + " " + timetable.FormatClock(window.Start) + "-" + timetable.FormatClock(window.End)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
