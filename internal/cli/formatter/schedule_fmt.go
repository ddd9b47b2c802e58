package formatter

import (
	"fmt"
	"strings"

	"github.com/tasselapp/tassel/internal/domain"
	"github.com/tasselapp/tassel/internal/timetable"
)

// FormatSchedule renders a weekly timetable grouped by day. Only days with
// at least one meeting appear.
func FormatSchedule(courses []*domain.Course) string {
	if len(courses) == 0 {
		return Dim("Nothing scheduled in the active semester.") + "\n"
	}

	type meeting struct {
		course *domain.Course
		window timetable.Interval
	}
	byDay := make(map[domain.Weekday][]meeting)
	for _, c := range courses {
		window, ok := timetable.MeetingInterval(c)
		if !ok {
			continue
		}
		for _, d := range c.DaysOfWeek {
			byDay[d] = append(byDay[d], meeting{course: c, window: window})
		}
	}

	var b strings.Builder
	for _, day := range domain.AllWeekdays {
		meetings := byDay[day]
		if len(meetings) == 0 {
			continue
		}
		b.WriteString(Header(string(day)) + "\n")
		for _, m := range meetings {
			line := fmt.Sprintf("  %s %s  %s %s",
				StyleFg.Render(timetable.FormatClock(m.window.Start)+"-"+timetable.FormatClock(m.window.End)),
				CourseSwatch(m.course.Color),
				Bold(m.course.Name),
				locationSuffix(m.course.Location))
			b.WriteString(strings.TrimRight(line, " ") + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatConflicts renders detected overlaps, one line per day and window.
func FormatConflicts(conflicts []timetable.Conflict) string {
	if len(conflicts) == 0 {
		return StyleGreen.Render("No schedule conflicts.") + "\n"
	}

	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("%d conflict(s) found:", len(conflicts))) + "\n")
	for _, c := range conflicts {
		b.WriteString(fmt.Sprintf("  %s %s  %s overlaps %s\n",
			StyleYellow.Render(ShortDay(c.Day)),
			StyleFg.Render(timetable.FormatClock(c.Window.Start)+"-"+timetable.FormatClock(c.Window.End)),
			Bold(c.Courses[0].Name),
			Bold(c.Courses[1].Name)))
	}
	return b.String()
}

func locationSuffix(location string) string {
	if location == "" {
		return ""
	}
	return Dim("@ " + location)
}
