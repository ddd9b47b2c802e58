package formatter

import (
	"fmt"
	"strings"

	"github.com/tasselapp/tassel/internal/domain"
)

// FormatSemesters renders the semester list as a table. GPA values are
// looked up per semester ID; semesters with no graded courses show "--".
func FormatSemesters(semesters []*domain.Semester, gpaByID map[string]float64) string {
	if len(semesters) == 0 {
		return Dim("No semesters yet. Add one with: tassel semester add") + "\n"
	}

	headers := []string{"ID", "NAME", "TERM", "COURSES", "GPA", ""}
	rows := make([][]string, 0, len(semesters))
	for _, sem := range semesters {
		gpa := Dim("--")
		if v, ok := gpaByID[sem.ID]; ok {
			gpa = FormatNumber(v)
		}
		rows = append(rows, []string{
			TruncID(sem.ID),
			Bold(sem.Name),
			SeasonBadge(sem.Season) + " " + fmt.Sprint(sem.Year),
			fmt.Sprint(len(sem.Courses)),
			gpa,
			ActiveMarker(sem.IsActive),
		})
	}
	return RenderTable(headers, rows)
}

// FormatCourses renders one semester's course list as a table.
func FormatCourses(courses []*domain.Course, scaleMax float64) string {
	if len(courses) == 0 {
		return Dim("No courses in this semester.") + "\n"
	}

	headers := []string{"ID", "COURSE", "CREDITS", "MEETS", "LOCATION", "GRADE"}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		location := Dim("--")
		if c.Location != "" {
			location = StyleFg.Render(c.Location)
		}
		rows = append(rows, []string{
			TruncID(c.ID),
			CourseSwatch(c.Color) + " " + Bold(c.Name),
			FormatNumber(c.Credits),
			MeetingLine(c),
			location,
			FormatGrade(c.Grade, scaleMax),
		})
	}
	return RenderTable(headers, rows)
}

// FormatDegree renders the degree header line, or a setup hint when unset.
func FormatDegree(d *domain.Degree) string {
	if d == nil {
		return Dim("No degree configured. Run: tassel degree setup") + "\n"
	}
	return fmt.Sprintf("%s %s\n", Bold(d.Name),
		Dim(fmt.Sprintf("(%s credits required)", FormatNumber(d.TotalCreditsRequired))))
}

// FormatNotes renders the notes map sorted by ID for stable output.
func FormatNotes(notes map[string]string, ids []string) string {
	if len(ids) == 0 {
		return Dim("No notes.") + "\n"
	}
	var b strings.Builder
	for _, id := range ids {
		b.WriteString(fmt.Sprintf("%s %s\n", TruncID(id), StyleFg.Render(notes[id])))
	}
	return b.String()
}
