package formatter

import (
	"fmt"
	"strings"

	"github.com/tasselapp/tassel/internal/domain"
)

const statusProgressBarWidth = 20

// StatusData carries everything the status dashboard shows.
type StatusData struct {
	Degree           *domain.Degree
	ActiveSemester   *domain.Semester
	SemesterCount    int
	CompletedCredits float64
	CumulativeGPA    float64
	Progress         float64
	ConflictCount    int
}

// FormatStatus renders the plan overview dashboard.
func FormatStatus(data StatusData) string {
	var b strings.Builder

	b.WriteString(FormatDegree(data.Degree))

	if data.Degree != nil {
		b.WriteString(fmt.Sprintf("%s %s\n",
			RenderProgress(data.Progress, statusProgressBarWidth),
			Dim(fmt.Sprintf("%s / %s credits",
				FormatNumber(data.CompletedCredits),
				FormatNumber(data.Degree.TotalCreditsRequired)))))
	} else {
		b.WriteString(fmt.Sprintf("%s %s\n",
			Bold(FormatNumber(data.CompletedCredits)),
			Dim("credits completed")))
	}

	b.WriteString(fmt.Sprintf("%s %s\n", Bold("GPA"), FormatNumber(data.CumulativeGPA)))
	b.WriteString(fmt.Sprintf("%s %d\n", Bold("Semesters"), data.SemesterCount))

	if data.ActiveSemester != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Bold("Current term"), StyleFg.Render(data.ActiveSemester.Label())))
	} else {
		b.WriteString(Dim("No active semester.") + "\n")
	}

	if data.ConflictCount > 0 {
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf("  WARNING: %d schedule conflict(s) in the current term", data.ConflictCount)) + "\n")
	}

	return RenderBox("Status", b.String())
}
