package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tasselapp/tassel/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show degree progress and plan overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := formatter.StatusData{
				Degree:           app.Store.Degree(),
				ActiveSemester:   app.Store.ActiveSemester(),
				SemesterCount:    len(app.Store.Semesters()),
				CompletedCredits: app.Store.CompletedCredits(),
				CumulativeGPA:    app.Store.CumulativeGPA(),
				Progress:         app.Store.Progress(),
				ConflictCount:    len(app.Store.ScheduleConflicts()),
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(data))
			return nil
		},
	}
}
