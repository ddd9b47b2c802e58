package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tasselapp/tassel/internal/cli/formatter"
	"github.com/tasselapp/tassel/internal/ical"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Work with the active semester's weekly timetable",
	}

	cmd.AddCommand(
		newScheduleShowCmd(app),
		newScheduleConflictsCmd(app),
		newScheduleExportCmd(app),
	)

	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the weekly timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if !app.interactive() {
					return fmt.Errorf("interactive schedule requires a terminal")
				}
				return runScheduleTUI(app)
			}

			sem := app.Store.ActiveSemester()
			if sem == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No active semester.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", formatter.Header(sem.Label()))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(app.Store.CurrentSchedule()))

			if conflicts := app.Store.ScheduleConflicts(); len(conflicts) > 0 {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConflicts(conflicts))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&interactive, "interactive", false, "Browse the timetable in a TUI")

	return cmd
}

func newScheduleConflictsCmd(app *App) *cobra.Command {
	var semester string
	var all bool

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "List overlapping course meetings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConflicts(app.Store.PlanConflicts()))
				return nil
			}

			semID, err := semesterFlagOrActive(app, semester)
			if err != nil {
				return err
			}
			conflicts, err := app.Store.SemesterConflicts(semID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConflicts(conflicts))
			return nil
		},
	}

	cmd.Flags().StringVar(&semester, "semester", "", "Semester ID (default: active semester)")
	cmd.Flags().BoolVar(&all, "all", false, "Check every semester, not just one")

	return cmd
}

func newScheduleExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export the active semester as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			sem := app.Store.ActiveSemester()
			if sem == nil {
				return fmt.Errorf("no active semester to export")
			}

			calendar, err := ical.Export(sem)
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), calendar)
				return nil
			}
			if err := os.WriteFile(out, []byte(calendar), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout)")

	return cmd
}
