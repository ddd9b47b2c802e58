package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tasselapp/tassel/internal/cli/formatter"
	"github.com/tasselapp/tassel/internal/domain"
)

// resolveSemesterID matches user input against semester IDs and names:
// exact ID, then ID prefix, then case-insensitive name.
func resolveSemesterID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("semester ID is required")
	}

	semesters := app.Store.Semesters()

	for _, s := range semesters {
		if s.ID == input {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range semesters {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
	default:
		return "", fmt.Errorf("semester ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}

	for _, s := range semesters {
		if strings.EqualFold(s.Name, input) || strings.EqualFold(s.Label(), input) {
			return s.ID, nil
		}
	}

	return "", fmt.Errorf("semester not found: %q", input)
}

func newSemesterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semester",
		Short: "Manage semesters",
	}

	cmd.AddCommand(
		newSemesterAddCmd(app),
		newSemesterListCmd(app),
		newSemesterUpdateCmd(app),
		newSemesterRemoveCmd(app),
		newSemesterActivateCmd(app),
	)

	return cmd
}

func newSemesterAddCmd(app *App) *cobra.Command {
	var name, season string
	var year int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a semester to the plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			sem := &domain.Semester{
				Name:   name,
				Year:   year,
				Season: domain.Season(strings.ToLower(season)),
			}
			if err := app.Store.AddSemester(sem); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added semester %s (%s)\n", sem.Name, sem.Label())
			if sem.IsActive {
				fmt.Fprintln(cmd.OutOrStdout(), "It is now the active semester.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Semester name")
	cmd.Flags().IntVar(&year, "year", 0, "Calendar year")
	cmd.Flags().StringVar(&season, "season", "", "Season (autumn|spring|summer)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("season")

	return cmd
}

func newSemesterListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List semesters",
		RunE: func(cmd *cobra.Command, args []string) error {
			semesters := app.Store.Semesters()

			gpaByID := make(map[string]float64, len(semesters))
			for _, s := range semesters {
				hasGrades := false
				for _, c := range s.Courses {
					if c.IsGraded() {
						hasGrades = true
						break
					}
				}
				if !hasGrades {
					continue
				}
				if gpa, err := app.Store.SemesterGPA(s.ID); err == nil {
					gpaByID[s.ID] = gpa
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSemesters(semesters, gpaByID))
			return nil
		},
	}
}

func newSemesterUpdateCmd(app *App) *cobra.Command {
	var name, season string
	var year int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a semester's name, year, or season",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSemesterID(app, args[0])
			if err != nil {
				return err
			}
			sem, err := app.Store.Semester(id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				sem.Name = name
			}
			if cmd.Flags().Changed("year") {
				sem.Year = year
			}
			if cmd.Flags().Changed("season") {
				sem.Season = domain.Season(strings.ToLower(season))
			}

			if err := app.Store.UpdateSemester(sem); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated semester %s (%s)\n", sem.Name, sem.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Semester name")
	cmd.Flags().IntVar(&year, "year", 0, "Calendar year")
	cmd.Flags().StringVar(&season, "season", "", "Season (autumn|spring|summer)")

	return cmd
}

func newSemesterRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a semester and its courses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSemesterID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.DeleteSemester(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed semester %s\n", id)
			return nil
		},
	}
}

func newSemesterActivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "activate ID",
		Short: "Make a semester the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSemesterID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.SetActiveSemester(id); err != nil {
				return err
			}
			sem, err := app.Store.Semester(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active semester: %s (%s)\n", sem.Name, sem.Label())
			return nil
		},
	}
}
