package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tasselapp/tassel/internal/cli/formatter"
	"github.com/tasselapp/tassel/internal/domain"
	"github.com/tasselapp/tassel/internal/timetable"
)

var dayAliases = map[string]domain.Weekday{
	"mon": domain.Monday, "monday": domain.Monday,
	"tue": domain.Tuesday, "tuesday": domain.Tuesday,
	"wed": domain.Wednesday, "wednesday": domain.Wednesday,
	"thu": domain.Thursday, "thursday": domain.Thursday,
	"fri": domain.Friday, "friday": domain.Friday,
	"sat": domain.Saturday, "saturday": domain.Saturday,
	"sun": domain.Sunday, "sunday": domain.Sunday,
}

// parseDays converts "mon,wed" style input into weekdays.
func parseDays(input string) ([]domain.Weekday, error) {
	if input == "" {
		return nil, nil
	}
	parts := strings.Split(input, ",")
	out := make([]domain.Weekday, 0, len(parts))
	for _, p := range parts {
		d, ok := dayAliases[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return nil, fmt.Errorf("unknown day %q (use mon..sun)", p)
		}
		out = append(out, d)
	}
	return out, nil
}

// resolveCourse finds a course by ID, ID prefix, or name within a semester.
func resolveCourse(sem *domain.Semester, input string) (*domain.Course, error) {
	for _, c := range sem.Courses {
		if c.ID == input {
			return c, nil
		}
	}

	var matches []*domain.Course
	for _, c := range sem.Courses {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
	default:
		return nil, fmt.Errorf("course ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}

	for _, c := range sem.Courses {
		if strings.EqualFold(c.Name, input) {
			return c, nil
		}
	}

	return nil, fmt.Errorf("course not found: %q", input)
}

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses within a semester",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseUpdateCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

// semesterFlagOrActive resolves the --semester flag, falling back to the
// active semester when the flag is absent.
func semesterFlagOrActive(app *App, flagValue string) (string, error) {
	if flagValue != "" {
		return resolveSemesterID(app, flagValue)
	}
	if sem := app.Store.ActiveSemester(); sem != nil {
		return sem.ID, nil
	}
	return "", fmt.Errorf("no active semester; pass --semester or run: tassel semester activate")
}

func newCourseAddCmd(app *App) *cobra.Command {
	var semester, name, days, start, end, location, color, grade string
	var credits float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a course to a semester",
		RunE: func(cmd *cobra.Command, args []string) error {
			semID, err := semesterFlagOrActive(app, semester)
			if err != nil {
				return err
			}

			weekdays, err := parseDays(days)
			if err != nil {
				return err
			}

			c := &domain.Course{
				Name:       name,
				Credits:    credits,
				DaysOfWeek: weekdays,
				StartTime:  start,
				EndTime:    end,
				Location:   location,
				Color:      color,
			}
			if grade != "" {
				g, err := parseGrade(grade, app.Cfg.GradeScaleMax)
				if err != nil {
					return err
				}
				c.Grade = &g
			}

			if err := app.Store.AddCourse(semID, c); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added course %s (%s credits)\n",
				c.Name, formatter.FormatNumber(c.Credits))
			warnInertMeeting(cmd, c)
			return nil
		},
	}

	cmd.Flags().StringVar(&semester, "semester", "", "Semester ID (default: active semester)")
	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().Float64Var(&credits, "credits", 0, "Credit value")
	cmd.Flags().StringVar(&days, "days", "", "Meeting days (e.g. mon,wed)")
	cmd.Flags().StringVar(&start, "start", "", "Meeting start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "Meeting end time (HH:MM)")
	cmd.Flags().StringVar(&location, "location", "", "Meeting location")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")
	cmd.Flags().StringVar(&grade, "grade", "", "Grade points if already completed")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("credits")

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	var semester string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses in a semester",
		RunE: func(cmd *cobra.Command, args []string) error {
			semID, err := semesterFlagOrActive(app, semester)
			if err != nil {
				return err
			}
			sem, err := app.Store.Semester(semID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.Header(sem.Label()))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourses(sem.Courses, app.Cfg.GradeScaleMax))
			return nil
		},
	}

	cmd.Flags().StringVar(&semester, "semester", "", "Semester ID (default: active semester)")

	return cmd
}

func newCourseUpdateCmd(app *App) *cobra.Command {
	var semester, name, days, start, end, location, color, grade string
	var credits float64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			semID, err := semesterFlagOrActive(app, semester)
			if err != nil {
				return err
			}
			sem, err := app.Store.Semester(semID)
			if err != nil {
				return err
			}
			c, err := resolveCourse(sem, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("credits") {
				c.Credits = credits
			}
			if cmd.Flags().Changed("days") {
				weekdays, err := parseDays(days)
				if err != nil {
					return err
				}
				c.DaysOfWeek = weekdays
			}
			if cmd.Flags().Changed("start") {
				c.StartTime = start
			}
			if cmd.Flags().Changed("end") {
				c.EndTime = end
			}
			if cmd.Flags().Changed("location") {
				c.Location = location
			}
			if cmd.Flags().Changed("color") {
				c.Color = color
			}
			if cmd.Flags().Changed("grade") {
				if grade == "" {
					c.Grade = nil
				} else {
					g, err := parseGrade(grade, app.Cfg.GradeScaleMax)
					if err != nil {
						return err
					}
					c.Grade = &g
				}
			}

			if err := app.Store.UpdateCourse(semID, c); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated course %s\n", c.Name)
			warnInertMeeting(cmd, c)
			return nil
		},
	}

	cmd.Flags().StringVar(&semester, "semester", "", "Semester ID (default: active semester)")
	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().Float64Var(&credits, "credits", 0, "Credit value")
	cmd.Flags().StringVar(&days, "days", "", "Meeting days (e.g. mon,wed)")
	cmd.Flags().StringVar(&start, "start", "", "Meeting start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "Meeting end time (HH:MM)")
	cmd.Flags().StringVar(&location, "location", "", "Meeting location")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")
	cmd.Flags().StringVar(&grade, "grade", "", "Grade points (empty string clears the grade)")

	return cmd
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	var semester string

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			semID, err := semesterFlagOrActive(app, semester)
			if err != nil {
				return err
			}
			sem, err := app.Store.Semester(semID)
			if err != nil {
				return err
			}
			c, err := resolveCourse(sem, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.DeleteCourse(semID, c.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed course %s\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&semester, "semester", "", "Semester ID (default: active semester)")

	return cmd
}

// warnInertMeeting flags courses whose times were accepted but cannot form a
// weekly meeting; they are kept and simply never appear on the timetable.
func warnInertMeeting(cmd *cobra.Command, c *domain.Course) {
	if len(c.DaysOfWeek) == 0 && c.StartTime == "" && c.EndTime == "" {
		return
	}
	if _, ok := timetable.MeetingInterval(c); !ok {
		fmt.Fprintln(cmd.OutOrStdout(),
			"Warning: meeting days/times are incomplete or inverted; the course is kept but will not appear on the schedule.")
	}
}

func parseGrade(input string, scaleMax float64) (float64, error) {
	var g float64
	if _, err := fmt.Sscanf(input, "%f", &g); err != nil {
		return 0, fmt.Errorf("invalid grade %q: %w", input, err)
	}
	if g < 0 || (scaleMax > 0 && g > scaleMax) {
		return 0, fmt.Errorf("grade %s is outside the 0-%s scale",
			input, fmt.Sprintf("%g", scaleMax))
	}
	return g, nil
}
