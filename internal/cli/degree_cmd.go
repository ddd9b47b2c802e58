package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/tasselapp/tassel/internal/cli/formatter"
	"github.com/tasselapp/tassel/internal/domain"
)

func newDegreeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "degree",
		Short: "Manage the degree being planned",
	}

	cmd.AddCommand(
		newDegreeSetupCmd(app),
		newDegreeShowCmd(app),
	)

	return cmd
}

func newDegreeSetupCmd(app *App) *cobra.Command {
	var name string
	var credits float64

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set the degree name and total credits required",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("name") && app.interactive() {
				if err := runDegreeForm(app, &name, &credits); err != nil {
					return err
				}
			}

			if err := app.Store.SetDegree(domain.Degree{
				Name:                 name,
				TotalCreditsRequired: credits,
			}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Degree set: %s (%s credits)\n",
				name, formatter.FormatNumber(credits))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Degree name")
	cmd.Flags().Float64Var(&credits, "credits", 0, "Total credits required to graduate")

	return cmd
}

func newDegreeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configured degree",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDegree(app.Store.Degree()))
			return nil
		},
	}
}

func runDegreeForm(app *App, name *string, credits *float64) error {
	var creditsStr string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Degree name").
				Placeholder("BSc Computer Science").
				Value(name).
				Validate(validateNonEmpty),
			huh.NewInput().
				Title("Total credits required").
				Placeholder("180").
				Value(&creditsStr).
				Validate(validateCredits),
		),
	).WithTheme(tasselHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	parsed, err := strconv.ParseFloat(creditsStr, 64)
	if err != nil {
		return fmt.Errorf("invalid credits %q: %w", creditsStr, err)
	}
	*credits = parsed
	return nil
}

func validateNonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateCredits(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < domain.MinDegreeCredits || v > domain.MaxDegreeCredits {
		return fmt.Errorf("must be between %d and %d", domain.MinDegreeCredits, domain.MaxDegreeCredits)
	}
	return nil
}
