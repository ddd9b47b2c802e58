package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tasselapp/tassel/internal/portfile"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the plan as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := portfile.Export(app.Store.Snapshot())
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout)")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a plan from JSON, replacing the current plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := portfile.Load(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			if errs := portfile.ValidateDocument(doc); len(errs) > 0 {
				return portfile.FormatErrors(errs)
			}

			plan := portfile.ToPlan(doc)
			app.Store.Replace(plan)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported plan with %d semester(s). Undo to restore the previous plan.\n",
				len(plan.Semesters))
			return nil
		},
	}
}
