package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUndoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Undo the last plan change",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Store.Undo() {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to undo.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Undone.")
			return nil
		},
	}
}

func newRedoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "redo",
		Short: "Redo a previously undone change",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Store.Redo() {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to redo.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Redone.")
			return nil
		},
	}
}
