package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tasselapp/tassel/internal/service"
)

func newSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the plan to local storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Sync.Save(context.Background())
			if errors.Is(err, service.ErrSyncInFlight) {
				fmt.Fprintln(cmd.OutOrStdout(), "A save is already running; skipped.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved.")
			return nil
		},
	}
}

func newLoadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load the plan from local storage, replacing the current plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Sync.Load(context.Background())
			if errors.Is(err, service.ErrSyncInFlight) {
				fmt.Fprintln(cmd.OutOrStdout(), "A sync is already running; skipped.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Loaded.")
			return nil
		},
	}
}
