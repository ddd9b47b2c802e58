package cli

import (
	"github.com/spf13/cobra"
	"github.com/tasselapp/tassel/internal/config"
	"github.com/tasselapp/tassel/internal/planner"
	"github.com/tasselapp/tassel/internal/service"
)

// App holds everything the CLI commands operate on: the in-memory plan
// store, the storage sync service, and session configuration.
type App struct {
	Store *planner.Store
	Sync  service.SyncService
	Cfg   config.Config

	// IsInteractive reports whether stdin is a terminal; interactive-only
	// surfaces (forms, the schedule TUI) are gated on it.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "tassel" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tassel",
		Short: "Degree and semester planner",
	}

	root.AddCommand(
		newDegreeCmd(app),
		newSemesterCmd(app),
		newCourseCmd(app),
		newScheduleCmd(app),
		newStatusCmd(app),
		newNoteCmd(app),
		newUndoCmd(app),
		newRedoCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newSaveCmd(app),
		newLoadCmd(app),
	)

	return root
}
