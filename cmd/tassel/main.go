package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/tasselapp/tassel/internal/cli"
	"github.com/tasselapp/tassel/internal/config"
	"github.com/tasselapp/tassel/internal/db"
	"github.com/tasselapp/tassel/internal/planner"
	"github.com/tasselapp/tassel/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config.Init(os.Getenv("TASSEL_CONFIG"))
	cfg := config.Load()

	dbPath := os.Getenv("TASSEL_DB")
	if dbPath == "" {
		var err error
		dbPath, err = cfg.DatabasePath()
		if err != nil {
			return fmt.Errorf("resolving database path: %w", err)
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := planner.NewStore()
	uow := db.NewSQLiteUnitOfWork(database)
	syncer := service.NewSyncService(store, database, uow)

	// Populate the in-memory plan from storage before any command runs.
	if err := syncer.Load(context.Background()); err != nil {
		return fmt.Errorf("loading plan: %w", err)
	}

	if cfg.AutosaveEnabled {
		saver := service.NewAutosaver(syncer, cfg.AutosaveInterval())
		saver.OnError(func(err error) {
			fmt.Fprintf(os.Stderr, "Warning: autosave failed: %v (will retry)\n", err)
		})
		store.SetOnChange(saver.MarkDirty)
		saver.Start()
		defer saver.Stop()
	}

	app := &cli.App{
		Store: store,
		Sync:  syncer,
		Cfg:   cfg,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
