package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/nhb-tools/sitedesk/internal/cli"
	"github.com/nhb-tools/sitedesk/internal/db"
	"github.com/nhb-tools/sitedesk/internal/logger"
	"github.com/nhb-tools/sitedesk/internal/repository"
	"github.com/nhb-tools/sitedesk/internal/service"
	"github.com/nhb-tools/sitedesk/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.sitedesk/sitedesk.db
	dbPath := os.Getenv("SITEDESK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".sitedesk", "sitedesk.db")
	}

	// File logging is off unless SITEDESK_LOG names a level.
	if level := os.Getenv("SITEDESK_LOG"); level != "" {
		if err := logger.Init(filepath.Dir(dbPath), level); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Load the full working set up front; mutations flush it back.
	store := state.NewStore(repository.NewSQLiteBlobRepo(database))
	if err := store.Load(context.Background()); err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	app := &cli.App{
		Projects: service.NewProjectService(store),
		Expenses: service.NewExpenseService(store),
		Tasks:    service.NewTaskService(store),
		Reports:  service.NewReportService(store),
		Backups:  service.NewBackupService(store),

		OpenInvoices: true,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
