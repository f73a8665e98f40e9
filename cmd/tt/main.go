package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Chamion/time-management/internal/cli"
	"github.com/Chamion/time-management/internal/db"
	"github.com/Chamion/time-management/internal/repository"
	"github.com/Chamion/time-management/internal/service"
	"github.com/Chamion/time-management/internal/timeutil"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

func run() error {
	// Determine DB path: env var or default ~/.timelog/timelog.db
	dbPath := os.Getenv("TIMELOG_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".timelog", "timelog.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	events := repository.NewSQLiteEventRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	clock := timeutil.SystemClock{}

	app := &cli.App{
		Log:     service.NewLogService(events, uow, clock),
		Reports: service.NewReportService(events, clock),
		Clock:   clock,
	}

	// Detect interactive terminal for the form and watch entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
