package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/goaltrack/internal/cli"
	"github.com/alexanderramin/goaltrack/internal/config"
	"github.com/alexanderramin/goaltrack/internal/db"
	"github.com/alexanderramin/goaltrack/internal/repository"
	"github.com/alexanderramin/goaltrack/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}
	cfg := config.LoadConfig()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Wire repositories and unit of work
	goalRepo := repository.NewSQLiteGoalRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	app := &cli.App{
		Goals:     service.NewGoalService(goalRepo, uow, observers...),
		Progress:  service.NewProgressService(progressRepo, uow, observers...),
		Summaries: service.NewSummaryService(uow, observers...),
		Import:    service.NewImportService(uow, observers...),
		Config:    cfg,
		Logger:    logger,
	}

	// Forms and confirmations need a terminal on stdin; text output needs one on stdout.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.IsOutputTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
