package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alexanderramin/zeitrechner/internal/cli"
	"github.com/alexanderramin/zeitrechner/internal/config"
	"github.com/alexanderramin/zeitrechner/internal/db"
	"github.com/alexanderramin/zeitrechner/internal/repository"
	"github.com/alexanderramin/zeitrechner/internal/service"
	"github.com/alexanderramin/zeitrechner/internal/xslog"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	for _, path := range []string{cfg.DBPath, cfg.LogFile} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", path, err)
		}
	}

	// The TUI owns stdout and stderr, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	logger := xslog.NewLogger(logFile, cfg.LogLevel)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Every process writes under its own origin so the watcher can tell
	// foreign writes from its own.
	origin := uuid.New().String()
	logger = logger.With(xslog.Origin(origin))
	logger.Debug("starting", slog.String("db", cfg.DBPath))

	// Wire repositories
	kvRepo := repository.NewSQLiteKVRepo(database, origin)
	settingsRepo := repository.NewSQLiteSettingsRepo(kvRepo)
	weeklyRepo := repository.NewSQLiteWeeklyRepo(kvRepo, logger)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(logger))
	}

	// Wire services
	sessionSvc := service.NewSessionService(settingsRepo, nil, observers...)
	weeklySvc := service.NewWeeklyService(weeklyRepo, uow, origin, logger, nil, observers...)

	statusSvc := service.NewStatusService(sessionSvc, weeklySvc, nil)

	app := &cli.App{
		Sessions:     sessionSvc,
		Weekly:       weeklySvc,
		Status:       statusSvc,
		Watcher:      service.NewWeeklyWatcher(weeklyRepo, origin, cfg.WatchInterval, logger),
		TickInterval: cfg.TickInterval,

		StatusQuery: statusSvc,
		SaveDay:     weeklySvc,
		ClearWeek:   weeklySvc,
	}

	// Detect interactive terminal for the dashboard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
