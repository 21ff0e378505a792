package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/avoigt/timecard/internal/auth"
	"github.com/avoigt/timecard/internal/cli"
	"github.com/avoigt/timecard/internal/config"
	"github.com/avoigt/timecard/internal/db"
	"github.com/avoigt/timecard/internal/directory"
	"github.com/avoigt/timecard/internal/kvstore"
	"github.com/avoigt/timecard/internal/repository"
	"github.com/avoigt/timecard/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	dbPath := cfg.DBPath
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".timecard", "timecard.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Logging stays off unless asked for: the TUI owns the terminal.
	logWriter := io.Discard
	if cfg.LogUseCases {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, nil))

	// Wire the key-value store and everything that hangs off it.
	kv := kvstore.NewSQLiteStore(database)
	recordRepo := repository.NewKVRecordRepo(kv, logger)
	dir := directory.NewKVDirectory(kv, logger)

	app := &cli.App{
		Records:   service.NewRecordService(recordRepo, service.NewLogUseCaseObserver(logWriter)),
		Stats:     service.NewStatsService(recordRepo, cfg.WeekStart),
		Auth:      auth.NewManager(kv, dir, cfg.SessionTTL, logger),
		Directory: dir,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
