// Package main implements the taskboard CLI tool.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/TechieBelle/taskboard/board"
	"github.com/TechieBelle/taskboard/internal/config"
	"github.com/TechieBelle/taskboard/internal/paths"
	"github.com/TechieBelle/taskboard/storage"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "taskboard",
	Short:         "Taskboard - a local task board with three workflow columns",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// openStore builds the process-wide application state store: config,
// durable storage, then a board store initialized from it.
func openStore() (*board.Store, *config.Config, error) {
	workDir, err := paths.WorkingDir()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return nil, nil, err
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	store := board.New(storage.New(dataDir, logger))
	store.Initialize()
	return store, cfg, nil
}

func logLevel() slog.Level {
	if os.Getenv("TASKBOARD_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// requireAuth opens the store and refuses to proceed for unauthenticated
// sessions. Every mutating command goes through here.
func requireAuth() (*board.Store, *config.Config, error) {
	store, cfg, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	if !store.Authenticated() {
		return nil, nil, fmt.Errorf("not logged in (run 'taskboard login')")
	}
	return store, cfg, nil
}
