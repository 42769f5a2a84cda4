// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

// Package cmd implements the svnrun command-line interface.
package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lburgey/svnrun/internal/config"
	"github.com/lburgey/svnrun/internal/db"
	"github.com/lburgey/svnrun/internal/dispatch"
	"github.com/lburgey/svnrun/internal/history"
	"github.com/lburgey/svnrun/internal/logging"
	"github.com/lburgey/svnrun/internal/registry"
	"github.com/lburgey/svnrun/internal/runner"
)

// Version is set at build time with -ldflags
var Version = "dev"

// cfg is populated before any command runs.
var cfg *config.Config

// Flag variables
var (
	inMemoryHistory bool
)

var rootCmd = &cobra.Command{
	Use:   "svnrun",
	Short: "Run Subversion commands by name and browse their history",
	Long: `svnrun maps short action names onto svn command lines, runs them with
a timeout and bounded output capture, and records every invocation in a
browsable history.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logging.SetupLogger(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("svnrun version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&inMemoryHistory, "no-db", false, "Keep history in memory only for this run")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(dbCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the loaded configuration, nil before Execute.
func GetConfig() *config.Config {
	return cfg
}

// buildRegistry seeds the registry with the dialect's built-in actions
// and layers custom actions from the configured YAML file on top.
func buildRegistry() (*registry.Registry, error) {
	specs := registry.Builtin(registry.Dialect(cfg.Dialect))

	if cfg.ActionsFile != "" {
		custom, err := registry.LoadFile(cfg.ActionsFile)
		if err != nil {
			return nil, fmt.Errorf("loading custom actions: %w", err)
		}
		specs = append(specs, custom...)
	}

	return registry.New(specs...), nil
}

// openStore opens the configured history store. The returned database
// handle is nil when the store is memory-backed.
func openStore() (history.Store, *sql.DB, error) {
	if inMemoryHistory {
		return history.NewMemoryStore(cfg.HistoryCapacity), nil, nil
	}

	dbPath, err := historyDBPath()
	if err != nil {
		return nil, nil, err
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history database: %w", err)
	}

	if err := db.RunMigrations(database); err != nil {
		db.Close(database)
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}

	return history.NewSQLiteStore(database, cfg.HistoryCapacity), database, nil
}

// historyDBPath resolves the configured database path.
func historyDBPath() (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return db.GetDefaultDBPath()
}

// buildDispatcher wires the registry, runner and store. The caller must
// close the returned database when it is non-nil.
func buildDispatcher() (*dispatch.Dispatcher, *sql.DB, error) {
	reg, err := buildRegistry()
	if err != nil {
		return nil, nil, err
	}

	store, database, err := openStore()
	if err != nil {
		return nil, nil, err
	}

	run := runner.New(cfg.SVNPath, cfg.Timeout, cfg.OutputLimit)
	return dispatch.New(reg, run, store), database, nil
}
