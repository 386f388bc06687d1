package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/killallgit/vidcode-api/internal/database"
	"github.com/killallgit/vidcode-api/pkg/config"
	"github.com/killallgit/vidcode-api/pkg/logging"
	"github.com/spf13/cobra"
)

// Execute builds the command tree and runs it. This is called by main.main().
// SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// NewRootCmd creates the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vidcode-api",
		Short: "Video Coding API server",
		Long: `Video Coding API - A backend for collaborative video content coding

Coders walk an ordered video catalog built from uploaded CSV or XLSX
files and annotate each video against a project codebook.

Features:
  • Per-coder progress through the catalog
  • Draft, submit and exclude annotations
  • Codebook edits that migrate stored annotations
  • CSV, XLSX, JSON and YAML exports`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			jsonLogs, _ := cmd.Flags().GetBool("json-logs")
			logging.Init(level, jsonLogs)
		},
	}

	// Add persistent flags for configuration and logging
	rootCmd.PersistentFlags().String("config", config.DefaultConfigPath, "path to the settings file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newExportCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// loadConfig loads the settings file named by --config. Commands that do
// not touch storage or the database never call it. Logging settings from the
// file apply unless the matching flag was given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if err := config.Load(path); err != nil {
		return nil, fmt.Errorf("error initializing config: %w", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	level, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	if !cmd.Flags().Changed("log-level") && cfg.Logging.Level != "" {
		level = cfg.Logging.Level
	}
	if !cmd.Flags().Changed("json-logs") {
		jsonLogs = jsonLogs || cfg.Logging.Format == "json"
	}
	logging.Init(level, jsonLogs)

	return cfg, nil
}

// openDatabase connects with the configured driver and migrates every model
func openDatabase(cfg *config.Config) (*database.DB, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateAll(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
