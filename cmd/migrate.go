package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/killallgit/vidcode-api/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Manage the database schema for the Video Coding API.

Migrations are applied with GORM auto migration: missing tables,
columns and indexes are created, nothing is dropped.

Available subcommands:
  up      - Create or update every table
  status  - Show which tables exist`,
	}

	migrateUpCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Long: `Apply all pending database migrations.

Every application table is created or updated to match the current
models, bringing the schema up to date.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.MigrateAll(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return printStatus(cmd, db)
		},
	}

	migrateStatusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long: `Display the current status of the database schema.

This command lists every application table and whether it exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(cmd)
			if err != nil {
				return err
			}
			defer db.Close()
			return printStatus(cmd, db)
		},
	}

	migrateCmd.AddCommand(migrateUpCmd, migrateStatusCmd)
	return migrateCmd
}

// connect opens the configured database without migrating it
func connect(cmd *cobra.Command) (*database.DB, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return database.Open(cfg.Database)
}

func printStatus(cmd *cobra.Command, db *database.DB) error {
	status, err := db.TableStatus()
	if err != nil {
		return err
	}

	tables := make([]string, 0, len(status))
	for table := range status {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	for _, table := range tables {
		state := "missing"
		if status[table] {
			state = "present"
		}
		fmt.Fprintf(out, "  %-20s %s\n", table, state)
	}
	return nil
}
