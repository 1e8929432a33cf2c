// Package cmd implements the campaignhub-admin CLI commands.
package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"runtime"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/campaignhub/api/internal/config"
)

var (
	version string

	// Global flags
	flagDatabaseURL   string
	flagMigrationsDir string
)

var rootCmd = &cobra.Command{
	Use:   "campaignhub-admin",
	Short: "CampaignHub platform administration CLI",
	Long: `campaignhub-admin manages the CampaignHub database.

It provides commands to run schema migrations and load development
seed data. The database connection comes from --database-url, the
DATABASE_URL environment variable, or the standard DB_* environment
variables in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the CLI version from build flags.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDatabaseURL, "database-url", "", "Database URL (env: DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagMigrationsDir, "migrations-dir", "migrations", "Directory containing migration SQL files")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("campaignhub-admin %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
	},
}

// openDB resolves the connection string and opens a verified connection.
func openDB() (*sql.DB, error) {
	dsn := flagDatabaseURL
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		dsn = cfg.Database.DSN()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
