package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/gramlens/internal/logging"
	"github.com/abhisek/gramlens/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gramlens",
	Short: "Grammar performance analytics for language learners",
	Long: "gramlens aggregates a student's verb conjugation practice into accuracy breakdowns,\n" +
		"a conjugation matrix, weak spots, recurring mistakes, rewards and study recommendations.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, which is cancelled on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(loadDotEnv)

	rootCmd.PersistentFlags().String("db", "", "Database file or DSN (overrides GRAMLENS_DB env var)")
	rootCmd.PersistentFlags().String("driver", "", "Database driver: sqlite or postgres (overrides GRAMLENS_DRIVER env var)")
	rootCmd.PersistentFlags().String("log", "", "Log mode: dev, prod or quiet (overrides GRAMLENS_LOG env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadDotEnv reads a .env file from the working directory if there is one.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "warning: .env:", err)
	}
}

// flagOrEnv returns the flag value, falling back to the environment variable.
func flagOrEnv(cmd *cobra.Command, flag, env string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return os.Getenv(env)
}

// resolveStore returns the driver and DSN using --driver/--db flags (highest
// priority), then GRAMLENS_DRIVER/GRAMLENS_DB, then SQLite at the default
// XDG path.
func resolveStore(cmd *cobra.Command) (driver, dsn string, err error) {
	driver = flagOrEnv(cmd, "driver", "GRAMLENS_DRIVER")
	if driver == "" {
		driver = store.DriverSQLite
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if driver == store.DriverSQLite {
			return driver, p, store.EnsureDir(p)
		}
		return driver, p, nil
	}
	if driver != store.DriverSQLite {
		dsn = os.Getenv("GRAMLENS_DB")
		if dsn == "" {
			return "", "", fmt.Errorf("driver %s needs a DSN via --db or GRAMLENS_DB", driver)
		}
		return driver, dsn, nil
	}
	dsn, err = store.DefaultDBPath()
	return driver, dsn, err
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	driver, dsn, err := resolveStore(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database: %w", err)
	}
	s, err := store.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func newLogger(cmd *cobra.Command) (*zap.SugaredLogger, error) {
	return logging.New(flagOrEnv(cmd, "log", "GRAMLENS_LOG"))
}
