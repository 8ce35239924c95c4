package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/quirkle-go/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "quirkle",
		Short: "Simulate tile matching games on a wrapping board",
		Long: `quirkle runs games where bots take turns laying shape and color tiles on a
toroidal grid. Lines must share a shape or a color, and completing a full
line scores double.

Finished sessions are kept in the configured results store.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app, err = factory.New(cfg.FactoryConfig(logger))
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: QUIRKLE_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Results store: memory, redis, sqlite (env: QUIRKLE_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for the redis store (env: REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "Database file for the sqlite store (env: QUIRKLE_SQLITE_PATH)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: QUIRKLE_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newResultsCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
