package main

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/openshelf/circulation-go/config"
	"github.com/openshelf/circulation-go/shell"
	"github.com/openshelf/circulation-go/storage/postgresengine"
	"github.com/openshelf/circulation-go/zerologadapter"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "circulation",
		Short:         "Library circulation rule engine",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newInitSchemaCmd(),
		newBorrowCmd(),
		newReturnCmd(),
		newPayFineCmd(),
		newSweepFinesCmd(),
		newEvaluateMembersCmd(),
		newListOverdueCmd(),
		newApproachingFinesCmd(),
		newImportCmd(),
	)

	return rootCmd
}

// openStore connects the postgres engine using the process configuration.
// The returned cleanup closes the pool.
func openStore(ctx context.Context) (postgresengine.Store, func(), error) {
	cfg := config.Load()

	poolConfig, configErr := config.PostgresPGXPoolConfig(cfg.PostgresDSN)
	if configErr != nil {
		return postgresengine.Store{}, nil, configErr
	}

	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return postgresengine.Store{}, nil, poolErr
	}

	options := []postgresengine.Option{
		postgresengine.WithLogger(newLogger(cfg.LogLevel)),
	}
	if cfg.TablePrefix != "" {
		options = append(options, postgresengine.WithTablePrefix(cfg.TablePrefix))
	}

	store, storeErr := postgresengine.NewStoreFromPGXPool(pool, options...)
	if storeErr != nil {
		pool.Close()
		return postgresengine.Store{}, nil, storeErr
	}

	return store, pool.Close, nil
}

func newLogger(level string) shell.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(parsed).
		With().
		Timestamp().
		Logger()

	return zerologadapter.NewLogger(logger)
}

// parseAsOf interprets the --as-of flag; empty means now.
func parseAsOf(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}

	return time.Parse(time.RFC3339, value)
}

func newInitSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-schema",
		Short: "Create the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.CreateSchema(cmd.Context()); err != nil {
				return err
			}

			cmd.Println("schema created")

			return nil
		},
	}
}
