package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "schedshare/internal/adapter/db"
	"schedshare/internal/config"
)

const migrateTimeout = 30 * time.Second

func newMigrateCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := initLogger(debug)
			if err != nil {
				return err
			}
			defer syncLogger(logger)

			cfg := config.LoadConfig()
			db, err := dbadapter.ConnectDB(cfg)
			if err != nil {
				logger.Error("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					logger.Warn("failed to close database connection", zap.Error(err))
				}
			}()

			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()
			if err := dbadapter.Migrate(ctx, db, cfg.DbDriver); err != nil {
				logger.Error("failed to migrate database", zap.Error(err))
				return err
			}
			logger.Info("database migrated", zap.String("driver", cfg.DbDriver))
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable development logging")
	return cmd
}
