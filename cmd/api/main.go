package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "schedshare",
	Short: "Personal schedule and task sharing server",
	Long: `schedshare serves the Schedule Share dashboard, calendar and settings pages
over HTTP, backed by SQLite or MySQL.

Running it without a subcommand starts the server.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(`{{printf "schedshare version %s\n" .Version}}`)
	rootCmd.AddCommand(newServeCmd(), newMigrateCmd())

	// serve is the default command
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initLogger installs the process logger as the zap global.
func initLogger(debug bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func syncLogger(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		zap.L().Debug("failed to sync logger", zap.Error(err))
	}
}
