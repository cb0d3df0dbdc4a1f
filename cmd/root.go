package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guttosm/stockmetrics/config"
	"github.com/guttosm/stockmetrics/internal/app"
	"github.com/guttosm/stockmetrics/internal/logger"
)

var (
	port     string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "stockmetrics",
	Short:         "Serve daily return and alpha series for stock tickers",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration from environment or .env file
		config.LoadConfig()

		if logLevel != "" {
			logger.InitWithLevel(logLevel)
		} else {
			logger.Init()
		}

		cfg := config.AppConfig
		if port != "" {
			cfg.Server.Port = port
		}

		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp(cfg)
		if err != nil {
			return fmt.Errorf("app init: %w", err)
		}

		server := startServer(router, cfg.Server.Port)
		gracefulShutdown(context.Background(), server, cleanup)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&port, "port", "", "Port for the API server (overrides SERVER_PORT)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL (debug|info|warn|error)")

	rootCmd.AddCommand(versionCmd)
}
