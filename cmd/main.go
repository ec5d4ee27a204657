// This binary is for local development and operations.
// For Cloud Functions, the function.go file is used instead.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/josejalvarezm/autoinx-functions/internal/app"
	"github.com/josejalvarezm/autoinx-functions/internal/config"
	"github.com/josejalvarezm/autoinx-functions/internal/services"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:          "autoinx",
	Short:        "autoInx admin config and chat widget functions",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(evaluateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads configuration and composes the application. Outside Cloud
// Functions the environment defaults to development.
func bootstrap(ctx context.Context) (*app.App, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if _, ok := os.LookupEnv("ENVIRONMENT"); !ok {
		cfg.Environment = "development"
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger := services.NewLogger(cfg.Environment, cfg.LogLevel)
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return a, cfg, nil
}
