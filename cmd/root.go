// Package cmd implements the benefits CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rallyforge/benefits-engine/internal/calculation"
	"github.com/rallyforge/benefits-engine/internal/config"
)

var (
	flagLogLevel string
	flagEnvFile  string
)

// log is shared by every command; its level comes from --log-level.
var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "benefits",
	Short: "VA disability and military retirement benefits calculator",
	Long: "Combine disability ratings, look up VA compensation, work out CRDP/CRSC offsets,\n" +
		"project retirement accounts and income, and compare complete scenarios.",
	SilenceUsage:      true,
	PersistentPreRunE: configureLogging,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Optional .env file with server and history settings")
}

func configureLogging(cmd *cobra.Command, _ []string) error {
	level, err := logrus.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	log.SetLevel(level)
	log.SetOutput(cmd.ErrOrStderr())
	return nil
}

// loadSettings reads environment settings, honoring --env-file.
func loadSettings() (*config.Settings, error) {
	return config.LoadSettings(flagEnvFile)
}

// newEngine builds an engine that logs through the CLI logger.
func newEngine(concurrency int) *calculation.Engine {
	return calculation.NewEngine(
		calculation.WithLogger(calculation.NewLogrusLogger(log)),
		calculation.WithConcurrency(concurrency),
	)
}

// parseDecimal parses a decimal flag value, naming the flag on failure.
func parseDecimal(flag, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %q is not a number", flag, value)
	}
	return d, nil
}
