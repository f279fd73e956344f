package cmd

import (
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rallyforge/benefits-engine/internal/server"
	"github.com/rallyforge/benefits-engine/internal/store"
)

var flagNoHistory bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators over HTTP",
	Long: "Serve the calculators as a JSON API. PORT, LOG_LEVEL, HISTORY_DB, SHUTDOWN_TIMEOUT\n" +
		"and SCENARIO_CONCURRENCY are read from the environment or the --env-file.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Disable the run history endpoints")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-level") {
		log.SetLevel(settings.LogLevel)
	}
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := []server.Option{
		server.WithLogger(log),
		server.WithEngine(newEngine(settings.Concurrency)),
	}
	if !flagNoHistory {
		history, err := store.Open(settings.HistoryDB)
		if err != nil {
			return err
		}
		defer history.Close()
		opts = append(opts, server.WithHistory(history))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(opts...).ListenAndServe(ctx, ":"+settings.Port, settings.ShutdownTimeout)
}
