package cmd

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rallyforge/benefits-engine/internal/config"
	"github.com/rallyforge/benefits-engine/internal/output"
	"github.com/rallyforge/benefits-engine/internal/store"
)

var runFlags struct {
	format    string
	outputDir string
	save      bool
	label     string
}

var runCmd = &cobra.Command{
	Use:   "run CONFIG",
	Short: "Run every scenario in a YAML or TOML configuration",
	Long: "Run every scenario in a configuration file and print a report.\n\n" +
		"Formats: " + strings.Join(output.AvailableFormatterNames(), ", ") + ", or \"all\" with --output-dir.",
	Example: "  benefits run scenarios.yaml\n" +
		"  benefits run scenarios.toml --format json --save\n" +
		"  benefits run scenarios.yaml --format all --output-dir reports",
	Args: cobra.ExactArgs(1),
	RunE: runScenarios,
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runFlags.format, "format", "f", "console", "Report format")
	f.StringVarP(&runFlags.outputDir, "output-dir", "o", "", "Write report files to this directory instead of stdout")
	f.BoolVar(&runFlags.save, "save", false, "Record the run in the history database")
	f.StringVar(&runFlags.label, "label", "", "History label (defaults to the file name)")
	rootCmd.AddCommand(runCmd)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	cfg, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}
	engine, err := newEngine(settings.Concurrency).ForConfiguration(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmp, err := engine.RunScenarios(ctx, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if runFlags.outputDir != "" {
		files, err := output.GenerateReportFiles(runFlags.outputDir, cmp, runFlags.format)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(out, "  wrote %s\n", f)
		}
	} else if err := output.GenerateReport(out, cmp, runFlags.format); err != nil {
		return err
	}

	if runFlags.save {
		history, err := store.Open(settings.HistoryDB)
		if err != nil {
			return err
		}
		defer history.Close()

		label := runFlags.label
		if label == "" {
			label = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}
		id, err := history.SaveRun(ctx, label, cmp)
		if err != nil {
			return err
		}
		log.WithField("run_id", id).Infof("saved run to %s", settings.HistoryDB)
		fmt.Fprintf(cmd.ErrOrStderr(), "  Saved run %s\n", id)
	}
	return nil
}
