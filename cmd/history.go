package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rallyforge/benefits-engine/internal/output"
	"github.com/rallyforge/benefits-engine/internal/store"
)

var historyFlags struct {
	limit  int
	format string
}

var historyCmd = &cobra.Command{
	Use:   "history [RUN_ID]",
	Short: "List saved runs, or print one saved run",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyFlags.limit, "limit", "n", 10, "Number of runs to list (0 for all)")
	historyCmd.Flags().StringVarP(&historyFlags.format, "format", "f", "console", "Report format for a single run")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	history, err := store.Open(settings.HistoryDB)
	if err != nil {
		return err
	}
	defer history.Close()

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		cmp, err := history.GetRun(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return output.GenerateReport(out, cmp, historyFlags.format)
	}

	runs, err := history.ListRuns(cmd.Context(), historyFlags.limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "\n  No saved runs.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.RunID,
			r.Label,
			r.SavedAt.Local().Format("2006-01-02 15:04"),
			strconv.Itoa(r.ScenarioCount),
			r.BestForIncome,
		})
	}
	fmt.Fprint(out, output.RenderTable(output.Table{
		Title:   "Saved Runs",
		Headers: []string{"Run", "Label", "Saved", "Scenarios", "Best For Income"},
		Rows:    rows,
	}))
	return nil
}
