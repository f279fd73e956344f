package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rallyforge/benefits-engine/internal/calculation"
	"github.com/rallyforge/benefits-engine/internal/output"
)

var (
	flagRating     int
	flagDependents int
	flagShowTable  bool
)

var compensationCmd = &cobra.Command{
	Use:     "compensation",
	Short:   "Look up monthly VA disability compensation",
	Example: "  benefits compensation --rating 70 --dependents 2\n  benefits compensation --table",
	RunE:    runCompensation,
}

func init() {
	compensationCmd.Flags().IntVar(&flagRating, "rating", 0, "Combined disability rating")
	compensationCmd.Flags().IntVar(&flagDependents, "dependents", 0, "Number of dependents")
	compensationCmd.Flags().BoolVar(&flagShowTable, "table", false, "Print the whole rate table")
	rootCmd.AddCommand(compensationCmd)
}

func runCompensation(cmd *cobra.Command, _ []string) error {
	table := calculation.DefaultCompensationTable()
	out := cmd.OutOrStdout()

	if flagShowTable {
		rows := make([][]string, 0, 10)
		for _, r := range table.Rates() {
			rows = append(rows, []string{strconv.Itoa(r.Rating) + "%", output.FormatCurrency(r.Monthly)})
		}
		fmt.Fprint(out, output.RenderTable(output.Table{Title: "VA Compensation Rates", Headers: []string{"Rating", "Monthly"}, Rows: rows}))
		return nil
	}

	if flagRating < 0 || flagRating > 100 {
		return fmt.Errorf("--rating must be between 0 and 100")
	}
	if flagDependents < 0 {
		return fmt.Errorf("--dependents must not be negative")
	}

	res := table.MonthlyCompensation(flagRating, flagDependents)
	fmt.Fprint(out, output.RenderTable(output.Table{
		Title:   "VA Compensation",
		Headers: []string{"Item", "Value"},
		Rows: [][]string{
			{"Rating", strconv.Itoa(res.Rating) + "%"},
			{"Table rating", strconv.Itoa(res.TableRating) + "%"},
			{"Base rate", output.FormatCurrency(res.BaseRate)},
			{"Dependents (" + strconv.Itoa(res.Dependents) + ")", output.FormatCurrency(res.DependentTotal)},
			{"---"},
			{"Monthly", output.FormatCurrency(res.Monthly)},
		},
	}))
	return nil
}
