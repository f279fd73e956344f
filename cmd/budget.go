package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rallyforge/benefits-engine/internal/calculation"
	"github.com/rallyforge/benefits-engine/internal/config"
	"github.com/rallyforge/benefits-engine/internal/output"
)

var budgetCmd = &cobra.Command{
	Use:   "budget FILE",
	Short: "Break down a monthly budget from a YAML or TOML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, args []string) error {
	b, err := config.NewInputParser().LoadBudget(args[0])
	if err != nil {
		return err
	}
	res := calculation.BuildBudgetBreakdown(*b)

	rows := [][]string{{"Income", output.FormatCurrency(res.TotalIncome)}}
	for _, ct := range res.ExpensesByCategory {
		rows = append(rows, []string{"  " + ct.Category, output.FormatCurrency(ct.Total)})
	}
	rows = append(rows,
		[]string{"Expenses", output.FormatCurrency(res.TotalExpenses)},
		[]string{"---"},
		[]string{"Available to save", output.FormatCurrency(res.AvailableSavings)},
		[]string{"Savings goals", output.FormatCurrency(res.TotalGoals)},
	)
	if res.MeetsGoal {
		rows = append(rows, []string{"Status", "meets goals"})
	} else {
		rows = append(rows, []string{"Shortfall", output.FormatCurrency(res.ShortfallAmount)})
	}

	fmt.Fprint(cmd.OutOrStdout(), output.RenderTable(output.Table{
		Title:   "Monthly Budget",
		Headers: []string{"Item", "Amount"},
		Rows:    rows,
	}))
	return nil
}
