package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rallyforge/benefits-engine/internal/calculation"
	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/rallyforge/benefits-engine/internal/output"
)

var flagBilateral []int

var combineCmd = &cobra.Command{
	Use:   "combine RATING...",
	Short: "Combine disability ratings with VA math",
	Example: "  benefits combine 50 30 10\n" +
		"  benefits combine 40 --bilateral 10,10",
	RunE: runCombine,
}

func init() {
	combineCmd.Flags().IntSliceVar(&flagBilateral, "bilateral", nil, "Ratings of conditions affecting paired extremities")
	rootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	var conditions []domain.DisabilityCondition
	add := func(rating int, bilateral bool) error {
		if rating < 0 || rating > 100 {
			return fmt.Errorf("rating %d must be between 0 and 100", rating)
		}
		conditions = append(conditions, domain.DisabilityCondition{
			Code:      fmt.Sprintf("c%d", len(conditions)+1),
			Rating:    rating,
			Bilateral: bilateral,
		})
		return nil
	}
	for _, a := range args {
		r, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("rating %q is not a whole number", a)
		}
		if err := add(r, false); err != nil {
			return err
		}
	}
	for _, r := range flagBilateral {
		if err := add(r, true); err != nil {
			return err
		}
	}
	if len(conditions) == 0 {
		return fmt.Errorf("at least one rating is required")
	}

	result := calculation.CombineConditions(conditions)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, output.RenderTitle("COMBINED DISABILITY RATING"))
	fmt.Fprintln(out)

	rows := make([][]string, 0, len(result.Steps)+3)
	for i, st := range result.Steps {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			st.Rating.StringFixed(1) + "%",
			st.Before.StringFixed(2),
			st.After.StringFixed(2),
		})
	}
	rows = append(rows, []string{"---"}, []string{"Exact", "", "", result.Exact.StringFixed(2) + "%"})
	if !result.BilateralFactor.IsZero() {
		rows = append(rows, []string{"Bilateral factor", "", "", result.BilateralFactor.StringFixed(2)})
	}
	rows = append(rows, []string{"Combined", "", "", strconv.Itoa(result.Combined) + "%"})

	fmt.Fprint(out, output.RenderTable(output.Table{
		Headers: []string{"Step", "Rating", "Remaining Before", "Remaining After"},
		Rows:    rows,
	}))
	return nil
}
