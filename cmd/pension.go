package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rallyforge/benefits-engine/internal/calculation"
	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/rallyforge/benefits-engine/internal/output"
)

var pensionFlags struct {
	high3      string
	multiplier string
	years      string
	sbpBase    string
	sbpCover   string
}

var pensionCmd = &cobra.Command{
	Use:     "pension",
	Short:   "Compute monthly military retired pay",
	Example: "  benefits pension --high3 8000 --years 22 --survivor-coverage 1",
	RunE:    runPension,
}

func init() {
	f := pensionCmd.Flags()
	f.StringVar(&pensionFlags.high3, "high3", "0", "Monthly High-3 average base pay")
	f.StringVar(&pensionFlags.multiplier, "multiplier", "0.025", "Retired pay multiplier per year of service")
	f.StringVar(&pensionFlags.years, "years", "20", "Years of creditable service")
	f.StringVar(&pensionFlags.sbpBase, "survivor-base", "0", "Survivor benefit base amount (0 covers full retired pay)")
	f.StringVar(&pensionFlags.sbpCover, "survivor-coverage", "0", "Fraction of the base covered by the survivor plan")
	rootCmd.AddCommand(pensionCmd)
}

func runPension(cmd *cobra.Command, _ []string) error {
	var in domain.PensionInput
	var err error
	if in.High3Average, err = parseDecimal("high3", pensionFlags.high3); err != nil {
		return err
	}
	if in.Multiplier, err = parseDecimal("multiplier", pensionFlags.multiplier); err != nil {
		return err
	}
	if in.YearsOfService, err = parseDecimal("years", pensionFlags.years); err != nil {
		return err
	}
	var sbp domain.SurvivorElection
	if sbp.BaseAmount, err = parseDecimal("survivor-base", pensionFlags.sbpBase); err != nil {
		return err
	}
	if sbp.CoveragePercent, err = parseDecimal("survivor-coverage", pensionFlags.sbpCover); err != nil {
		return err
	}
	if sbp.CoveragePercent.IsPositive() {
		in.Survivor = &sbp
	}

	res := calculation.CalculatePension(in)
	fmt.Fprint(cmd.OutOrStdout(), output.RenderTable(output.Table{
		Title:   "Retired Pay",
		Headers: []string{"Item", "Monthly"},
		Rows: [][]string{
			{"Gross retired pay", output.FormatCurrency(res.GrossMonthly)},
			{"Survivor base", output.FormatCurrency(res.SurvivorBase)},
			{"Survivor plan cost", output.FormatCurrency(res.SurvivorCost.Neg())},
			{"---"},
			{"Net retired pay", output.FormatCurrency(res.NetMonthly)},
			{"Survivor benefit", output.FormatCurrency(res.SurvivorBenefit)},
		},
	}))
	return nil
}
