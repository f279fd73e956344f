package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rallyforge/benefits-engine/internal/calculation"
	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/rallyforge/benefits-engine/internal/output"
)

var crscFlags struct {
	combat     []string
	retiredPay string
	vaComp     string
	combatComp string
	rating     int
	serviceYrs string
}

var crscCmd = &cobra.Command{
	Use:   "crsc",
	Short: "Classify combat flags and compare CRDP with CRSC",
	Example: "  benefits crsc --combat armed_conflict --retired-pay 3200 --va-comp 1716.28 \\\n" +
		"      --combat-comp 1075.16 --rating 70 --service-years 22",
	RunE: runCRSC,
}

func init() {
	f := crscCmd.Flags()
	f.StringSliceVar(&crscFlags.combat, "combat", nil,
		"Combat flags: purple_heart, armed_conflict, hazardous_service, simulated_war, instrumentality_of_war")
	f.StringVar(&crscFlags.retiredPay, "retired-pay", "0", "Monthly gross retired pay")
	f.StringVar(&crscFlags.vaComp, "va-comp", "0", "Monthly VA compensation")
	f.StringVar(&crscFlags.combatComp, "combat-comp", "0", "Monthly VA compensation for combat-related conditions")
	f.IntVar(&crscFlags.rating, "rating", 0, "Combined disability rating")
	f.StringVar(&crscFlags.serviceYrs, "service-years", "0", "Years of creditable service")
	rootCmd.AddCommand(crscCmd)
}

func parseCombatFlags(names []string) (domain.CombatFlags, error) {
	var f domain.CombatFlags
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "purple_heart":
			f.PurpleHeart = true
		case "armed_conflict":
			f.ArmedConflict = true
		case "hazardous_service":
			f.HazardousService = true
		case "simulated_war":
			f.SimulatedWar = true
		case "instrumentality_of_war":
			f.InstrumentalityOfWar = true
		case "not_combat_related", "":
		default:
			return f, fmt.Errorf("unknown combat flag %q", n)
		}
	}
	return f, nil
}

func runCRSC(cmd *cobra.Command, _ []string) error {
	flags, err := parseCombatFlags(crscFlags.combat)
	if err != nil {
		return err
	}
	in := domain.OffsetInput{CombinedRating: crscFlags.rating, Category: calculation.ClassifyCRSC(flags)}
	if in.RetiredPay, err = parseDecimal("retired-pay", crscFlags.retiredPay); err != nil {
		return err
	}
	if in.VACompensation, err = parseDecimal("va-comp", crscFlags.vaComp); err != nil {
		return err
	}
	if in.CombatCompensation, err = parseDecimal("combat-comp", crscFlags.combatComp); err != nil {
		return err
	}
	if in.YearsOfService, err = parseDecimal("service-years", crscFlags.serviceYrs); err != nil {
		return err
	}

	res := calculation.ComputeOffset(in)
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Category: %s\n\n", in.Category)
	fmt.Fprint(out, output.RenderTable(output.Table{
		Title:   "Retired Pay Offset",
		Headers: []string{"Item", "Monthly"},
		Rows: [][]string{
			{"Retired pay", output.FormatCurrency(in.RetiredPay)},
			{"VA waiver", output.FormatCurrency(res.Waiver.Neg())},
			{"CRDP eligible (" + yesNo(res.CRDPEligible) + ")", output.FormatCurrency(res.CRDPAmount)},
			{"CRSC eligible (" + yesNo(res.CRSCEligible) + ")", output.FormatCurrency(res.CRSCAmount)},
			{"Elected", string(res.Elected)},
			{"---"},
			{"Net retired pay", output.FormatCurrency(res.NetRetiredPay)},
			{"Restored", output.FormatCurrency(res.Restored)},
			{"VA compensation", output.FormatCurrency(in.VACompensation)},
			{"Total monthly pay", output.FormatCurrency(res.TotalMonthlyPay)},
		},
	}))
	return nil
}
