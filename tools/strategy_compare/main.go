package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rallyforge/benefits-engine/internal/calculation"
	"github.com/rallyforge/benefits-engine/internal/config"
)

// Runs every registered withdrawal strategy against each scenario's projected
// balance and prints one CSV row per scenario and strategy.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: strategy_compare <config-file>")
		return
	}
	cfg, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	engine, err := calculation.NewEngine().ForConfiguration(cfg)
	if err != nil {
		panic(err)
	}
	res, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}

	a := cfg.Assumptions
	fmt.Println("Scenario,Strategy,StartBalance,TotalWithdrawn,FinalBalance,Depleted,DepletionYear")
	for i, sr := range res.Results {
		plan := cfg.Scenarios[i].Withdrawal
		start := sr.FinalBalance()
		for _, name := range engine.Strategies.Names() {
			plan.Strategy = name
			strategy, err := engine.Strategies.Resolve(plan)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				continue
			}
			dd := calculation.ProjectDrawdown(start, strategy, plan.DesiredAnnual, a.DrawdownReturn, a.DrawdownYears)
			fmt.Printf("%q,%s,%s,%s,%s,%t,%d\n", sr.Name, name,
				start.StringFixed(0), dd.TotalWithdrawn.StringFixed(0), dd.FinalBalance.StringFixed(0),
				dd.Depleted, dd.DepletionYear)
		}
	}
}
