package config

import (
	"bytes"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// CreateExampleConfiguration creates an example configuration with two
// scenarios for the same member: retiring now at 20 years, or serving to 24.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	member := domain.ServiceMember{
		Name:                 "Alex Rivera",
		BirthDate:            domain.NewDate(1982, time.April, 12),
		EntryDate:            domain.NewDate(2005, time.June, 1),
		RetirementDate:       domain.NewDate(2025, time.June, 1),
		Dependents:           2,
		High3Average:         decimal.NewFromInt(7800),
		RetiredPayMultiplier: DefaultRetiredPayMultiplier,
		Survivor: &domain.SurvivorElection{
			CoveragePercent: decimal.NewFromInt(1),
		},
	}

	ssCOLA := decimal.NewFromFloat(0.025)

	conditions := []domain.DisabilityCondition{
		{Code: "9411", Description: "PTSD", Rating: 50, Combat: domain.CombatFlags{ArmedConflict: true}},
		{Code: "5260-L", Description: "Left knee limitation of flexion", Rating: 10, Bilateral: true},
		{Code: "5260-R", Description: "Right knee limitation of flexion", Rating: 10, Bilateral: true},
		{Code: "6260", Description: "Tinnitus", Rating: 10, Combat: domain.CombatFlags{HazardousService: true}},
		{Code: "5237", Description: "Lumbosacral strain", Rating: 20},
	}

	account := domain.InvestmentAccount{
		Name:                 "TSP",
		Balance:              decimal.NewFromInt(185000),
		MonthlyContribution:  decimal.NewFromInt(600),
		EmployerMatchPercent: decimal.NewFromFloat(0.05),
		FundAllocations: []domain.FundAllocation{
			{Fund: "C", Weight: decimal.NewFromFloat(0.6), ExpectedReturn: decimal.NewFromFloat(0.08)},
			{Fund: "S", Weight: decimal.NewFromFloat(0.2), ExpectedReturn: decimal.NewFromFloat(0.085)},
			{Fund: "G", Weight: decimal.NewFromFloat(0.2), ExpectedReturn: decimal.NewFromFloat(0.03)},
		},
	}

	budget := &domain.Budget{
		Incomes: []domain.BudgetEntry{
			{Name: "Retired pay", Category: "benefits", Amount: decimal.NewFromInt(3500)},
			{Name: "VA compensation", Category: "benefits", Amount: decimal.NewFromInt(1900)},
			{Name: "Civilian salary", Category: "wages", Amount: decimal.NewFromInt(4200)},
		},
		Expenses: []domain.BudgetEntry{
			{Name: "Mortgage", Category: "housing", Amount: decimal.NewFromInt(2400)},
			{Name: "Groceries", Category: "food", Amount: decimal.NewFromInt(900)},
			{Name: "Car payment", Category: "transportation", Amount: decimal.NewFromInt(550)},
			{Name: "Utilities", Category: "housing", Amount: decimal.NewFromInt(350)},
		},
		Goals: []domain.SavingsGoal{
			{Name: "Emergency fund", Target: decimal.NewFromInt(1000)},
			{Name: "College savings", Target: decimal.NewFromInt(500)},
		},
	}

	evidence := &domain.EvidenceInput{
		Required: []string{"DD-214", "Service treatment records", "Nexus letter", "Buddy statement"},
		Provided: []string{"DD-214", "Service treatment records", "Nexus letter"},
	}

	serveLonger := member
	serveLonger.RetirementDate = domain.NewDate(2029, time.June, 1)
	serveLonger.High3Average = decimal.NewFromInt(8600)

	return &domain.Configuration{
		Assumptions: domain.Assumptions{
			InflationRate:   decimal.NewFromFloat(0.025),
			COLARate:        decimal.NewFromFloat(0.025),
			ProjectionYears: 25,
			DrawdownYears:   30,
			DrawdownReturn:  decimal.NewFromFloat(0.05),
		},
		Scenarios: []domain.Scenario{
			{
				Name:       "Retire at 20 years",
				Member:     member,
				Conditions: conditions,
				Account:    account,
				Withdrawal: domain.WithdrawalPlan{Strategy: "guardrail", DesiredAnnual: decimal.NewFromInt(30000)},
				Budget:     budget,
				Evidence:   evidence,
			},
			{
				Name:       "Serve to 24 years",
				Member:     serveLonger,
				Conditions: conditions,
				Account:    account,
				Withdrawal: domain.WithdrawalPlan{Strategy: "flat_4"},
				Income: []domain.IncomeStream{
					{Source: domain.IncomeSocialSecurity, MonthlyAmount: decimal.NewFromInt(1400), COLARate: &ssCOLA},
				},
				Budget:   budget,
				Evidence: evidence,
			},
		},
	}
}

// Marshal encodes a configuration in the given format.
func (ip *InputParser) Marshal(config *domain.Configuration, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		out, err := yaml.Marshal(config)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return out, nil
	}
}
