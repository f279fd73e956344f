package output

import (
	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// StaticAssumptions are modeling rules that hold for every run regardless of input.
var StaticAssumptions = []string{
	"VA compensation: 2023-12 rate table unless overridden, dependent add-on at 30% and above",
	"CRDP: combined rating of 50% or more with 20+ years of service",
	"CRSC: restores only the combat-related share of VA compensation",
	"Amounts are nominal unless labelled real",
}

// GenerateAssumptions creates the assumptions list from the configured values
// followed by the static modeling rules.
func GenerateAssumptions(assumptions domain.Assumptions) []string {
	lines := assumptions.Describe()
	return append(lines, StaticAssumptions...)
}

var decimalHundred = decimal.NewFromInt(100)
