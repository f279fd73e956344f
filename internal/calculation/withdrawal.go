package calculation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rallyforge/benefits-engine/internal/domain"
	money "github.com/rallyforge/benefits-engine/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ErrUnknownStrategy is returned when a withdrawal plan names a strategy that
// is not in the registry.
var ErrUnknownStrategy = errors.New("unknown withdrawal strategy")

// Strategy names understood by DefaultStrategies.
const (
	StrategyFlat3     = "flat_3"
	StrategyFlat4     = "flat_4"
	StrategyFlat5     = "flat_5"
	StrategyGuardrail = "guardrail"
	StrategyNeedBased = "need_based"
)

// Guardrail defaults used when a plan leaves the fields empty.
var (
	defaultGuardrailBase  = decimal.NewFromFloat(0.04)
	defaultGuardrailDrop  = decimal.NewFromFloat(0.01)
	defaultGuardrailRaise = decimal.NewFromFloat(0.01)
)

// WithdrawalStrategy selects one year's withdrawal from the current balance.
// Implementations keep no state between calls.
type WithdrawalStrategy interface {
	Withdrawal(balance, desired decimal.Decimal) decimal.Decimal
	Name() string
}

// FlatPercentage withdraws a fixed share of the current balance.
type FlatPercentage struct {
	Label string
	Rate  decimal.Decimal
}

func (f FlatPercentage) Withdrawal(balance, _ decimal.Decimal) decimal.Decimal {
	if !balance.IsPositive() {
		return decimal.Zero
	}
	return decimal.Min(balance.Mul(f.Rate), balance)
}

func (f FlatPercentage) Name() string { return f.Label }

// Guardrail withdraws the desired amount, kept between
// balance*(BaseRate-Drop) and balance*(BaseRate+Raise). With no desired amount
// it withdraws balance*BaseRate.
type Guardrail struct {
	BaseRate decimal.Decimal
	Drop     decimal.Decimal
	Raise    decimal.Decimal
}

func (g Guardrail) Withdrawal(balance, desired decimal.Decimal) decimal.Decimal {
	if !balance.IsPositive() {
		return decimal.Zero
	}
	floor := money.NonNegative(balance.Mul(g.BaseRate.Sub(g.Drop)))
	ceiling := decimal.Min(balance.Mul(g.BaseRate.Add(g.Raise)), balance)
	if !desired.IsPositive() {
		desired = balance.Mul(g.BaseRate)
	}
	return money.Clamp(desired, floor, ceiling)
}

func (g Guardrail) Name() string { return StrategyGuardrail }

// NeedBased withdraws the desired annual amount until the balance runs out.
type NeedBased struct{}

func (NeedBased) Withdrawal(balance, desired decimal.Decimal) decimal.Decimal {
	if !balance.IsPositive() || !desired.IsPositive() {
		return decimal.Zero
	}
	return decimal.Min(desired, balance)
}

func (NeedBased) Name() string { return StrategyNeedBased }

// StrategyFactory builds a strategy from a withdrawal plan.
type StrategyFactory func(plan domain.WithdrawalPlan) (WithdrawalStrategy, error)

// StrategyRegistry maps strategy names to factories. Engines receive their
// registry at construction.
type StrategyRegistry map[string]StrategyFactory

// DefaultStrategies returns a new registry holding the built-in strategies.
func DefaultStrategies() StrategyRegistry {
	flat := func(label string, rate float64) StrategyFactory {
		return func(domain.WithdrawalPlan) (WithdrawalStrategy, error) {
			return FlatPercentage{Label: label, Rate: decimal.NewFromFloat(rate)}, nil
		}
	}
	return StrategyRegistry{
		StrategyFlat3:     flat(StrategyFlat3, 0.03),
		StrategyFlat4:     flat(StrategyFlat4, 0.04),
		StrategyFlat5:     flat(StrategyFlat5, 0.05),
		StrategyGuardrail: newGuardrail,
		StrategyNeedBased: func(domain.WithdrawalPlan) (WithdrawalStrategy, error) { return NeedBased{}, nil },
	}
}

func newGuardrail(plan domain.WithdrawalPlan) (WithdrawalStrategy, error) {
	g := Guardrail{
		BaseRate: orDefault(plan.BaseRate, defaultGuardrailBase),
		Drop:     orDefault(plan.Drop, defaultGuardrailDrop),
		Raise:    orDefault(plan.Raise, defaultGuardrailRaise),
	}
	if g.BaseRate.IsNegative() || g.Drop.IsNegative() || g.Raise.IsNegative() {
		return nil, fmt.Errorf("guardrail rates must not be negative")
	}
	if g.Drop.GreaterThan(g.BaseRate) {
		return nil, fmt.Errorf("guardrail drop %s exceeds base rate %s", g.Drop, g.BaseRate)
	}
	return g, nil
}

func orDefault(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}

// Resolve builds the strategy named by plan.
func (r StrategyRegistry) Resolve(plan domain.WithdrawalPlan) (WithdrawalStrategy, error) {
	factory, ok := r[plan.Strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, plan.Strategy)
	}
	s, err := factory(plan)
	if err != nil {
		return nil, fmt.Errorf("strategy %s: %w", plan.Strategy, err)
	}
	return s, nil
}

// Names returns the registered strategy names in sorted order.
func (r StrategyRegistry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProjectDrawdown runs the withdrawal phase year by year: the strategy picks a
// withdrawal from the beginning balance, then the remainder grows at
// annualReturn. The first year that ends with an empty account is reported as
// the depletion year.
func ProjectDrawdown(balance decimal.Decimal, strategy WithdrawalStrategy, desiredAnnual, annualReturn decimal.Decimal, years int) domain.DrawdownResult {
	result := domain.DrawdownResult{
		Strategy:       strategy.Name(),
		Years:          make([]domain.DrawdownYear, 0, max(years, 0)),
		TotalWithdrawn: decimal.Zero,
		LongevityYears: years,
	}
	balance = money.NonNegative(balance)

	for year := 1; year <= years; year++ {
		begin := balance
		w := money.Clamp(strategy.Withdrawal(balance, desiredAnnual), decimal.Zero, balance)
		remaining := balance.Sub(w)
		growth := remaining.Mul(annualReturn).Round(growthPlaces)
		balance = money.NonNegative(remaining.Add(growth))

		result.Years = append(result.Years, domain.DrawdownYear{
			Year:             year,
			BeginningBalance: begin,
			Withdrawal:       w,
			Growth:           growth,
			EndingBalance:    balance,
		})
		result.TotalWithdrawn = result.TotalWithdrawn.Add(w)

		if !result.Depleted && begin.IsPositive() && balance.IsZero() {
			result.Depleted = true
			result.DepletionYear = year
			result.LongevityYears = year
		}
	}
	result.FinalBalance = balance
	return result
}
