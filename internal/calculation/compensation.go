package calculation

import (
	"fmt"

	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultMinDependentRating is the lowest combined rating that earns a
// dependency allowance.
const DefaultMinDependentRating = 30

// CompensationTable holds monthly VA compensation base rates keyed by rating
// (0, 10, ..., 100) and a flat per-dependent increment.
type CompensationTable struct {
	rates              map[int]decimal.Decimal
	dependentIncrement decimal.Decimal
	minDependentRating int
}

// DefaultCompensationTable returns the built-in veteran-alone rates
// (effective 2023-12-01) with a flat dependent increment.
func DefaultCompensationTable() *CompensationTable {
	return &CompensationTable{
		rates: map[int]decimal.Decimal{
			0:   decimal.Zero,
			10:  decimal.RequireFromString("171.23"),
			20:  decimal.RequireFromString("338.49"),
			30:  decimal.RequireFromString("524.31"),
			40:  decimal.RequireFromString("755.28"),
			50:  decimal.RequireFromString("1075.16"),
			60:  decimal.RequireFromString("1361.88"),
			70:  decimal.RequireFromString("1716.28"),
			80:  decimal.RequireFromString("1995.01"),
			90:  decimal.RequireFromString("2241.91"),
			100: decimal.RequireFromString("3737.85"),
		},
		dependentIncrement: decimal.RequireFromString("62.00"),
		minDependentRating: DefaultMinDependentRating,
	}
}

// NewCompensationTable overlays configured rates on the default table. A zero
// increment or a nil threshold keeps the default.
func NewCompensationTable(cfg domain.CompensationTableConfig) (*CompensationTable, error) {
	t := DefaultCompensationTable()
	for _, r := range cfg.Rates {
		if r.Rating < 0 || r.Rating > 100 || r.Rating%10 != 0 {
			return nil, fmt.Errorf("compensation rate for rating %d: rating must be a multiple of 10 between 0 and 100", r.Rating)
		}
		if r.Monthly.IsNegative() {
			return nil, fmt.Errorf("compensation rate for rating %d must not be negative", r.Rating)
		}
		t.rates[r.Rating] = r.Monthly
	}
	if cfg.DependentIncrement.IsNegative() {
		return nil, fmt.Errorf("dependent increment must not be negative")
	}
	if !cfg.DependentIncrement.IsZero() {
		t.dependentIncrement = cfg.DependentIncrement
	}
	if cfg.MinDependentRating != nil {
		if *cfg.MinDependentRating < 0 || *cfg.MinDependentRating > 100 {
			return nil, fmt.Errorf("minimum dependent rating %d must be between 0 and 100", *cfg.MinDependentRating)
		}
		t.minDependentRating = *cfg.MinDependentRating
	}
	return t, nil
}

// TableRating rounds a rating down to the nearest table key, clamped to 0..100.
func (t *CompensationTable) TableRating(rating int) int {
	switch {
	case rating <= 0:
		return 0
	case rating >= 100:
		return 100
	default:
		return rating / 10 * 10
	}
}

// MonthlyCompensation looks up the monthly payment for a combined rating and
// number of dependents.
func (t *CompensationTable) MonthlyCompensation(rating, dependents int) domain.CompensationResult {
	key := t.TableRating(rating)
	base := t.rates[key]
	extra := decimal.Zero
	if dependents > 0 && key >= t.minDependentRating {
		extra = t.dependentIncrement.Mul(decimal.NewFromInt(int64(dependents)))
	}
	return domain.CompensationResult{
		Rating:         rating,
		TableRating:    key,
		Dependents:     dependents,
		BaseRate:       base,
		DependentTotal: extra,
		Monthly:        base.Add(extra),
	}
}

// Rates returns the table as ordered rows.
func (t *CompensationTable) Rates() []domain.CompensationRate {
	out := make([]domain.CompensationRate, 0, 11)
	for r := 0; r <= 100; r += 10 {
		out = append(out, domain.CompensationRate{Rating: r, Monthly: t.rates[r]})
	}
	return out
}
