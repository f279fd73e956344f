package calculation

import (
	"sort"

	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred             = decimal.NewFromInt(100)
	bilateralFactorRate = decimal.NewFromFloat(0.1)
)

// CombineRatings applies the VA remaining-capacity rule to a set of individual
// percentages. Ratings are processed largest first; each one reduces the
// remaining healthy capacity by its percentage. The exact combined value is
// rounded once, half up to the nearest 10, and capped at 100.
func CombineRatings(ratings []int) domain.CombinedRating {
	sorted := sortedDesc(ratings)
	values := make([]decimal.Decimal, len(sorted))
	for i, r := range sorted {
		values[i] = decimal.NewFromInt(int64(r))
	}

	exact, steps := combineValues(values)
	return domain.CombinedRating{
		Ratings:         sorted,
		Exact:           exact,
		Combined:        roundToTen(exact),
		BilateralFactor: decimal.Zero,
		Steps:           steps,
	}
}

// CombineConditions combines the ratings of a claim's conditions. When two or
// more conditions are bilateral they are combined on their own first, the 10%
// bilateral factor is added to that value, and the result enters the main
// combination as a single rating.
func CombineConditions(conditions []domain.DisabilityCondition) domain.CombinedRating {
	all := make([]int, 0, len(conditions))
	var bilateral, other []decimal.Decimal
	for _, c := range conditions {
		all = append(all, c.Rating)
		v := decimal.NewFromInt(int64(c.Rating))
		if c.Bilateral {
			bilateral = append(bilateral, v)
		} else {
			other = append(other, v)
		}
	}

	factor := decimal.Zero
	if len(bilateral) >= 2 {
		sortDecimalsDesc(bilateral)
		paired, _ := combineValues(bilateral)
		factor = paired.Mul(bilateralFactorRate)
		other = append(other, paired.Add(factor))
	} else {
		other = append(other, bilateral...)
	}

	sortDecimalsDesc(other)
	exact, steps := combineValues(other)
	return domain.CombinedRating{
		Ratings:         sortedDesc(all),
		Exact:           exact,
		Combined:        roundToTen(exact),
		BilateralFactor: factor,
		Steps:           steps,
	}
}

// RatingsTable returns the VA combined ratings table for two ratings
// between 10 and 90. Cell [i][j] holds the whole-number combined value of
// (i+1)*10 and (j+1)*10 before rounding to the nearest 10.
func RatingsTable() [][]int {
	table := make([][]int, 9)
	for i := range table {
		table[i] = make([]int, 9)
		for j := range table[i] {
			exact, _ := combineValues([]decimal.Decimal{
				decimal.NewFromInt(int64((i + 1) * 10)),
				decimal.NewFromInt(int64((j + 1) * 10)),
			})
			table[i][j] = int(exact.Round(0).IntPart())
		}
	}
	return table
}

// combineValues folds values, already sorted descending, into the exact
// combined percentage.
func combineValues(values []decimal.Decimal) (decimal.Decimal, []domain.RatingStep) {
	steps := make([]domain.RatingStep, 0, len(values))
	combined := decimal.Zero
	for i, r := range values {
		before := combined
		if i == 0 {
			combined = r
		} else {
			remaining := hundred.Sub(combined)
			combined = combined.Add(remaining.Mul(r).Div(hundred))
		}
		steps = append(steps, domain.RatingStep{Rating: r, Before: before, After: combined})
	}
	return combined, steps
}

func roundToTen(exact decimal.Decimal) int {
	rounded := int(exact.Round(-1).IntPart())
	if rounded > 100 {
		return 100
	}
	if rounded < 0 {
		return 0
	}
	return rounded
}

func sortedDesc(ratings []int) []int {
	out := make([]int, len(ratings))
	copy(out, ratings)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func sortDecimalsDesc(values []decimal.Decimal) {
	sort.SliceStable(values, func(i, j int) bool { return values[i].GreaterThan(values[j]) })
}
