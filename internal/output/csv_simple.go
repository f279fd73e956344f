package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rallyforge/benefits-engine/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "CombinedRating", "VACompensation", "RetiredPayGross", "Waiver", "Program", "Restored", "TotalMonthlyPay", "FirstYearIncome", "FinalBalance", "Strategy", "Longevity", "Depleted", "EvidenceConfidence"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedResults(results) {
		confidence := ""
		if sc.Evidence != nil {
			confidence = string(sc.Evidence.Confidence)
		}
		row := []string{
			sc.Name,
			intToString(sc.Rating.Combined),
			sc.Compensation.Monthly.StringFixed(2),
			sc.Pension.GrossMonthly.StringFixed(2),
			sc.Offset.Waiver.StringFixed(2),
			string(sc.Offset.Elected),
			sc.Offset.Restored.StringFixed(2),
			sc.Offset.TotalMonthlyPay.StringFixed(2),
			sc.FirstYearIncome().StringFixed(2),
			sc.FinalBalance().StringFixed(2),
			sc.Drawdown.Strategy,
			intToString(sc.Drawdown.LongevityYears),
			boolToString(sc.Drawdown.Depleted),
			confidence,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func sortedResults(results *domain.ScenarioComparison) []domain.ScenarioResult {
	scenarios := append([]domain.ScenarioResult(nil), results.Results...)
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios
}
