package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rallyforge/benefits-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVDetailedExporter provides raw annual projection detail per scenario/year.
// Accumulation, drawdown and income series are laid out side by side; a
// scenario gets as many rows as its longest series.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "NominalBalance", "RealBalance", "Contributions", "EmployerMatch", "Growth", "DrawdownBeginning", "Withdrawal", "DrawdownEnding", "TotalIncome"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedResults(results) {
		years := max(len(sc.Accumulation), len(sc.Drawdown.Years), len(sc.TotalIncome))
		for i := 0; i < years; i++ {
			row := make([]string, 0, len(header))
			row = append(row, sc.Name, intToString(i+1))
			if i < len(sc.Accumulation) {
				yb := sc.Accumulation[i]
				row = append(row, money2(yb.NominalBalance), money2(yb.RealBalance), money2(yb.Contributions), money2(yb.EmployerMatch), money2(yb.Growth))
			} else {
				row = append(row, "", "", "", "", "")
			}
			if i < len(sc.Drawdown.Years) {
				dy := sc.Drawdown.Years[i]
				row = append(row, money2(dy.BeginningBalance), money2(dy.Withdrawal), money2(dy.EndingBalance))
			} else {
				row = append(row, "", "", "")
			}
			if i < len(sc.TotalIncome) {
				row = append(row, money2(sc.TotalIncome[i].AnnualAmount))
			} else {
				row = append(row, "")
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func money2(d decimal.Decimal) string { return d.StringFixed(2) }
