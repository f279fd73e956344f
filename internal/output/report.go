package output

import (
	"fmt"
	"io"

	"github.com/rallyforge/benefits-engine/internal/domain"
)

// GenerateReport renders results in the named format and writes them to w.
func GenerateReport(w io.Writer, results *domain.ScenarioComparison, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReportFiles writes one file per named format into dir and returns
// the file names. "all" expands to every registered formatter.
func GenerateReportFiles(dir string, results *domain.ScenarioComparison, formats ...string) ([]string, error) {
	var selected []Formatter
	for _, name := range formats {
		if NormalizeFormatName(name) == "all" {
			selected = append(selected[:0], builtInFormatters...)
			break
		}
		f, err := LookupFormatter(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, f)
	}

	files := make([]string, 0, len(selected))
	seen := map[string]bool{}
	for _, f := range selected {
		if seen[f.Name()] {
			continue
		}
		seen[f.Name()] = true
		name, err := WriteFormatted(namedFile{f}, results, dir)
		if err != nil {
			return files, fmt.Errorf("%s formatter: %w", f.Name(), err)
		}
		files = append(files, name)
	}
	return files, nil
}

// namedFile prefixes the extension with the formatter name so every report
// in a batch gets its own file.
type namedFile struct{ Formatter }

func (n namedFile) Extension() string {
	if n.Name() == n.Formatter.Extension() {
		return n.Name()
	}
	return n.Name() + "." + n.Formatter.Extension()
}
