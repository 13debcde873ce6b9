// Package dataset reads the risk flat file (tablero_riesgos.csv). The file is
// comma-delimited with no quoting: a value containing a comma shifts every
// following column of that row. That is the documented contract of the source
// extract, so the parser splits naively instead of using encoding/csv.
package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"catastro-insights-go/internal/types"
)

// Column positions in the source extract.
const (
	colConstantValue = iota
	colDepartment
	colMunicipality
	colLegalNature
	colFilingYear
	colAnnotation
	colDynamics
	colAnomalyFlag
	colAnomalyScore
	colAnomalyType
	fieldCount
)

// DropReason tags why a line was rejected.
type DropReason string

const (
	DropEmpty    DropReason = "empty"
	DropShortRow DropReason = "short_row"
)

// RowOutcome makes the accept/drop decision for a single line explicit.
// Callers that only want accepted rows use Load or Scan; the outcome form
// exists so the silent-drop policy stays auditable.
type RowOutcome struct {
	Accepted bool
	Row      types.RiskRecord
	Reason   DropReason
}

// ParseLine splits one data line. Lines with fewer fields than the header are
// dropped; extra fields are tolerated and ignored.
func ParseLine(line string, expected int) RowOutcome {
	line = strings.TrimSpace(line)
	if line == "" {
		return RowOutcome{Reason: DropEmpty}
	}
	values := strings.Split(line, ",")
	if len(values) < expected {
		return RowOutcome{Reason: DropShortRow}
	}
	return RowOutcome{
		Accepted: true,
		Row: types.RiskRecord{
			ConstantValue:   values[colConstantValue],
			Department:      values[colDepartment],
			Municipality:    values[colMunicipality],
			LegalNatureCode: values[colLegalNature],
			FilingYear:      values[colFilingYear],
			AnnotationCount: values[colAnnotation],
			DynamicsIndex:   values[colDynamics],
			IsAnomaly:       values[colAnomalyFlag],
			AnomalyScore:    values[colAnomalyScore],
			AnomalyType:     values[colAnomalyType],
		},
	}
}

// Load materializes every accepted row in file order. The first line is the
// header and is only used for its field count.
func Load(path string) ([]types.RiskRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	lines := strings.Split(string(data), "\n")
	expected := headerFieldCount(lines[0])
	var out []types.RiskRecord
	for _, line := range lines[1:] {
		outcome := ParseLine(line, expected)
		if outcome.Accepted {
			out = append(out, outcome.Row)
		}
	}
	return out, nil
}

// Scan walks the file row by row without materializing it, calling fn for
// each accepted row with its 1-based line index (header = line 0). fn returns
// false to stop the scan early.
func Scan(path string, fn func(lineIndex int, row types.RiskRecord) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	expected := fieldCount
	for i := 0; sc.Scan(); i++ {
		if i == 0 {
			expected = headerFieldCount(sc.Text())
			continue
		}
		outcome := ParseLine(sc.Text(), expected)
		if !outcome.Accepted {
			continue
		}
		if !fn(i, outcome.Row) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan dataset: %w", err)
	}
	return nil
}

func headerFieldCount(header string) int {
	return len(strings.Split(strings.TrimSpace(header), ","))
}
