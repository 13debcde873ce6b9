package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"catastro-insights-go/internal/types"
)

const header = "VALOR_CONSTANTE_2024,DEPARTAMENTO,MUNICIPIO,COD_NATUJUR,YEAR_RADICA,NUM_ANOTACION,Dinámica_Inmobiliaria,ES_ANOMALIA,SCORE_ANOMALIA,TIPO_ANOMALIA"

func writeFixture(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tablero_riesgos.csv")
	content := header
	for _, l := range lines {
		content += "\n" + l
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadParsesRows(t *testing.T) {
	path := writeFixture(t,
		"120000000,ANTIOQUIA,MEDELLIN,125,2024,3,0.8,1,-0.08,sobrevaloracion",
		"98000000,CUNDINAMARCA,BOGOTA,100,2023,1,0.5,0,-0.002,valor_infimo",
	)
	rows, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	r := rows[0]
	if r.Department != "ANTIOQUIA" || r.Municipality != "MEDELLIN" {
		t.Errorf("place fields: got %q/%q", r.Department, r.Municipality)
	}
	if r.FilingYear != "2024" || r.AnomalyScore != "-0.08" || r.AnomalyType != "sobrevaloracion" {
		t.Errorf("unexpected row: %+v", r)
	}
	if rows[1].IsAnomaly != "0" {
		t.Errorf("IsAnomaly: got %q, want 0", rows[1].IsAnomaly)
	}
}

func TestLoadDropsShortRows(t *testing.T) {
	path := writeFixture(t,
		"120000000,ANTIOQUIA,MEDELLIN,125,2024,3,0.8,1,-0.08,sobrevaloracion",
		"truncated,line,with,five,fields",
		"",
		"   ",
	)
	rows, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows: got %d, want 1 (short/empty lines dropped)", len(rows))
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeFixture(t)
	rows, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows: got %d, want 0", len(rows))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

// An embedded comma shifts every following column. This is the documented
// behavior of the unquoted extract format, not something the parser repairs.
func TestEmbeddedCommaShiftsColumns(t *testing.T) {
	out := ParseLine(`120000000,ANTIOQUIA,MEDELLIN,125,2024,3,0.8,1,-0.08,"trafico,juridico"`, 10)
	if !out.Accepted {
		t.Fatal("row with extra fields should still be accepted")
	}
	if out.Row.AnomalyType != `"trafico` {
		t.Errorf("AnomalyType: got %q, want the truncated first fragment", out.Row.AnomalyType)
	}
}

func TestParseLineOutcomes(t *testing.T) {
	if out := ParseLine("", 10); out.Accepted || out.Reason != DropEmpty {
		t.Errorf("empty line: %+v", out)
	}
	if out := ParseLine("a,b,c", 10); out.Accepted || out.Reason != DropShortRow {
		t.Errorf("short line: %+v", out)
	}
}

func TestScanEarlyStop(t *testing.T) {
	path := writeFixture(t,
		"1,ANTIOQUIA,MEDELLIN,125,2024,3,0.8,1,-0.08,sobrevaloracion",
		"2,ANTIOQUIA,MEDELLIN,125,2024,3,0.8,1,-0.08,sobrevaloracion",
		"3,ANTIOQUIA,MEDELLIN,125,2024,3,0.8,1,-0.08,sobrevaloracion",
	)
	var seen []int
	err := Scan(path, func(i int, _ types.RiskRecord) bool {
		seen = append(seen, i)
		return len(seen) < 2
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("line indices: got %v, want [1 2]", seen)
	}
}
