package aggregator

import (
	"path/filepath"
	"reflect"
	"testing"

	"catastro-insights-go/internal/types"
)

func TestStatisticsAggregates(t *testing.T) {
	path := writeCSV(t,
		row("ANTIOQUIA", "MEDELLIN", "2022", "1", "-0.08", "sobrevaloracion"),
		row("ANTIOQUIA", "MEDELLIN", "2024", "1", "-0.02", "sobrevaloracion"),
		row("TOLIMA", "IBAGUE", "2024", "1", "-0.001", "flipping"),
	)
	s := Statistics(path)

	wantTemporal := []types.PeriodValue{{Period: "2022", Value: 1}, {Period: "2024", Value: 2}}
	if !reflect.DeepEqual(s.Temporal, wantTemporal) {
		t.Errorf("Temporal: got %+v, want %+v", s.Temporal, wantTemporal)
	}
	if len(s.ByType) != 2 || s.ByType[0].Name != "Sobrevaloracion" || s.ByType[0].Count != 2 {
		t.Errorf("ByType: got %+v", s.ByType)
	}
	// statistics keeps the full department breakdown, not just the top 5
	wantGeo := []types.NamedCount{{Name: "ANTIOQUIA", Count: 2}, {Name: "TOLIMA", Count: 1}}
	if !reflect.DeepEqual(s.Geographic, wantGeo) {
		t.Errorf("Geographic: got %+v, want %+v", s.Geographic, wantGeo)
	}
}

func TestStatisticsUnreadableFile(t *testing.T) {
	s := Statistics(filepath.Join(t.TempDir(), "missing.csv"))
	if s.Temporal == nil || s.ByType == nil || s.Geographic == nil {
		t.Error("empty payload must keep slices non-nil")
	}
	if len(s.Temporal) != 0 || len(s.ByType) != 0 || len(s.Geographic) != 0 {
		t.Errorf("expected empty statistics, got %+v", s)
	}
}
