// Package aggregator computes the serving shapes for the dashboard, map and
// statistics views. Every entry point re-reads the flat file; there is no
// cache or incremental state between calls.
package aggregator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"catastro-insights-go/internal/alerts"
	"catastro-insights-go/internal/dataset"
	"catastro-insights-go/internal/logger"
	"catastro-insights-go/internal/severity"
	"catastro-insights-go/internal/types"
)

const recentSampleSize = 50

// Placeholder until review timestamps exist in the extract.
const meanReviewTime = "3.2 días"

// Dashboard reads the dataset and aggregates it for the executive dashboard.
// A file that cannot be read yields a complete, zeroed payload instead of an
// error; callers never have to handle a failure from this layer.
func Dashboard(path string) types.DashboardData {
	log := logger.Component("aggregator.dashboard")
	records, err := dataset.Load(path)
	if err != nil {
		log.WithError(err).Error("dataset read failed, serving empty dashboard")
		return emptyDashboard()
	}
	data := BuildDashboard(records)
	log.WithField("records", len(records)).Debug("dashboard aggregated")
	return data
}

// BuildDashboard aggregates an already-parsed row set.
func BuildDashboard(records []types.RiskRecord) types.DashboardData {
	yearly := map[string]int{}
	cities := map[string]int{}
	departments := map[string]int{}
	typeCounts := map[string]int{}

	var high, medium, low int
	topCity := "Desconocida"
	topCityCount := 0
	anomalies := 0

	for _, r := range records {
		if r.FilingYear != "" {
			yearly[r.FilingYear]++
		}
		switch severity.ClassifyText(r.AnomalyScore) {
		case severity.High:
			high++
		case severity.Medium:
			medium++
		default:
			low++
		}
		if r.Municipality != "" {
			cities[r.Municipality]++
			// first city to reach the running maximum wins; later ties do
			// not displace it
			if cities[r.Municipality] > topCityCount {
				topCityCount = cities[r.Municipality]
				topCity = r.Municipality
			}
		}
		if r.Department != "" {
			departments[r.Department]++
		}
		if r.AnomalyType != "" {
			typeCounts[NormalizeType(r.AnomalyType)]++
		}
		if r.IsAnomaly == "1" {
			anomalies++
		}
	}

	total := len(records)
	rate := "0%"
	if total > 0 {
		rate = fmt.Sprintf("%.2f%%", float64(anomalies)/float64(total)*100)
	}

	sev := []types.NamedCount{
		{Name: severity.High.Label(), Count: high},
		{Name: severity.Medium.Label(), Count: medium},
		{Name: severity.Low.Label(), Count: low},
	}
	topDepartments := sortedCounts(departments, 5)

	return types.DashboardData{
		YearlyTrend:      yearlyTrend(yearly),
		Severity:         sev,
		Anomalies:        recentSample(records),
		TopCity:          topCity,
		GeoDistribution:  topDepartments,
		TypeDistribution: typeDistribution(typeCounts),
		KPIs: types.KPIBlock{
			TotalProperties: fmt.Sprintf("%.1fK", float64(total)/1000),
			TotalAnomalies:  strconv.Itoa(anomalies),
			AnomalyRate:     rate,
			MeanReviewTime:  meanReviewTime,
		},
		Alert: alerts.Generate(high, medium, low, firstName(topDepartments)),
	}
}

// NormalizeType turns a snake_case category label into display form:
// underscores become spaces, first letter upper, rest lower.
func NormalizeType(t string) string {
	t = strings.ToLower(strings.ReplaceAll(t, "_", " "))
	if t == "" {
		return t
	}
	return strings.ToUpper(t[:1]) + t[1:]
}

func yearlyTrend(counts map[string]int) []types.YearCount {
	out := make([]types.YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, types.YearCount{Year: year, Count: n})
	}
	// 4-digit fixed-width years, so a string sort is chronological
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// sortedCounts flattens a tally map descending by count, name ascending on
// ties so repeated calls over the same file are byte-identical.
func sortedCounts(counts map[string]int, limit int) []types.NamedCount {
	out := make([]types.NamedCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, types.NamedCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func typeDistribution(counts map[string]int) []types.TypeCount {
	out := make([]types.TypeCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, types.TypeCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// recentSample returns the last rows in file order, newest first, mapped to
// table display records.
func recentSample(records []types.RiskRecord) []types.AnomalyRecord {
	start := len(records) - recentSampleSize
	if start < 0 {
		start = 0
	}
	tail := records[start:]
	out := make([]types.AnomalyRecord, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		r := tail[i]
		value, _ := strconv.ParseFloat(r.ConstantValue, 64)
		out = append(out, types.AnomalyRecord{
			ID:           fmt.Sprintf("A-%s-%d", r.FilingYear, len(out)),
			City:         r.Municipality,
			Municipality: r.Municipality,
			Department:   r.Department,
			Severity:     string(severity.ClassifyText(r.AnomalyScore)),
			Type:         strings.ToLower(strings.ReplaceAll(r.AnomalyType, "_", " ")),
			Date:         r.FilingYear + "-01-01", // filing year only; no real transaction date in the extract
			Value:        value,
			ReviewStatus: "pendiente",
		})
	}
	return out
}

func firstName(counts []types.NamedCount) string {
	if len(counts) == 0 {
		return ""
	}
	return counts[0].Name
}

func emptyDashboard() types.DashboardData {
	return types.DashboardData{
		YearlyTrend:      []types.YearCount{},
		Severity:         []types.NamedCount{},
		Anomalies:        []types.AnomalyRecord{},
		TopCity:          "N/A",
		GeoDistribution:  []types.NamedCount{},
		TypeDistribution: []types.TypeCount{},
		KPIs: types.KPIBlock{
			TotalProperties: "0",
			TotalAnomalies:  "0",
			AnomalyRate:     "0%",
			MeanReviewTime:  "0",
		},
	}
}
