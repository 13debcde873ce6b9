package aggregator

import (
	"catastro-insights-go/internal/dataset"
	"catastro-insights-go/internal/logger"
	"catastro-insights-go/internal/types"
)

// Statistics aggregates the dataset for the statistics view: filings per
// year, anomaly-type distribution, and the full per-department breakdown
// (unlike the dashboard, which keeps only the top 5). A read failure yields
// an empty payload.
func Statistics(path string) types.StatisticsData {
	log := logger.Component("aggregator.statistics")
	records, err := dataset.Load(path)
	if err != nil {
		log.WithError(err).Error("dataset read failed, serving empty statistics")
		return types.StatisticsData{
			Temporal:   []types.PeriodValue{},
			ByType:     []types.TypeCount{},
			Geographic: []types.NamedCount{},
		}
	}

	yearly := map[string]int{}
	typeCounts := map[string]int{}
	departments := map[string]int{}
	for _, r := range records {
		if r.FilingYear != "" {
			yearly[r.FilingYear]++
		}
		if r.AnomalyType != "" {
			typeCounts[NormalizeType(r.AnomalyType)]++
		}
		if r.Department != "" {
			departments[r.Department]++
		}
	}

	trend := yearlyTrend(yearly)
	temporal := make([]types.PeriodValue, 0, len(trend))
	for _, yc := range trend {
		temporal = append(temporal, types.PeriodValue{Period: yc.Year, Value: yc.Count})
	}

	return types.StatisticsData{
		Temporal:   temporal,
		ByType:     typeDistribution(typeCounts),
		Geographic: sortedCounts(departments, 0),
	}
}
