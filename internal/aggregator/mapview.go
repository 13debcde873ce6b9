package aggregator

import (
	"fmt"
	"strings"

	"catastro-insights-go/internal/dataset"
	"catastro-insights-go/internal/geodata"
	"catastro-insights-go/internal/logger"
	"catastro-insights-go/internal/severity"
	"catastro-insights-go/internal/types"
)

// DefaultMaxMapPoints caps the payload handed to the map frontend.
const DefaultMaxMapPoints = 3000

// AllDepartments disables the department filter.
const AllDepartments = "todos"

// MapEngine streams the dataset into map markers. The resolver and point cap
// are injectable for tests.
type MapEngine struct {
	resolver  *geodata.Resolver
	maxPoints int
}

func NewMapEngine(resolver *geodata.Resolver, maxPoints int) *MapEngine {
	if resolver == nil {
		resolver = geodata.New()
	}
	if maxPoints <= 0 {
		maxPoints = DefaultMaxMapPoints
	}
	return &MapEngine{resolver: resolver, maxPoints: maxPoints}
}

// Aggregate scans the file in order, applying an optional case-insensitive
// department filter pushed into the scan. Stats and points accumulate in a
// single loop with a single exit condition, so Stats.Total always equals
// len(Points) — including when the cap stops the scan early.
func (e *MapEngine) Aggregate(path, department string) types.MapData {
	log := logger.Component("aggregator.map")

	target := geodata.Normalize(department)
	filtering := target != "" && target != geodata.Normalize(AllDepartments)

	points := make([]types.MapPoint, 0, e.maxPoints)
	var stats types.MapStats

	err := dataset.Scan(path, func(lineIndex int, r types.RiskRecord) bool {
		dept := strings.TrimSpace(r.Department)
		if dept == "" {
			dept = "DESCONOCIDO"
		}
		if filtering && geodata.Normalize(dept) != target {
			return true
		}

		muni := strings.TrimSpace(r.Municipality)
		if muni == "" {
			muni = "DESCONOCIDO"
		}
		year := r.FilingYear
		if year == "" {
			year = "2024"
		}
		anomalyType := r.AnomalyType
		if anomalyType == "" {
			anomalyType = "desconocido"
		}

		score := severity.ParseScore(r.AnomalyScore)
		level := severity.Classify(score)
		switch level {
		case severity.High:
			stats.High++
		case severity.Medium:
			stats.Medium++
		default:
			stats.Low++
		}
		stats.Total++

		lat, lng := e.resolver.Resolve(muni, dept)
		points = append(points, types.MapPoint{
			ID:           fmt.Sprintf("p-%d", lineIndex),
			Lat:          lat,
			Lng:          lng,
			Municipality: muni,
			Department:   dept,
			Severity:     string(level),
			Type:         strings.ToLower(strings.ReplaceAll(anomalyType, "_", " ")),
			Score:        score,
			Year:         year,
		})
		return len(points) < e.maxPoints
	})
	if err != nil {
		log.WithError(err).Error("dataset scan failed, serving empty map")
		return types.MapData{Points: []types.MapPoint{}, Stats: types.MapStats{}}
	}

	log.WithField("points", len(points)).WithField("departamento", target).Debug("map aggregated")
	return types.MapData{Points: points, Stats: stats}
}
