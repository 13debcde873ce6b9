// Package severity buckets anomaly scores into the three risk levels used
// across the dashboard, map and statistics views. Scores come from an
// isolation-forest style detector, so more negative means more anomalous.
package severity

import "strconv"

type Level string

const (
	High   Level = "alta"
	Medium Level = "media"
	Low    Level = "baja"
)

const (
	highThreshold   = -0.05
	mediumThreshold = -0.01
)

// Classify maps a score to a level. Boundary values fall into the less
// severe bucket: exactly -0.05 is media, exactly -0.01 is baja.
func Classify(score float64) Level {
	switch {
	case score < highThreshold:
		return High
	case score < mediumThreshold:
		return Medium
	default:
		return Low
	}
}

// ClassifyText parses the raw CSV score field and classifies it. Unparseable
// text is coerced to 0, which lands in baja; rows are never rejected for a
// bad score.
func ClassifyText(raw string) Level {
	return Classify(ParseScore(raw))
}

// ParseScore coerces the raw score field to a float, defaulting to 0.
func ParseScore(raw string) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}

// Label returns the capitalized display name used in chart legends.
func (l Level) Label() string {
	switch l {
	case High:
		return "Alta"
	case Medium:
		return "Media"
	default:
		return "Baja"
	}
}
