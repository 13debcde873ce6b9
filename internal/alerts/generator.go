package alerts

import (
	"fmt"

	"catastro-insights-go/internal/types"
)

// Share of high-severity rows above which the dashboard surfaces a card.
const highShareThreshold = 0.35

// Generate derives an alert card from the severity tally. Returns nil when
// no pattern is strong enough to surface.
func Generate(high, medium, low int, topDepartment string) *types.AlertCard {
	total := high + medium + low
	if total == 0 {
		return nil
	}
	share := float64(high) / float64(total)
	if share < highShareThreshold {
		return nil
	}
	insight := fmt.Sprintf("Severidad alta en %.0f%% de los registros", share*100)
	if topDepartment != "" {
		insight = fmt.Sprintf("%s, concentrada en %s", insight, topDepartment)
	}
	return &types.AlertCard{
		Insight: insight,
		Action:  "Priorizar revisión de los folios de severidad alta",
		Impact:  "Reducir el tiempo de respuesta ante posibles fraudes",
	}
}
