package explain

import (
	"fmt"
	"math"

	"whyEngine/domain"
)

// TemplateExplanations is the always-available fallback generator. The
// text references the actual constraint values and the item's own
// breakdown, so it stays truthful without any model call.
func TemplateExplanations(c domain.Constraints, items []domain.ScoredItem) []domain.Explanation {
	explanations := make([]domain.Explanation, 0, len(items))

	for i, item := range items {
		budgetPct := math.Round(item.Breakdown.BudgetEfficiency * 100)
		timePct := math.Round(item.Breakdown.TimeEfficiency * 100)

		e := domain.Explanation{ItemID: item.Item.ItemID}

		if item.IsDiscovery {
			e.WhyRecommended = fmt.Sprintf(
				"Discovery pick: %s fits your limits but points in a different direction (exploration score %.2f).",
				item.Item.Name, item.Item.ExplorationScore,
			)
			e.Tradeoffs = fmt.Sprintf(
				"It may sit outside your usual preference, but it stays within your %.0f budget and %.0f minutes.",
				c.Budget, c.TimeLimit,
			)
			e.DiscoveryReason = "Shown to broaden your options. It satisfies your constraints but explores a different direction."
		} else {
			e.WhyRecommended = fmt.Sprintf(
				"Scored %.2f: keeps %.0f%% of your budget and uses %.0f of %.0f minutes.",
				item.Score, budgetPct, item.Item.TimeMinutes, c.TimeLimit,
			)
			e.Tradeoffs = fmt.Sprintf(
				"Costs %.0f (%.0f%% of budget left) and takes %.0f minutes (%.0f%% of your time left).",
				item.Item.Price, budgetPct, item.Item.TimeMinutes, timePct,
			)
		}

		switch {
		case i == 0:
			e.WhyOthersLower = "Top pick with the best balance across your constraints."
		case i < 3:
			e.WhyOthersLower = "Strong option, slightly less optimal on one dimension."
		default:
			e.WhyOthersLower = "Meets your constraints but scored lower on the weighted combination."
		}

		explanations = append(explanations, e)
	}

	return explanations
}
