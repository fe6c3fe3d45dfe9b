package engine

import "whyEngine/domain"

// ScoreItem computes the three sub-scores and the weighted total for one
// item. Pure function of its inputs; no rounding, no randomness.
//
// For survivors of the hard filter, budget and time efficiency land in
// [0,1] because price <= budget and time <= limit. Invoked on a
// non-surviving item (diagnostics) they go negative; callers outside the
// filtered path must not assume [0,1]. Alignment is a linear blend of the
// two preference axes driven by the slider and is always in [0,1].
func ScoreItem(item domain.Item, pos int, c domain.Constraints, w WeightConfig) domain.ScoredItem {
	budgetEff := 1 - item.Price/c.Budget
	timeEff := 1 - item.TimeMinutes/c.TimeLimit
	alignment := item.ComfortScore*(1-c.ComfortVsExploration) +
		item.ExplorationScore*c.ComfortVsExploration

	return domain.ScoredItem{
		Item:       item,
		CatalogPos: pos,
		Breakdown: domain.ScoreBreakdown{
			BudgetEfficiency: budgetEff,
			TimeEfficiency:   timeEff,
			Alignment:        alignment,
		},
		Score: w.WBudget*budgetEff + w.WTime*timeEff + w.WAlignment*alignment,
	}
}

// ScoreSurvivors scores every survivor, preserving catalog positions.
func ScoreSurvivors(survivors []Survivor, c domain.Constraints, w WeightConfig) []domain.ScoredItem {
	scored := make([]domain.ScoredItem, 0, len(survivors))
	for _, s := range survivors {
		scored = append(scored, ScoreItem(s.Item, s.Pos, c, w))
	}
	return scored
}
