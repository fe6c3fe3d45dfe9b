package domain

// ScoreBreakdown is the per-item decomposition of the total score. It is
// returned to the caller and handed to the explanation layer as-is.
type ScoreBreakdown struct {
	BudgetEfficiency float64 `json:"budget_efficiency"`
	TimeEfficiency   float64 `json:"time_efficiency"`
	Alignment        float64 `json:"alignment"`
}

// ScoredItem is a per-request derived view over a catalog Item. It is
// created fresh for every recommend call and never persisted. CatalogPos
// is the item's index in the input slice and breaks score ties so that
// identical inputs always produce identical output order.
type ScoredItem struct {
	Item        Item           `json:"item"`
	CatalogPos  int            `json:"-"`
	Breakdown   ScoreBreakdown `json:"score_breakdown"`
	Score       float64        `json:"score"`
	IsDiscovery bool           `json:"is_discovery"`
}

// Recommendation is the response-facing view of a scored item, enriched
// with explanation prose. The numeric fields are computed by the engine;
// the text fields are filled afterwards by the explanation layer and may
// be empty without affecting ranking.
type Recommendation struct {
	ItemID           string         `json:"id"`
	Name             string         `json:"name"`
	Category         string         `json:"category"`
	Description      string         `json:"description"`
	Tags             []string       `json:"tags"`
	Price            float64        `json:"price"`
	TimeMinutes      float64        `json:"time_minutes"`
	ComfortScore     float64        `json:"comfort_score"`
	ExplorationScore float64        `json:"exploration_score"`
	Score            float64        `json:"score"`
	ScoreBreakdown   ScoreBreakdown `json:"score_breakdown"`
	IsDiscovery      bool           `json:"is_discovery"`
	WhyRecommended   string         `json:"why_recommended"`
	Tradeoffs        string         `json:"tradeoffs"`
	WhyOthersLower   string         `json:"why_others_lower"`
	DiscoveryReason  string         `json:"discovery_reason,omitempty"`
}

// RecommendationResult is the engine's complete numeric output for one
// request. FilteredOut counts items removed by the hard constraints; it
// is reported for transparency, not as an error.
type RecommendationResult struct {
	Recommendations []ScoredItem `json:"recommendations"`
	TotalItems      int          `json:"total_items"`
	FilteredOut     int          `json:"filtered_out"`
}
