package domain

// Explanation is the prose produced for one recommendation. The engine
// guarantees the breakdown it hands over is complete; the generator only
// turns numbers into text and never feeds back into ranking.
type Explanation struct {
	ItemID          string `json:"id"`
	WhyRecommended  string `json:"why_recommended"`
	Tradeoffs       string `json:"tradeoffs"`
	WhyOthersLower  string `json:"why_others_lower"`
	DiscoveryReason string `json:"discovery_reason,omitempty"`
}
