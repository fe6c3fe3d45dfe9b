package engine

import (
	"math"
	"whyEngine/domain"
)

// InjectDiscovery appends a bounded share of "best of the rest" survivors
// after the primary top-K list, tagged as discovery. The primary ranking
// is never reordered or interleaved.
//
// The target count is round(ratio * survivors), clamped to the candidate
// pool. Selection is deterministic: walk the pool in its score order
// taking at most one item per category, then fill any remaining slots in
// score order ignoring category. Categorical diversity wins over raw
// score within the discovery slice.
func InjectDiscovery(ranked []domain.ScoredItem, topK int, ratio float64) []domain.ScoredItem {
	if topK > len(ranked) {
		topK = len(ranked)
	}
	primary := ranked[:topK]
	pool := ranked[topK:]

	target := int(math.Round(ratio * float64(len(ranked))))
	if target > len(pool) {
		target = len(pool)
	}

	final := make([]domain.ScoredItem, 0, topK+target)
	final = append(final, primary...)
	if target <= 0 {
		return final
	}

	taken := make([]bool, len(pool))
	seenCategory := make(map[string]bool, target)

	// pass 1: one per category, in score order
	for i, s := range pool {
		if len(final)-topK == target {
			return final
		}
		if seenCategory[s.Item.Category] {
			continue
		}
		seenCategory[s.Item.Category] = true
		taken[i] = true
		s.IsDiscovery = true
		final = append(final, s)
	}

	// pass 2: fill remaining slots by score
	for i, s := range pool {
		if len(final)-topK == target {
			break
		}
		if taken[i] {
			continue
		}
		s.IsDiscovery = true
		final = append(final, s)
	}

	return final
}
