package engine

import (
	"sort"
	"whyEngine/domain"
)

// Rank orders scored items by score descending. Ties break on catalog
// position (ascending), so re-running on the same input always yields the
// same sequence regardless of sort internals.
func Rank(scored []domain.ScoredItem) []domain.ScoredItem {
	ranked := make([]domain.ScoredItem, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].CatalogPos < ranked[j].CatalogPos
	})

	return ranked
}
