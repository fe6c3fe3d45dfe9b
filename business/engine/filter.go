package engine

import "whyEngine/domain"

// Survivor pairs a catalog item with its original position in the input
// slice. The position is the ranking tie-break, so it is captured here,
// before any reordering happens.
type Survivor struct {
	Item domain.Item
	Pos  int
}

// ApplyHardConstraints partitions items into survivors and a filtered-out
// count. Both limits are inclusive: an item priced exactly at the budget
// passes. There is no partial credit; this is a hard boundary, not a
// score. An empty input yields empty survivors and zero filtered.
func ApplyHardConstraints(items []domain.Item, c domain.Constraints) ([]Survivor, int) {
	survivors := make([]Survivor, 0, len(items))
	for i, item := range items {
		if !survives(item, c) {
			continue
		}
		survivors = append(survivors, Survivor{Item: item, Pos: i})
	}
	return survivors, len(items) - len(survivors)
}

func survives(item domain.Item, c domain.Constraints) bool {
	return item.Price <= c.Budget && item.TimeMinutes <= c.TimeLimit
}
