package conditions

import "sort"

// Rank scores every entry and returns a fresh slice ordered by descending
// score. The sort is stable, so entries with equal scores keep their input
// order. An empty or nil input yields an empty result.
func Rank(entries []Entry) []RankedEntry {
	ranked := make([]RankedEntry, 0, len(entries))
	for _, e := range entries {
		ranked = append(ranked, RankedEntry{
			ID:      e.ID,
			Name:    e.Name,
			Reading: e.Reading,
			Score:   Score(e.Reading),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}
