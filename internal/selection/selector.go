// Package selection orders scored candidates by a policy sort key and
// truncates each group to a bounded count. Sorting is stable so that
// equal-key candidates keep their original encounter order, which makes
// selection reproducible run to run.
package selection

import (
	"sort"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
	"github.com/jachren-f4/pageinstead-curator/internal/scoring"
)

// TopK returns the first k highlights after a stable sort by key. The
// input slice is not modified. k <= 0 means no truncation.
func TopK(highlights []entities.Highlight, key scoring.SortKey, k int) []entities.Highlight {
	sorted := make([]entities.Highlight, len(highlights))
	copy(sorted, highlights)

	sort.SliceStable(sorted, less(sorted, key))

	if k > 0 && len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}

func less(hs []entities.Highlight, key scoring.SortKey) func(i, j int) bool {
	switch key {
	case scoring.SortScoreDescThenShort:
		return func(i, j int) bool {
			if hs[i].Score != hs[j].Score {
				return hs[i].Score > hs[j].Score
			}
			return hs[i].Length < hs[j].Length
		}
	case scoring.SortShortThenScoreDesc:
		return func(i, j int) bool {
			if hs[i].Length != hs[j].Length {
				return hs[i].Length < hs[j].Length
			}
			return hs[i].Score > hs[j].Score
		}
	default: // SortScoreDesc
		return func(i, j int) bool {
			return hs[i].Score > hs[j].Score
		}
	}
}
