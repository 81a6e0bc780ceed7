package achievements

import (
	"sort"
	"strings"
)

// Look-ahead and near-completion thresholds for chain disclosure.
const (
	lookAheadProgress      = 85
	nearCompletionProgress = 90
)

// FilterForDisplay curates the small visible subset from the full catalog
// evaluation. Earned achievements are never hidden. For each chain the next
// unearned step is surfaced, plus one extra step when the current one is
// nearly done; standalone achievements show when earned, when they are a
// "first_" unlock, when they belong to foundation, or (special category)
// once they have any progress at all.
func FilterForDisplay(results []Result) []Result {
	visible := make(map[string]bool, len(results))

	byChain := make(map[string][]Result)
	for _, r := range results {
		if slot, ok := chainIndex[r.ID]; ok {
			byChain[slot.chain] = append(byChain[slot.chain], r)
			continue
		}
		if standaloneVisible(r) {
			visible[r.ID] = true
		}
	}

	for _, members := range byChain {
		sort.Slice(members, func(i, j int) bool {
			return chainIndex[members[i].ID].index < chainIndex[members[j].ID].index
		})

		highestEarned := -1
		for i, m := range members {
			if m.Earned {
				visible[m.ID] = true
				highestEarned = i
			}
			if !m.Earned && m.Progress >= nearCompletionProgress {
				visible[m.ID] = true
			}
		}

		next := highestEarned + 1
		if next < len(members) {
			visible[members[next].ID] = true
			if members[next].Progress >= lookAheadProgress && next+1 < len(members) {
				visible[members[next+1].ID] = true
			}
		}
	}

	out := make([]Result, 0, len(visible))
	for _, r := range results {
		if visible[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

func standaloneVisible(r Result) bool {
	if r.Earned || r.Category == CategoryFoundation {
		return true
	}
	if strings.HasPrefix(r.ID, "first_") {
		return true
	}
	return r.Category == CategorySpecial && r.Progress > 0
}

// SortForDisplay orders the visible set for rendering: unearned first so the
// next goals lead, earned history last, ties broken by ascending target.
func SortForDisplay(results []Result) []Result {
	out := make([]Result, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Earned != out[j].Earned {
			return !out[i].Earned
		}
		return out[i].Target < out[j].Target
	})
	return out
}
