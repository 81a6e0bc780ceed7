package achievements

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func chainResults(earned int, progress float64) []Result {
	out := make([]Result, len(activityCountDefs))
	for i, d := range activityCountDefs {
		out[i] = Result{Definition: d}
		if i < earned {
			out[i].Earned = true
			out[i].Progress = 100
		}
	}
	if earned < len(out) {
		out[earned].Progress = progress
	}
	return out
}

func visibleIDs(results []Result) map[string]bool {
	out := make(map[string]bool, len(results))
	for _, r := range results {
		out[r.ID] = true
	}
	return out
}

func TestFilterShowsNextChainStep(t *testing.T) {
	got := visibleIDs(FilterForDisplay(chainResults(2, 40)))

	require.True(t, got["activities_10"])
	require.True(t, got["activities_25"])
	require.True(t, got["activities_50"])
	require.False(t, got["activities_100"])
}

func TestFilterNeverHidesEarned(t *testing.T) {
	for earned := 0; earned <= len(activityCountDefs); earned++ {
		got := visibleIDs(FilterForDisplay(chainResults(earned, 10)))
		for i := 0; i < earned; i++ {
			require.True(t, got[activityCountDefs[i].ID], "earned=%d step=%d", earned, i)
		}
	}
}

func TestFilterLookAheadNearChainStep(t *testing.T) {
	got := visibleIDs(FilterForDisplay(chainResults(2, 92)))

	// Step at 92% surfaces the step after it too.
	require.True(t, got["activities_50"])
	require.True(t, got["activities_100"])
	require.False(t, got["activities_250"])
}

func TestFilterNearCompletionOverride(t *testing.T) {
	results := chainResults(2, 20)
	// A later unearned step sits at 95% (stale ratcheted progress).
	results[5].Progress = 95

	got := visibleIDs(FilterForDisplay(results))
	require.True(t, got["activities_50"])
	require.True(t, got[activityCountDefs[5].ID])
}

func TestFilterStandaloneRules(t *testing.T) {
	results := []Result{
		{Definition: def("first_diaper_change", CategoryParent, RarityCommon, "n", "d", "i", 1)},
		{Definition: def("night_owl", CategorySpecial, RarityRare, "n", "d", "i", 1), Progress: 50},
		{Definition: def("weekend_warrior_50", CategorySpecial, RarityEpic, "n", "d", "i", 50)},
		{Definition: def("first_activity", CategoryFoundation, RarityCommon, "n", "d", "i", 1)},
		{Definition: def("longest_sleep_6h", CategoryRecords, RarityEpic, "n", "d", "i", 360), Progress: 30},
	}

	got := visibleIDs(FilterForDisplay(results))

	require.True(t, got["first_diaper_change"], "first_ prefix always visible")
	require.True(t, got["night_owl"], "special with progress visible")
	require.False(t, got["weekend_warrior_50"], "special without progress hidden")
	require.True(t, got["first_activity"], "foundation always visible")
	require.False(t, got["longest_sleep_6h"], "unearned record hidden")
}

func TestFilterPreservesInputOrder(t *testing.T) {
	in := chainResults(3, 50)
	out := FilterForDisplay(in)

	last := -1
	for _, r := range out {
		idx := chainIndex[r.ID].index
		require.Greater(t, idx, last)
		last = idx
	}
}

func TestSortForDisplayUnearnedFirst(t *testing.T) {
	in := []Result{
		{Definition: def("a", CategoryVolume, RarityCommon, "n", "d", "i", 100), Earned: true},
		{Definition: def("b", CategoryVolume, RarityCommon, "n", "d", "i", 50)},
		{Definition: def("c", CategoryVolume, RarityCommon, "n", "d", "i", 25), Earned: true},
		{Definition: def("d", CategoryVolume, RarityCommon, "n", "d", "i", 10)},
	}

	out := SortForDisplay(in)

	require.Equal(t, []string{"d", "b", "c", "a"}, []string{out[0].ID, out[1].ID, out[2].ID, out[3].ID})
	// Input untouched.
	require.Equal(t, "a", in[0].ID)
}
