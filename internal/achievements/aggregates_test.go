package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seawatts/nugget/internal/domain"
)

func at(day, hour, minute int) time.Time {
	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, day).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestBuildAggregatesCounts(t *testing.T) {
	acts := []domain.Activity{
		{Kind: domain.KindBottle, StartTime: at(0, 8, 0), AmountML: 120},
		{Kind: domain.KindNursing, StartTime: at(0, 12, 0)},
		{Kind: domain.KindWet, StartTime: at(0, 9, 0)},
		{Kind: domain.KindSleep, StartTime: at(0, 13, 0), DurationMin: 90},
		{Kind: domain.KindBottle, StartTime: at(1, 8, 0), AmountML: 100},
		{Kind: domain.KindBath, StartTime: at(1, 18, 0)},
	}
	agg := BuildAggregates(acts, time.Time{}, at(1, 20, 0))

	require.Equal(t, 6, agg.TotalActivities)
	require.Equal(t, 3, agg.FeedingCount)
	require.Equal(t, 1, agg.TotalDiapers)
	require.InDelta(t, 220, agg.TotalVolumeML, 1e-9)
	require.Equal(t, 2, agg.DaysTracked)
	require.Equal(t, 2, agg.DaysSinceFirst)
	require.Equal(t, 1, agg.KindCounts[domain.KindBath])
	require.Equal(t, -1, agg.BabyAgeDays)
}

func TestBuildAggregatesNightSleepSplit(t *testing.T) {
	acts := []domain.Activity{
		{Kind: domain.KindSleep, StartTime: at(0, 20, 0), DurationMin: 300}, // night
		{Kind: domain.KindSleep, StartTime: at(1, 2, 0), DurationMin: 120},  // night
		{Kind: domain.KindSleep, StartTime: at(1, 13, 0), DurationMin: 60},  // nap
		{Kind: domain.KindSleep, StartTime: at(1, 18, 0), DurationMin: 45},  // nap, before 19:00
	}
	agg := BuildAggregates(acts, time.Time{}, at(1, 22, 0))

	require.Equal(t, 2, agg.NightSleeps)
	require.Equal(t, 2, agg.DayNaps)
	require.Equal(t, 300, agg.LongestSleepMin)
	require.Equal(t, 525, agg.TotalSleepMin)
}

func TestBuildAggregatesQuickLogsRequireCreatedAt(t *testing.T) {
	start := at(0, 8, 0)
	acts := []domain.Activity{
		{Kind: domain.KindBottle, StartTime: start, CreatedAt: start.Add(2 * time.Minute)},
		{Kind: domain.KindBottle, StartTime: start, CreatedAt: start.Add(20 * time.Minute)},
		// No CreatedAt recorded: cannot be a quick log.
		{Kind: domain.KindBottle, StartTime: start},
		// Backdated entry: not quick either.
		{Kind: domain.KindBottle, StartTime: start, CreatedAt: start.Add(-time.Minute)},
	}
	agg := BuildAggregates(acts, time.Time{}, at(0, 12, 0))

	require.Equal(t, 1, agg.QuickLogs)
}

func TestBuildAggregatesNightFlags(t *testing.T) {
	acts := []domain.Activity{
		{Kind: domain.KindBottle, StartTime: at(0, 3, 0)},
		{Kind: domain.KindBottle, StartTime: at(0, 4, 30)},
		{Kind: domain.KindBottle, StartTime: at(1, 23, 0)},
		{Kind: domain.KindBottle, StartTime: at(2, 6, 30)},
	}
	agg := BuildAggregates(acts, time.Time{}, at(2, 12, 0))

	require.True(t, agg.HadNightWake)
	require.True(t, agg.HadEarlyMorning)
	// Day 0 has two pre-6AM wakes; day 1 has a late-night log.
	require.Equal(t, 2, agg.LateNightDays)
	require.Equal(t, 1, agg.WakefulNights)
}

func TestBuildAggregatesMultiKindHours(t *testing.T) {
	acts := []domain.Activity{
		{Kind: domain.KindBottle, StartTime: at(0, 8, 0)},
		{Kind: domain.KindWet, StartTime: at(0, 8, 20)},
		{Kind: domain.KindSleep, StartTime: at(0, 8, 40)},
		{Kind: domain.KindBottle, StartTime: at(0, 9, 0)},
		{Kind: domain.KindWet, StartTime: at(0, 9, 30)},
	}
	agg := BuildAggregates(acts, time.Time{}, at(0, 12, 0))

	require.Equal(t, 1, agg.MultiKindHours)
}

func TestBuildAggregatesBabyAge(t *testing.T) {
	birth := at(0, 14, 0)
	agg := BuildAggregates([]domain.Activity{
		{Kind: domain.KindBottle, StartTime: at(3, 8, 0)},
	}, birth, at(10, 9, 0))

	require.Equal(t, 10, agg.BabyAgeDays)
	require.Equal(t, 8, agg.DaysSinceFirst)
}

func TestBuildAggregatesBusiestDay(t *testing.T) {
	var acts []domain.Activity
	for i := 0; i < 4; i++ {
		acts = append(acts, domain.Activity{Kind: domain.KindBottle, StartTime: at(0, 8+i, 0)})
	}
	acts = append(acts,
		domain.Activity{Kind: domain.KindBottle, StartTime: at(1, 8, 0)},
		domain.Activity{Kind: domain.KindSleep, StartTime: at(1, 13, 0)},
	)
	agg := BuildAggregates(acts, time.Time{}, at(1, 20, 0))

	require.Equal(t, 4, agg.MostFeedingsInDay)
	require.Equal(t, 4, agg.MostActivitiesInDay)
}
