package achievements

import (
	"time"

	"github.com/seawatts/nugget/internal/analytics"
	"github.com/seawatts/nugget/internal/domain"
)

// quickLogWindow is how soon after an activity happened it must be recorded
// to count as a quick log.
const quickLogWindow = 5 * time.Minute

// Aggregates bundles every scalar the catalog evaluates against. Built once
// per evaluation from the raw activity list; all catalog checks read these
// precomputed values instead of re-scanning the log.
type Aggregates struct {
	Now time.Time

	TotalActivities int
	FeedingCount    int
	TotalDiapers    int
	TotalVolumeML   float64

	DaysTracked    int
	DaysSinceFirst int

	Streaks    map[analytics.Behavior]analytics.Streak
	KindCounts map[domain.Kind]int

	NightSleeps       int
	DayNaps           int
	WeekendActivities int
	QuickLogs         int
	NotedActivities   int

	LongestSleepMin     int
	TotalSleepMin       int
	MostFeedingsInDay   int
	MostActivitiesInDay int
	MultiKindHours      int

	LateNightDays   int
	WakefulNights   int
	HadNightWake    bool
	HadEarlyMorning bool

	// BabyAgeDays is -1 when no birth date was supplied; the personal
	// milestone category is omitted entirely in that case.
	BabyAgeDays int
}

// BuildAggregates derives the aggregate bundle from the activity log.
// birthDate may be the zero time when unknown; now is the injected reference
// instant.
func BuildAggregates(activities []domain.Activity, birthDate, now time.Time) Aggregates {
	agg := Aggregates{
		Now:         now,
		Streaks:     analytics.ComputeStreaks(activities, now),
		KindCounts:  make(map[domain.Kind]int),
		BabyAgeDays: -1,
	}

	if !birthDate.IsZero() {
		agg.BabyAgeDays = wholeDaysBetween(birthDate, now)
	}

	hourKinds := make(map[string]analytics.KindSet)
	nightWakes := make(map[string]int)
	lateNights := make(map[string]struct{})

	var firstStart time.Time
	for _, a := range activities {
		agg.TotalActivities++
		agg.KindCounts[a.Kind]++
		agg.TotalVolumeML += a.AmountML

		if firstStart.IsZero() || a.StartTime.Before(firstStart) {
			firstStart = a.StartTime
		}

		if a.Kind.IsFeeding() {
			agg.FeedingCount++
		}
		if a.Kind.IsDiaper() {
			agg.TotalDiapers++
		}

		hour := a.StartTime.Hour()
		day := analytics.DayKey(a.StartTime)

		if a.Kind.IsSleep() {
			if hour >= 19 || hour < 6 {
				agg.NightSleeps++
			} else {
				agg.DayNaps++
			}
			agg.TotalSleepMin += a.DurationMin
			if a.DurationMin > agg.LongestSleepMin {
				agg.LongestSleepMin = a.DurationMin
			}
		}

		switch a.StartTime.Weekday() {
		case time.Saturday, time.Sunday:
			agg.WeekendActivities++
		}

		if !a.CreatedAt.IsZero() {
			if lag := a.CreatedAt.Sub(a.StartTime); lag >= 0 && lag <= quickLogWindow {
				agg.QuickLogs++
			}
		}
		if a.Notes != "" {
			agg.NotedActivities++
		}

		hourKey := a.StartTime.Format("2006-01-02T15")
		set, ok := hourKinds[hourKey]
		if !ok {
			set = make(analytics.KindSet)
			hourKinds[hourKey] = set
		}
		set[a.Kind] = struct{}{}

		if hour < 6 {
			agg.HadNightWake = true
			nightWakes[day]++
			lateNights[day] = struct{}{}
		}
		if hour >= 22 {
			lateNights[day] = struct{}{}
		}
		if hour >= 5 && hour < 7 {
			agg.HadEarlyMorning = true
		}
	}

	buckets := analytics.BucketActivities(activities)
	agg.DaysTracked = len(buckets)
	for _, dayActs := range buckets {
		feedings := 0
		for _, a := range dayActs {
			if a.Kind.IsFeeding() {
				feedings++
			}
		}
		if feedings > agg.MostFeedingsInDay {
			agg.MostFeedingsInDay = feedings
		}
		if len(dayActs) > agg.MostActivitiesInDay {
			agg.MostActivitiesInDay = len(dayActs)
		}
	}

	for _, set := range hourKinds {
		if len(set) >= 3 {
			agg.MultiKindHours++
		}
	}
	agg.LateNightDays = len(lateNights)
	for _, wakes := range nightWakes {
		if wakes >= 2 {
			agg.WakefulNights++
		}
	}

	if !firstStart.IsZero() {
		agg.DaysSinceFirst = wholeDaysBetween(firstStart, now) + 1
	}

	return agg
}

// wholeDaysBetween counts calendar days from a's day to b's day.
func wholeDaysBetween(a, b time.Time) int {
	start := analytics.StartOfDay(a)
	end := analytics.StartOfDay(b)
	return int(end.Sub(start).Hours() / 24)
}
