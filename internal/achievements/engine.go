package achievements

import (
	"math"
	"time"

	"github.com/seawatts/nugget/internal/analytics"
	"github.com/seawatts/nugget/internal/domain"
)

// Evaluate runs the whole catalog against the aggregate bundle. Pure and
// stateless: identical inputs produce identical output, which the callers
// rely on for caching. The personal category is omitted entirely when no
// birth date is known; absence is a valid output, not an error.
func Evaluate(agg Aggregates) []Result {
	out := make([]Result, 0, 160)
	out = append(out, evalFoundation(agg)...)
	out = append(out, evalVolume(agg)...)
	out = append(out, evalStreaks(agg)...)
	out = append(out, evalActivityKinds(agg)...)
	out = append(out, evalEfficiency(agg)...)
	out = append(out, evalRecords(agg)...)
	out = append(out, evalTime(agg)...)
	out = append(out, evalSpecial(agg)...)
	out = append(out, evalPersonal(agg)...)
	out = append(out, evalParent(agg)...)
	return out
}

func evalFoundation(agg Aggregates) []Result {
	return []Result{
		progressResult(foundationDefs[0], float64(agg.TotalActivities), agg.Now),
		progressResult(foundationDefs[1], float64(agg.FeedingCount), agg.Now),
		progressResult(foundationDefs[2], float64(agg.KindCounts[domain.KindSleep]), agg.Now),
		progressResult(foundationDefs[3], float64(agg.TotalDiapers), agg.Now),
		progressResult(foundationDefs[4], float64(agg.DaysSinceFirst), agg.Now),
		progressResult(foundationDefs[5], float64(agg.DaysSinceFirst), agg.Now),
	}
}

func evalVolume(agg Aggregates) []Result {
	out := staircase(activityCountDefs, float64(agg.TotalActivities), agg.Now)
	out = append(out, staircase(volumeDefs, agg.TotalVolumeML, agg.Now)...)
	out = append(out, staircase(diaperCountDefs, float64(agg.TotalDiapers), agg.Now)...)
	return out
}

func evalStreaks(agg Aggregates) []Result {
	out := staircase(feedingStreakDefs, float64(agg.Streaks[analytics.BehaviorFeeding].Current), agg.Now)
	out = append(out, staircase(diaperStreakDefs, float64(agg.Streaks[analytics.BehaviorDiaper].Current), agg.Now)...)
	out = append(out, staircase(sleepStreakDefs, float64(agg.Streaks[analytics.BehaviorSleep].Current), agg.Now)...)
	out = append(out, staircase(perfectStreakDefs, float64(agg.Streaks[analytics.BehaviorPerfectDay].Current), agg.Now)...)
	return out
}

func evalActivityKinds(agg Aggregates) []Result {
	ladders := []struct {
		defs []Definition
		kind domain.Kind
	}{
		{bathDefs, domain.KindBath},
		{vitaminDDefs, domain.KindVitaminD},
		{strollerWalkDefs, domain.KindStrollerWalk},
		{tummyTimeDefs, domain.KindTummyTime},
		{solidsDefs, domain.KindSolids},
		{pumpingDefs, domain.KindPumping},
		{doctorVisitDefs, domain.KindDoctorVisit},
		{nailTrimmingDefs, domain.KindNailTrimming},
		{contrastTimeDefs, domain.KindContrastTime},
	}
	var out []Result
	for _, l := range ladders {
		out = append(out, staircase(l.defs, float64(agg.KindCounts[l.kind]), agg.Now)...)
	}
	return out
}

func evalEfficiency(agg Aggregates) []Result {
	out := staircase(nightSleepDefs, float64(agg.NightSleeps), agg.Now)
	out = append(out, staircase(dayNapDefs, float64(agg.DayNaps), agg.Now)...)
	out = append(out, staircase(quickLogDefs, float64(agg.QuickLogs), agg.Now)...)
	out = append(out, staircase(notedDefs, float64(agg.NotedActivities), agg.Now)...)
	return out
}

func evalRecords(agg Aggregates) []Result {
	return []Result{
		progressResult(recordDefs[0], float64(agg.LongestSleepMin), agg.Now),
		progressResult(recordDefs[1], float64(agg.MostFeedingsInDay), agg.Now),
		progressResult(recordDefs[2], float64(agg.MostActivitiesInDay), agg.Now),
		progressResult(recordDefs[3], float64(agg.TotalSleepMin)/60, agg.Now),
	}
}

func evalTime(agg Aggregates) []Result {
	out := staircase(trackingStreakDefs, float64(agg.Streaks[analytics.BehaviorTracking].Current), agg.Now)
	for _, d := range daysTrackedDefs {
		out = append(out, flagResult(d, float64(agg.DaysTracked) >= d.Target, agg.Now))
	}
	return out
}

func evalSpecial(agg Aggregates) []Result {
	return []Result{
		flagResult(specialDefs[0], agg.HadNightWake, agg.Now),
		flagResult(specialDefs[1], agg.HadEarlyMorning, agg.Now),
		progressResult(specialDefs[2], float64(agg.WeekendActivities), agg.Now),
		progressResult(specialDefs[3], float64(agg.MultiKindHours), agg.Now),
	}
}

func evalPersonal(agg Aggregates) []Result {
	if agg.BabyAgeDays < 0 {
		return nil
	}
	value := agg.BabyAgeDays
	if agg.DaysTracked < value {
		value = agg.DaysTracked
	}
	return staircase(personalDefs, float64(value), agg.Now)
}

func evalParent(agg Aggregates) []Result {
	out := staircase(parentDayDefs, float64(agg.DaysSinceFirst), agg.Now)
	out = append(out, staircase(lateNightDefs, float64(agg.LateNightDays), agg.Now)...)
	out = append(out, staircase(wakefulNightDefs, float64(agg.WakefulNights), agg.Now)...)
	out = append(out,
		flagResult(parentFirstDefs[0], agg.TotalDiapers >= 1, agg.Now),
		flagResult(parentFirstDefs[1], agg.FeedingCount >= 1, agg.Now),
		flagResult(parentFirstDefs[2], agg.HadNightWake, agg.Now),
		flagResult(parentFirstDefs[3], agg.DaysSinceFirst >= 7, agg.Now),
		flagResult(parentFirstDefs[4], agg.DaysSinceFirst >= 30, agg.Now),
	)
	return out
}

// staircase evaluates an ordered ladder of definitions against one value.
func staircase(defs []Definition, value float64, now time.Time) []Result {
	out := make([]Result, len(defs))
	for i, d := range defs {
		out[i] = progressResult(d, value, now)
	}
	return out
}

// progressResult builds a target-scaled result. Thresholds are inclusive.
func progressResult(d Definition, value float64, now time.Time) Result {
	r := Result{
		Definition: d,
		Earned:     value >= d.Target,
		Progress:   math.Min(100, value/d.Target*100),
	}
	if r.Earned {
		r.Progress = 100
		ts := now
		r.UnlockedAt = &ts
	}
	return r
}

// flagResult builds a boolean-gated result: progress is 0 or 100, nothing
// in between.
func flagResult(d Definition, met bool, now time.Time) Result {
	r := Result{Definition: d}
	if met {
		r.Earned = true
		r.Progress = 100
		ts := now
		r.UnlockedAt = &ts
	}
	return r
}
