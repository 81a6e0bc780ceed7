package achievements

import (
	"math"
	"time"

	"github.com/seawatts/nugget/internal/analytics"
	"github.com/seawatts/nugget/internal/domain"
)

// dailyDefs is the small resettable checklist catalog. Unlike the main
// catalog these re-earn every calendar day; the persistence layer dedupes
// per day via CompletedDate.
var dailyDefs = []Definition{
	def("daily_first_log", CategoryDaily, RarityCommon, "Day Starter", "Log the first activity of the day", "🌅", 1),
	def("daily_3_activities", CategoryDaily, RarityCommon, "Hat Trick", "Log 3 activities today", "🎩", 3),
	def("daily_5_activities", CategoryDaily, RarityCommon, "High Five", "Log 5 activities today", "🖐️", 5),
	def("daily_10_activities", CategoryDaily, RarityRare, "Perfect Ten", "Log 10 activities today", "🔟", 10),
	def("daily_perfect_day", CategoryDaily, RarityRare, "Perfect Day", "Feeding, sleep, and diaper all logged today", "✨", 1),
	def("daily_early_bird", CategoryDaily, RarityCommon, "Dawn Patrol", "Log an activity before 7 AM", "🌄", 1),
	def("daily_night_owl", CategoryDaily, RarityCommon, "Late Shift", "Log an activity at or after 10 PM", "🌜", 1),
	def("daily_variety", CategoryDaily, RarityRare, "Well Rounded", "Log 3 different activity types today", "🎨", 3),
}

// DailyDefinitions exposes the checklist catalog for integrity tests and
// persistence seeding.
func DailyDefinitions() []Definition {
	out := make([]Definition, len(dailyDefs))
	copy(out, dailyDefs)
	return out
}

// EvaluateDaily runs the checklist catalog against today's bucket only
// (local midnight of now up to now). Stateless like the main engine.
func EvaluateDaily(activities []domain.Activity, now time.Time) []DailyResult {
	todayKey := analytics.DayKey(now)

	count := 0
	kinds := make(analytics.KindSet)
	earlyBird, nightOwl := false, false
	for _, a := range activities {
		if analytics.DayKey(a.StartTime) != todayKey {
			continue
		}
		count++
		kinds[a.Kind] = struct{}{}
		if a.StartTime.Hour() < 7 {
			earlyBird = true
		}
		if a.StartTime.Hour() >= 22 {
			nightOwl = true
		}
	}

	completed := analytics.StartOfDay(now)
	results := []DailyResult{
		dailyProgress(dailyDefs[0], float64(count), completed),
		dailyProgress(dailyDefs[1], float64(count), completed),
		dailyProgress(dailyDefs[2], float64(count), completed),
		dailyProgress(dailyDefs[3], float64(count), completed),
		dailyFlag(dailyDefs[4], analytics.HasPerfectDay(kinds), completed),
		dailyFlag(dailyDefs[5], earlyBird, completed),
		dailyFlag(dailyDefs[6], nightOwl, completed),
		dailyProgress(dailyDefs[7], float64(len(kinds)), completed),
	}
	return results
}

func dailyProgress(d Definition, value float64, completed time.Time) DailyResult {
	r := DailyResult{
		Definition: d,
		Earned:     value >= d.Target,
		Progress:   math.Min(100, value/d.Target*100),
	}
	if r.Earned {
		r.Progress = 100
		ts := completed
		r.CompletedDate = &ts
	}
	return r
}

func dailyFlag(d Definition, met bool, completed time.Time) DailyResult {
	r := DailyResult{Definition: d}
	if met {
		r.Earned = true
		r.Progress = 100
		ts := completed
		r.CompletedDate = &ts
	}
	return r
}
