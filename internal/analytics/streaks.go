package analytics

import (
	"sort"
	"time"

	"github.com/seawatts/nugget/internal/domain"
)

// Behavior names a tracked streak behavior.
type Behavior string

const (
	BehaviorFeeding    Behavior = "feeding"
	BehaviorDiaper     Behavior = "diaper"
	BehaviorSleep      Behavior = "sleep"
	BehaviorPerfectDay Behavior = "perfect_day"
	BehaviorTracking   Behavior = "tracking"
)

// Behaviors lists every tracked behavior in a stable order.
var Behaviors = []Behavior{
	BehaviorFeeding,
	BehaviorDiaper,
	BehaviorSleep,
	BehaviorPerfectDay,
	BehaviorTracking,
}

// Streak is a current/longest consecutive-day pair for one behavior.
// Longest >= Current holds for every input.
type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// DayPredicate decides whether a day's kind set satisfies a behavior.
type DayPredicate func(KindSet) bool

// HasFeeding is satisfied by any feeding-group activity.
func HasFeeding(s KindSet) bool {
	for k := range s {
		if k.IsFeeding() {
			return true
		}
	}
	return false
}

// HasDiaper is satisfied by any diaper-group activity.
func HasDiaper(s KindSet) bool {
	for k := range s {
		if k.IsDiaper() {
			return true
		}
	}
	return false
}

// HasSleep is satisfied by a logged sleep session.
func HasSleep(s KindSet) bool {
	return s.Has(domain.KindSleep)
}

// HasPerfectDay requires feeding, diaper, and sleep all on the same day.
func HasPerfectDay(s KindSet) bool {
	return HasFeeding(s) && HasDiaper(s) && HasSleep(s)
}

// HasAny is satisfied by any logged activity at all.
func HasAny(s KindSet) bool {
	return len(s) > 0
}

func predicateFor(b Behavior) DayPredicate {
	switch b {
	case BehaviorFeeding:
		return HasFeeding
	case BehaviorDiaper:
		return HasDiaper
	case BehaviorSleep:
		return HasSleep
	case BehaviorPerfectDay:
		return HasPerfectDay
	default:
		return HasAny
	}
}

// CurrentStreak walks backward day by day from now's calendar day, counting
// consecutive days whose bucket satisfies pred. A day with no bucket is an
// empty set, so an empty today immediately breaks the walk and yields 0:
// today's streak is use-it-or-lose-it.
func CurrentStreak(buckets map[string]KindSet, pred DayPredicate, now time.Time) int {
	if len(buckets) == 0 {
		return 0
	}

	earliest := ""
	for key := range buckets {
		if earliest == "" || key < earliest {
			earliest = key
		}
	}

	count := 0
	for day := StartOfDay(now); ; day = day.AddDate(0, 0, -1) {
		key := DayKey(day)
		if key < earliest {
			break
		}
		if !pred(buckets[key]) {
			break
		}
		count++
	}
	return count
}

// LongestStreak scans the entire bucketed history once, in ascending day
// order, and returns the maximum consecutive-day run satisfying pred.
func LongestStreak(buckets map[string]KindSet, pred DayPredicate) int {
	days := make([]time.Time, 0, len(buckets))
	for key := range buckets {
		if !pred(buckets[key]) {
			continue
		}
		day, err := time.Parse("2006-01-02", key)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// ComputeStreak pairs the anchored current walk with the full-history scan.
func ComputeStreak(buckets map[string]KindSet, pred DayPredicate, now time.Time) Streak {
	return Streak{
		Current: CurrentStreak(buckets, pred, now),
		Longest: LongestStreak(buckets, pred),
	}
}

// ComputeStreaks evaluates every tracked behavior over one shared bucketing
// pass.
func ComputeStreaks(activities []domain.Activity, now time.Time) map[Behavior]Streak {
	buckets := BucketKinds(activities)
	out := make(map[Behavior]Streak, len(Behaviors))
	for _, b := range Behaviors {
		out[b] = ComputeStreak(buckets, predicateFor(b), now)
	}
	return out
}
