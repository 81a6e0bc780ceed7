// Package analytics holds the pure computation engines behind the insights
// endpoints: day bucketing, streaks, period resolution, pattern detection,
// and trend aggregation. Every function here is stateless and side-effect
// free; callers inject the reference instant wherever "now" matters.
package analytics

import (
	"time"

	"github.com/seawatts/nugget/internal/domain"
)

// KindSet is the set of activity kinds logged on a single calendar day.
type KindSet map[domain.Kind]struct{}

// Has reports membership.
func (s KindSet) Has(k domain.Kind) bool {
	_, ok := s[k]
	return ok
}

// DayKey formats t as a sortable local-calendar-day key. Bucketing keys off
// the activity's start time only; a session spanning midnight still buckets
// entirely on its start day.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfDay truncates t to local midnight, preserving its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BucketKinds groups activities into day buckets keyed by DayKey, recording
// which kinds occurred on each day. Insertion order never affects the result.
func BucketKinds(activities []domain.Activity) map[string]KindSet {
	buckets := make(map[string]KindSet)
	for _, a := range activities {
		key := DayKey(a.StartTime)
		set, ok := buckets[key]
		if !ok {
			set = make(KindSet)
			buckets[key] = set
		}
		set[a.Kind] = struct{}{}
	}
	return buckets
}

// BucketActivities groups the full activity records by calendar day.
func BucketActivities(activities []domain.Activity) map[string][]domain.Activity {
	buckets := make(map[string][]domain.Activity)
	for _, a := range activities {
		key := DayKey(a.StartTime)
		buckets[key] = append(buckets[key], a)
	}
	return buckets
}
