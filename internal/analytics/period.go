package analytics

import (
	"fmt"
	"math"
	"time"
)

// Period names a stat-card date window. The string literals are part of the
// client contract and must not change.
type Period string

const (
	PeriodThisWeek    Period = "this_week"
	PeriodLastWeek    Period = "last_week"
	PeriodLast2Weeks  Period = "last_2_weeks"
	PeriodLastMonth   Period = "last_month"
	PeriodLast3Months Period = "last_3_months"
	PeriodLast6Months Period = "last_6_months"
)

// Pivot names a rate normalization for a raw period total.
type Pivot string

const (
	PivotTotal    Pivot = "total"
	PivotPerDay   Pivot = "per_day"
	PivotPerWeek  Pivot = "per_week"
	PivotPerMonth Pivot = "per_month"
	PivotPerHour  Pivot = "per_hour"
)

// DateRange is a concrete [Start, End] window resolved from a named period.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days returns the number of calendar days the range spans, rounded up.
func (r DateRange) Days() float64 {
	return math.Ceil(r.End.Sub(r.Start).Hours() / 24)
}

// ResolvePeriod maps a named period onto concrete dates relative to now.
// Weeks are ISO weeks starting Monday; the rolling periods end at now.
func ResolvePeriod(p Period, now time.Time) (DateRange, error) {
	switch p {
	case PeriodThisWeek:
		return DateRange{Start: startOfISOWeek(now), End: now}, nil
	case PeriodLastWeek:
		monday := startOfISOWeek(now)
		return DateRange{Start: monday.AddDate(0, 0, -7), End: monday.Add(-time.Second)}, nil
	case PeriodLast2Weeks:
		return DateRange{Start: now.AddDate(0, 0, -14), End: now}, nil
	case PeriodLastMonth:
		return DateRange{Start: now.AddDate(0, -1, 0), End: now}, nil
	case PeriodLast3Months:
		return DateRange{Start: now.AddDate(0, -3, 0), End: now}, nil
	case PeriodLast6Months:
		return DateRange{Start: now.AddDate(0, -6, 0), End: now}, nil
	default:
		return DateRange{}, fmt.Errorf("unknown period %q", p)
	}
}

// NormalizeRate converts a raw total over the period into the requested
// rate. A denominator that resolves to zero or less falls back to the raw
// value so callers never see NaN or Inf.
func NormalizeRate(value float64, pivot Pivot, p Period, now time.Time) float64 {
	rng, err := ResolvePeriod(p, now)
	if err != nil {
		return value
	}

	days := rng.Days()
	var denom float64
	switch pivot {
	case PivotPerDay:
		denom = days
	case PivotPerWeek:
		denom = days / 7
	case PivotPerMonth:
		denom = days / 30
	case PivotPerHour:
		denom = days * 24
	default:
		return value
	}
	if denom <= 0 {
		return value
	}
	return value / denom
}

// startOfISOWeek returns local midnight of the Monday beginning now's week.
func startOfISOWeek(now time.Time) time.Time {
	day := StartOfDay(now)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
