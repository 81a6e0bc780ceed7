package analytics

import (
	"fmt"
	"time"

	"github.com/seawatts/nugget/internal/domain"
)

// Range names a trend/heatmap lookback window. The literals are part of the
// client contract.
type Range string

const (
	Range24Hours Range = "24h"
	Range7Days   Range = "7d"
	Range2Weeks  Range = "2w"
	Range1Month  Range = "1m"
	Range3Months Range = "3m"
	Range6Months Range = "6m"
)

// TrendPoint is one fixed-width bucket of a trend series.
type TrendPoint struct {
	Date         time.Time `json:"date"`
	Count        int       `json:"count"`
	TotalML      float64   `json:"total_ml"`
	TotalMinutes int       `json:"total_minutes"`
}

// RangePointCount returns the fixed series length for a range. Charting code
// relies on BuildTrend always producing exactly this many points.
func RangePointCount(r Range) (int, error) {
	switch r {
	case Range24Hours:
		return 24, nil
	case Range7Days:
		return 7, nil
	case Range2Weeks:
		return 14, nil
	case Range1Month:
		return 30, nil
	case Range3Months:
		return 12, nil
	case Range6Months:
		return 26, nil
	default:
		return 0, fmt.Errorf("unknown range %q", r)
	}
}

// RangeWindow resolves the overall [start, end] window a range covers,
// ending at now.
func RangeWindow(r Range, now time.Time) (DateRange, error) {
	points, err := RangePointCount(r)
	if err != nil {
		return DateRange{}, err
	}
	width := bucketWidth(r)
	start := bucketStart(r, now).Add(-time.Duration(points-1) * width)
	return DateRange{Start: start, End: now}, nil
}

// BuildTrend buckets activities into the range's fixed number of points,
// newest bucket last. kind filters the series ("" aggregates every kind).
// Empty input still yields the full all-zero series.
func BuildTrend(activities []domain.Activity, kind domain.Kind, r Range, now time.Time) ([]TrendPoint, error) {
	count, err := RangePointCount(r)
	if err != nil {
		return nil, err
	}

	width := bucketWidth(r)
	first := bucketStart(r, now).Add(-time.Duration(count-1) * width)

	points := make([]TrendPoint, count)
	for i := range points {
		points[i].Date = first.Add(time.Duration(i) * width)
	}

	for _, a := range activities {
		if kind != "" && a.Kind != kind {
			continue
		}
		if a.StartTime.Before(first) || a.StartTime.After(now) {
			continue
		}
		i := int(a.StartTime.Sub(first) / width)
		if i < 0 || i >= count {
			continue
		}
		points[i].Count++
		points[i].TotalML += a.AmountML
		points[i].TotalMinutes += a.DurationMin
	}
	return points, nil
}

func bucketWidth(r Range) time.Duration {
	switch r {
	case Range24Hours:
		return time.Hour
	case Range3Months, Range6Months:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// bucketStart aligns now onto the newest bucket's start.
func bucketStart(r Range, now time.Time) time.Time {
	if r == Range24Hours {
		return now.Truncate(time.Hour)
	}
	return StartOfDay(now)
}
