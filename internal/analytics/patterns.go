package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/seawatts/nugget/internal/domain"
)

// HeatmapCell is one (day-of-week, hour) bucket of the 7x24 frequency grid.
type HeatmapCell struct {
	DayOfWeek int `json:"day_of_week"`
	Hour      int `json:"hour"`
	Count     int `json:"count"`
}

// PeakHour is one of the busiest hours of day across the whole log.
type PeakHour struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// GapWindow is the longest stretch between two consecutive activities.
type GapWindow struct {
	Hours int       `json:"hours"`
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
}

// PatternSummary bundles the detected timing patterns.
type PatternSummary struct {
	PeakHours        []PeakHour `json:"peak_hours"`
	ConsistencyScore float64    `json:"consistency_score"`
	LongestGap       GapWindow  `json:"longest_gap"`
}

// BuildHeatmap counts activity onsets per (day-of-week, hour) cell. An
// activity longer than an hour also increments each subsequent whole hour it
// spans, wrapping the day of week past midnight, so the grid approximates
// occupancy rather than just onset. The result always holds exactly 168
// cells ordered day-major.
func BuildHeatmap(activities []domain.Activity) []HeatmapCell {
	cells := make([]HeatmapCell, 7*24)
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			cells[day*24+hour] = HeatmapCell{DayOfWeek: day, Hour: hour}
		}
	}

	for _, a := range activities {
		day := int(a.StartTime.Weekday())
		hour := a.StartTime.Hour()
		cells[day*24+hour].Count++

		if a.DurationMin <= 60 {
			continue
		}
		spill := (a.DurationMin - 1) / 60
		for i := 1; i <= spill; i++ {
			h := hour + i
			d := (day + h/24) % 7
			cells[d*24+h%24].Count++
		}
	}
	return cells
}

// DetectPatterns derives the top-3 peak hours, a 0-100 consistency score,
// and the longest inter-activity gap. The consistency score is a linear
// spread heuristic over hour-of-day (no wrap at midnight): a tighter routine
// scores higher.
func DetectPatterns(activities []domain.Activity) PatternSummary {
	if len(activities) == 0 {
		return PatternSummary{PeakHours: []PeakHour{}, ConsistencyScore: 0, LongestGap: GapWindow{}}
	}

	var hourCounts [24]int
	for _, a := range activities {
		hourCounts[a.StartTime.Hour()]++
	}

	peaks := make([]PeakHour, 0, 24)
	for hour, count := range hourCounts {
		if count > 0 {
			peaks = append(peaks, PeakHour{Hour: hour, Count: count})
		}
	}
	sort.Slice(peaks, func(i, j int) bool {
		if peaks[i].Count != peaks[j].Count {
			return peaks[i].Count > peaks[j].Count
		}
		return peaks[i].Hour < peaks[j].Hour
	})
	if len(peaks) > 3 {
		peaks = peaks[:3]
	}

	return PatternSummary{
		PeakHours:        peaks,
		ConsistencyScore: consistencyScore(activities),
		LongestGap:       longestGap(activities),
	}
}

func consistencyScore(activities []domain.Activity) float64 {
	n := float64(len(activities))
	var sum float64
	for _, a := range activities {
		sum += float64(a.StartTime.Hour())
	}
	mean := sum / n

	var variance float64
	for _, a := range activities {
		d := float64(a.StartTime.Hour()) - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / n)

	return 100 - math.Min(100, stddev/12*100)
}

func longestGap(activities []domain.Activity) GapWindow {
	if len(activities) < 2 {
		return GapWindow{}
	}

	sorted := make([]domain.Activity, len(activities))
	copy(sorted, activities)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	var gap GapWindow
	for i := 0; i < len(sorted)-1; i++ {
		from := sorted[i].StartTime
		if !sorted[i].EndTime.IsZero() {
			from = sorted[i].EndTime
		}
		to := sorted[i+1].StartTime
		if !to.After(from) {
			continue
		}
		if hours := int(to.Sub(from).Hours()); hours > gap.Hours || gap.From.IsZero() {
			gap = GapWindow{Hours: hours, From: from, To: to}
		}
	}
	return gap
}
