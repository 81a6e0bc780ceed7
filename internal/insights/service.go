// Package insights orchestrates the pure analytics engines over the
// persistence boundary: it fetches a baby's activity log, hands it to the
// stateless engines, and pushes achievement state back for upserting.
package insights

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/seawatts/nugget/internal/achievements"
	"github.com/seawatts/nugget/internal/analytics"
	"github.com/seawatts/nugget/internal/domain"
	"github.com/seawatts/nugget/internal/observability"
)

// ErrBabyNotFound is returned when the baby ID resolves to no profile.
var ErrBabyNotFound = errors.New("baby not found")

// Repository captures the persistence operations the service needs. The
// activity log arrives already fetched; the engines never query anything
// themselves.
type Repository interface {
	GetBaby(ctx context.Context, babyID string) (*domain.Baby, error)
	ListActivities(ctx context.Context, babyID string) ([]domain.Activity, error)
	ListBabyIDs(ctx context.Context) ([]string, error)
	UpsertAchievements(ctx context.Context, babyID string, results []achievements.Result) error
	UpsertDailyAchievements(ctx context.Context, babyID string, results []achievements.DailyResult) error
}

// Service exposes the analytics surface. The clock is injected so every
// "today"-anchored computation is testable without touching the wall clock.
type Service struct {
	repo  Repository
	clock clockwork.Clock
}

// NewService constructs a Service.
func NewService(repo Repository, clock clockwork.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

// PeriodStats is the pivoted stat-card payload for one named period.
type PeriodStats struct {
	Period        analytics.Period `json:"period"`
	Pivot         analytics.Pivot  `json:"pivot"`
	Start         time.Time        `json:"start"`
	End           time.Time        `json:"end"`
	ActivityCount float64          `json:"activity_count"`
	VolumeML      float64          `json:"volume_ml"`
	DiaperCount   float64          `json:"diaper_count"`
	DiaperStyles  map[string]int   `json:"diaper_styles"`
}

// AchievementReport pairs the curated visible set with catalog-wide totals.
type AchievementReport struct {
	Visible []achievements.Result `json:"visible"`
	Earned  int                   `json:"earned"`
	Total   int                   `json:"total"`
}

// Streaks computes the current/longest pair for every tracked behavior.
func (s *Service) Streaks(ctx context.Context, babyID string) (map[analytics.Behavior]analytics.Streak, error) {
	activities, err := s.activities(ctx, babyID)
	if err != nil {
		return nil, err
	}
	return analytics.ComputeStreaks(activities, s.clock.Now()), nil
}

// Trend buckets the log into the range's fixed-length series.
func (s *Service) Trend(ctx context.Context, babyID string, kind domain.Kind, rng analytics.Range) ([]analytics.TrendPoint, error) {
	activities, err := s.activities(ctx, babyID)
	if err != nil {
		return nil, err
	}
	return analytics.BuildTrend(activities, kind, rng, s.clock.Now())
}

// Heatmap builds the 7x24 frequency grid over the requested lookback range.
func (s *Service) Heatmap(ctx context.Context, babyID string, rng analytics.Range) ([]analytics.HeatmapCell, error) {
	activities, err := s.activities(ctx, babyID)
	if err != nil {
		return nil, err
	}
	window, err := analytics.RangeWindow(rng, s.clock.Now())
	if err != nil {
		return nil, err
	}
	inWindow := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if window.Contains(a.StartTime) {
			inWindow = append(inWindow, a)
		}
	}
	return analytics.BuildHeatmap(inWindow), nil
}

// Patterns detects peak hours, consistency, and the longest gap.
func (s *Service) Patterns(ctx context.Context, babyID string) (analytics.PatternSummary, error) {
	activities, err := s.activities(ctx, babyID)
	if err != nil {
		return analytics.PatternSummary{}, err
	}
	return analytics.DetectPatterns(activities), nil
}

// Stats resolves a named period and pivots the raw totals into rates.
func (s *Service) Stats(ctx context.Context, babyID string, period analytics.Period, pivot analytics.Pivot) (PeriodStats, error) {
	activities, err := s.activities(ctx, babyID)
	if err != nil {
		return PeriodStats{}, err
	}

	now := s.clock.Now()
	rng, err := analytics.ResolvePeriod(period, now)
	if err != nil {
		return PeriodStats{}, err
	}

	stats := PeriodStats{
		Period:       period,
		Pivot:        pivot,
		Start:        rng.Start,
		End:          rng.End,
		DiaperStyles: map[string]int{},
	}

	var count, diapers int
	var volume float64
	for _, a := range activities {
		if !rng.Contains(a.StartTime) {
			continue
		}
		count++
		volume += a.AmountML
		if a.Kind.IsDiaper() {
			diapers++
			if style := a.DiaperStyle(); style != "" {
				stats.DiaperStyles[string(style)]++
			}
		}
	}

	stats.ActivityCount = analytics.NormalizeRate(float64(count), pivot, period, now)
	stats.VolumeML = analytics.NormalizeRate(volume, pivot, period, now)
	stats.DiaperCount = analytics.NormalizeRate(float64(diapers), pivot, period, now)
	return stats, nil
}

// Achievements evaluates the full catalog and returns the curated visible
// set plus earned totals.
func (s *Service) Achievements(ctx context.Context, babyID string) (AchievementReport, error) {
	results, err := s.evaluateCatalog(ctx, babyID)
	if err != nil {
		return AchievementReport{}, err
	}

	report := AchievementReport{Total: len(results)}
	for _, r := range results {
		if r.Earned {
			report.Earned++
		}
	}
	report.Visible = achievements.SortForDisplay(achievements.FilterForDisplay(results))
	return report, nil
}

// DailyAchievements evaluates the same-day checklist catalog.
func (s *Service) DailyAchievements(ctx context.Context, babyID string) ([]achievements.DailyResult, error) {
	activities, err := s.activities(ctx, babyID)
	if err != nil {
		return nil, err
	}
	return achievements.EvaluateDaily(activities, s.clock.Now()), nil
}

// Recompute re-evaluates both catalogs for one baby and upserts the results.
// The persistence layer keeps the first-unlocked timestamps; this call is
// safe to repeat.
func (s *Service) Recompute(ctx context.Context, babyID string) error {
	results, err := s.evaluateCatalog(ctx, babyID)
	if err != nil {
		return err
	}
	if err := s.repo.UpsertAchievements(ctx, babyID, results); err != nil {
		return err
	}

	daily, err := s.DailyAchievements(ctx, babyID)
	if err != nil {
		return err
	}
	return s.repo.UpsertDailyAchievements(ctx, babyID, daily)
}

// RecomputeAll runs Recompute for every known baby, collecting errors so one
// bad profile cannot starve the rest.
func (s *Service) RecomputeAll(ctx context.Context) error {
	ids, err := s.repo.ListBabyIDs(ctx)
	if err != nil {
		return err
	}
	var errs []error
	for _, id := range ids {
		if err := s.Recompute(ctx, id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Service) evaluateCatalog(ctx context.Context, babyID string) ([]achievements.Result, error) {
	baby, err := s.repo.GetBaby(ctx, babyID)
	if err != nil {
		return nil, err
	}
	if baby == nil {
		return nil, ErrBabyNotFound
	}
	activities, err := s.repo.ListActivities(ctx, babyID)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	agg := achievements.BuildAggregates(activities, baby.BirthDate, s.clock.Now())
	results := achievements.Evaluate(agg)
	observability.ObserveEvaluation(time.Since(started))

	earnedByCategory := make(map[string]int)
	for _, r := range results {
		if r.Earned {
			earnedByCategory[string(r.Category)]++
		}
	}
	for category, earned := range earnedByCategory {
		observability.RecordEarned(category, earned)
	}
	return results, nil
}

func (s *Service) activities(ctx context.Context, babyID string) ([]domain.Activity, error) {
	baby, err := s.repo.GetBaby(ctx, babyID)
	if err != nil {
		return nil, err
	}
	if baby == nil {
		return nil, ErrBabyNotFound
	}
	return s.repo.ListActivities(ctx, babyID)
}
