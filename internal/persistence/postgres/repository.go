// Package postgres provides pgx-backed persistence for the insights service.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seawatts/nugget/internal/achievements"
	"github.com/seawatts/nugget/internal/domain"
)

// Repository reads the activity log and persists achievement unlock state.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetBaby fetches a baby profile, or nil when unknown.
func (r *Repository) GetBaby(ctx context.Context, babyID string) (*domain.Baby, error) {
	const query = `SELECT baby_id, name, birth_date FROM babies WHERE baby_id = $1`

	row := r.pool.QueryRow(ctx, query, babyID)

	var baby domain.Baby
	var birthDate *time.Time
	if err := row.Scan(&baby.ID, &baby.Name, &birthDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if birthDate != nil {
		baby.BirthDate = *birthDate
	}
	return &baby, nil
}

// ListBabyIDs returns every known baby, for the full-recompute sweep.
func (r *Repository) ListBabyIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT baby_id FROM babies ORDER BY baby_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListActivities returns a baby's full activity log in start-time order.
// The engines tolerate unordered input; ordering here just keeps output
// deterministic for equal inputs.
func (r *Repository) ListActivities(ctx context.Context, babyID string) ([]domain.Activity, error) {
	const query = `SELECT activity_id, baby_id, kind, start_time, end_time, duration_min, amount_ml, notes, details, created_at
        FROM activities WHERE baby_id = $1 ORDER BY start_time, activity_id`

	rows, err := r.pool.Query(ctx, query, babyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func scanActivity(row pgx.Row) (domain.Activity, error) {
	var (
		a           domain.Activity
		endTime     *time.Time
		durationMin *int
		amountML    *float64
		notes       *string
		details     []byte
		createdAt   *time.Time
	)
	err := row.Scan(&a.ID, &a.BabyID, &a.Kind, &a.StartTime, &endTime, &durationMin, &amountML, &notes, &details, &createdAt)
	if err != nil {
		return domain.Activity{}, err
	}

	if endTime != nil {
		a.EndTime = *endTime
	}
	if durationMin != nil {
		a.DurationMin = *durationMin
	}
	if amountML != nil {
		a.AmountML = *amountML
	}
	if notes != nil {
		a.Notes = *notes
	}
	if createdAt != nil {
		a.CreatedAt = *createdAt
	}
	if len(details) > 0 {
		// Malformed payloads classify as "no details", never as an error.
		var parsed map[string]string
		if err := json.Unmarshal(details, &parsed); err == nil {
			a.Details = parsed
		}
	}
	return a, nil
}

// UpsertAchievements writes catalog evaluation results. unlocked_at is set
// on first earn and never overwritten afterwards, so re-evaluation cannot
// move an unlock timestamp even when a streak-based aggregate regresses.
func (r *Repository) UpsertAchievements(ctx context.Context, babyID string, results []achievements.Result) error {
	const upsert = `INSERT INTO achievement_state (baby_id, achievement_id, category, earned, progress, unlocked_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (baby_id, achievement_id) DO UPDATE SET
            earned = EXCLUDED.earned,
            progress = EXCLUDED.progress,
            unlocked_at = COALESCE(achievement_state.unlocked_at, EXCLUDED.unlocked_at),
            updated_at = EXCLUDED.updated_at`

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, res := range results {
		batch.Queue(upsert, babyID, res.ID, res.Category, res.Earned, res.Progress, res.UnlockedAt, now)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

// UpsertDailyAchievements records earned daily badges keyed by completion
// day; the conflict target guarantees at most one award per badge per day
// while leaving later days free to earn it again.
func (r *Repository) UpsertDailyAchievements(ctx context.Context, babyID string, results []achievements.DailyResult) error {
	const insert = `INSERT INTO daily_achievement_state (baby_id, achievement_id, completed_date, completed_at)
        VALUES ($1,$2,$3,$4)
        ON CONFLICT (baby_id, achievement_id, completed_date) DO NOTHING`

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, res := range results {
		if !res.Earned || res.CompletedDate == nil {
			continue
		}
		batch.Queue(insert, babyID, res.ID, *res.CompletedDate, now)
	}
	if batch.Len() == 0 {
		return nil
	}
	return r.pool.SendBatch(ctx, batch).Close()
}
