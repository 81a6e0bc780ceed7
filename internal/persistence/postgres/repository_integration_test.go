//go:build integration
// +build integration

package postgres

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/seawatts/nugget/internal/achievements"
	"github.com/seawatts/nugget/internal/domain"
)

func TestListActivitiesRoundTrip(t *testing.T) {
	ctx := context.Background()
	pool, cleanup := setupPostgres(t, ctx)
	defer cleanup()

	repo := NewRepository(pool)

	babyID := seedBaby(t, ctx, pool, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))
	start := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	insertActivity(t, ctx, pool, babyID, domain.KindBottle, start, `{"note":"morning"}`)
	insertActivity(t, ctx, pool, babyID, domain.KindDiaper, start.Add(time.Hour), `{"type":"wet"}`)

	activities, err := repo.ListActivities(ctx, babyID)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	require.True(t, activities[0].StartTime.Before(activities[1].StartTime))
	require.Equal(t, domain.KindWet, activities[1].DiaperStyle())

	baby, err := repo.GetBaby(ctx, babyID)
	require.NoError(t, err)
	require.NotNil(t, baby)
	require.False(t, baby.BirthDate.IsZero())
}

func TestGetBabyUnknownReturnsNil(t *testing.T) {
	ctx := context.Background()
	pool, cleanup := setupPostgres(t, ctx)
	defer cleanup()

	repo := NewRepository(pool)

	baby, err := repo.GetBaby(ctx, uuid.NewString())
	require.NoError(t, err)
	require.Nil(t, baby)
}

func TestUpsertAchievementsKeepsFirstUnlock(t *testing.T) {
	ctx := context.Background()
	pool, cleanup := setupPostgres(t, ctx)
	defer cleanup()

	repo := NewRepository(pool)
	babyID := seedBaby(t, ctx, pool, time.Time{})

	firstUnlock := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	result := achievements.Result{
		Definition: achievements.Definition{ID: "activities_10", Category: achievements.CategoryVolume},
		Earned:     true,
		Progress:   100,
		UnlockedAt: &firstUnlock,
	}
	require.NoError(t, repo.UpsertAchievements(ctx, babyID, []achievements.Result{result}))

	// A later recompute reports a newer unlock instant; the stored one wins.
	laterUnlock := firstUnlock.Add(48 * time.Hour)
	result.UnlockedAt = &laterUnlock
	require.NoError(t, repo.UpsertAchievements(ctx, babyID, []achievements.Result{result}))

	var stored time.Time
	err := pool.QueryRow(ctx,
		`SELECT unlocked_at FROM achievement_state WHERE baby_id = $1 AND achievement_id = $2`,
		babyID, "activities_10").Scan(&stored)
	require.NoError(t, err)
	require.True(t, stored.Equal(firstUnlock))
}

func TestUpsertDailyAchievementsOncePerDay(t *testing.T) {
	ctx := context.Background()
	pool, cleanup := setupPostgres(t, ctx)
	defer cleanup()

	repo := NewRepository(pool)
	babyID := seedBaby(t, ctx, pool, time.Time{})

	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	result := achievements.DailyResult{
		Definition:    achievements.Definition{ID: "daily_first_log", Category: achievements.CategoryDaily},
		Earned:        true,
		Progress:      100,
		CompletedDate: &day,
	}

	require.NoError(t, repo.UpsertDailyAchievements(ctx, babyID, []achievements.DailyResult{result}))
	require.NoError(t, repo.UpsertDailyAchievements(ctx, babyID, []achievements.DailyResult{result}))

	var count int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM daily_achievement_state WHERE baby_id = $1`, babyID).Scan(&count))
	require.Equal(t, 1, count)

	// Unearned results never touch the table.
	unearned := achievements.DailyResult{
		Definition: achievements.Definition{ID: "daily_10_activities", Category: achievements.CategoryDaily},
	}
	require.NoError(t, repo.UpsertDailyAchievements(ctx, babyID, []achievements.DailyResult{unearned}))
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM daily_achievement_state WHERE baby_id = $1`, babyID).Scan(&count))
	require.Equal(t, 1, count)
}

func seedBaby(t *testing.T, ctx context.Context, pool *pgxpool.Pool, birthDate time.Time) string {
	t.Helper()

	babyID := uuid.NewString()
	var birth *time.Time
	if !birthDate.IsZero() {
		birth = &birthDate
	}
	_, err := pool.Exec(ctx,
		`INSERT INTO babies (baby_id, name, birth_date) VALUES ($1, $2, $3)`,
		babyID, "Avery", birth)
	require.NoError(t, err)
	return babyID
}

func insertActivity(t *testing.T, ctx context.Context, pool *pgxpool.Pool, babyID string, kind domain.Kind, start time.Time, details string) {
	t.Helper()

	_, err := pool.Exec(ctx,
		`INSERT INTO activities (activity_id, baby_id, kind, start_time, details, created_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), babyID, kind, start, details, start.Add(time.Minute))
	require.NoError(t, err)
}

func setupPostgres(t *testing.T, ctx context.Context) (*pgxpool.Pool, func()) {
	t.Helper()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("nugget"),
		postgrescontainer.WithUsername("nugget"),
		postgrescontainer.WithPassword("nugget"),
	)
	require.NoError(t, err)

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, waitForDatabase(ctx, connStr))
	runMigrations(t, ctx, connStr)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
		_ = pg.Terminate(ctx)
	}
	return pool, cleanup
}

func runMigrations(t *testing.T, ctx context.Context, connStr string) {
	t.Helper()

	migrationsPath := resolvePath(t, "../../../db/postgres/migrations")
	files, err := filepath.Glob(filepath.Join(migrationsPath, "*.up.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	sort.Strings(files)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	defer pool.Close()

	for _, file := range files {
		content, readErr := os.ReadFile(file)
		require.NoErrorf(t, readErr, "read migration %s", file)
		_, execErr := pool.Exec(ctx, string(content))
		require.NoErrorf(t, execErr, "execute migration %s", file)
	}
}

func waitForDatabase(ctx context.Context, connStr string) error {
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(time.Second)
	}
}

func resolvePath(t *testing.T, rel string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), rel)
}
