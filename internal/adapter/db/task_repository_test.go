package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"schedshare/internal/config"
	"schedshare/internal/core/domain"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := ConnectSQLite(filepath.Join(t.TempDir(), "schedshare.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite))
	// Migrations must be re-runnable on every start.
	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite))
	return db
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestTaskRepository_CreateThenList(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(openTestDB(t))

	start := time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 3, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.CreateTask(ctx, domain.TaskFields{
		Title:     "Standup",
		StartTime: start,
		EndTime:   &end,
		Status:    domain.TaskStatusPending,
	}, "owner-a"))

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	got := tasks[0]
	require.NotEmpty(t, got.ID)
	require.Equal(t, "Standup", got.Title)
	require.Nil(t, got.Description)
	require.True(t, start.Equal(got.StartTime), "start %s", got.StartTime)
	require.NotNil(t, got.EndTime)
	require.True(t, end.Equal(*got.EndTime), "end %s", got.EndTime)
	require.Equal(t, domain.TaskStatusPending, got.Status)
	require.Equal(t, "owner-a", got.CreatedBy)
}

func TestTaskRepository_ListOrdersByStartTime(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(openTestDB(t))

	base := time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{3 * time.Hour, -24 * time.Hour, time.Hour} {
		require.NoError(t, repo.CreateTask(ctx, domain.TaskFields{
			Title:       "task",
			Description: strPtr(offset.String()),
			StartTime:   base.Add(offset),
		}, "owner-a"))
	}

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, "-24h0m0s", *tasks[0].Description)
	require.Equal(t, "1h0m0s", *tasks[1].Description)
	require.Equal(t, "3h0m0s", *tasks[2].Description)
}

func TestTaskRepository_UpdateRequiresOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(openTestDB(t))

	start := time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateTask(ctx, domain.TaskFields{Title: "Owned by B", StartTime: start}, "owner-b"))
	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	id := tasks[0].ID

	require.NoError(t, repo.UpdateTask(ctx, id, domain.TaskFields{
		Title:     "Hijacked",
		StartTime: start.Add(time.Hour),
		Status:    domain.TaskStatusCompleted,
	}, "owner-a"))

	tasks, err = repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Equal(t, "Owned by B", tasks[0].Title)
	require.Equal(t, domain.TaskStatusPending, tasks[0].Status)
	require.True(t, start.Equal(tasks[0].StartTime))

	require.NoError(t, repo.UpdateTask(ctx, id, domain.TaskFields{
		Title:       "Renamed",
		Description: strPtr("by owner"),
		StartTime:   start.Add(time.Hour),
		EndTime:     timePtr(start.Add(2 * time.Hour)),
		Status:      domain.TaskStatusInProgress,
	}, "owner-b"))

	tasks, err = repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Equal(t, "Renamed", tasks[0].Title)
	require.Equal(t, "by owner", *tasks[0].Description)
	require.Equal(t, domain.TaskStatusInProgress, tasks[0].Status)
	require.Equal(t, "owner-b", tasks[0].CreatedBy)
}

func TestTaskRepository_DeleteMissingOrForeignIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(openTestDB(t))

	require.NoError(t, repo.CreateTask(ctx, domain.TaskFields{
		Title:     "Keep me",
		StartTime: time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC),
	}, "owner-b"))
	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTask(ctx, "does-not-exist", "owner-b"))
	require.NoError(t, repo.DeleteTask(ctx, tasks[0].ID, "owner-a"))

	after, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Equal(t, tasks, after)

	require.NoError(t, repo.DeleteTask(ctx, tasks[0].ID, "owner-b"))
	after, err = repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Empty(t, after)
}

func TestTaskRepository_InvalidStatusIsRejectedByStore(t *testing.T) {
	repo := NewTaskRepository(openTestDB(t))

	err := repo.CreateTask(context.Background(), domain.TaskFields{
		Title:     "Bad",
		StartTime: time.Now(),
		Status:    domain.TaskStatus("blocked"),
	}, "owner-a")
	require.Error(t, err)
}

func TestTaskRepository_ListFailsWithoutSchema(t *testing.T) {
	db, err := ConnectSQLite(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = NewTaskRepository(db).ListTasks(context.Background())
	require.Error(t, err)
}
