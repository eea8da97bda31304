package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"schedshare/internal/core/domain"
	"schedshare/internal/core/ports"
)

const listTasksQuery = `
SELECT id, title, description, start_time, end_time, status, created_by
FROM tasks
ORDER BY start_time ASC, id ASC;
`

const insertTaskQuery = `
INSERT INTO tasks (id, title, description, start_time, end_time, status, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`

const updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, start_time = ?, end_time = ?, status = ?
WHERE id = ? AND created_by = ?;
`

const deleteTaskQuery = `DELETE FROM tasks WHERE id = ? AND created_by = ?;`

type TaskRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type taskRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	StartTime   time.Time      `db:"start_time"`
	EndTime     sql.NullTime   `db:"end_time"`
	Status      string         `db:"status"`
	CreatedBy   string         `db:"created_by"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db, now: time.Now}
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

// CreateTask assigns the id and stamps created_by; the caller re-lists to see the row.
func (r *TaskRepository) CreateTask(ctx context.Context, fields domain.TaskFields, ownerID string) error {
	status := fields.Status
	if status == "" {
		status = domain.TaskStatusPending
	}

	_, err := r.db.ExecContext(ctx, insertTaskQuery,
		uuid.NewString(),
		fields.Title,
		nullString(fields.Description),
		storeTime(fields.StartTime),
		nullTime(fields.EndTime),
		string(status),
		ownerID,
		storeTime(r.now()),
	)
	return err
}

// UpdateTask touches nothing when the row belongs to someone else; that is not an error.
func (r *TaskRepository) UpdateTask(ctx context.Context, id string, fields domain.TaskFields, ownerID string) error {
	status := fields.Status
	if status == "" {
		status = domain.TaskStatusPending
	}

	_, err := r.db.ExecContext(ctx, updateTaskQuery,
		fields.Title,
		nullString(fields.Description),
		storeTime(fields.StartTime),
		nullTime(fields.EndTime),
		string(status),
		id,
		ownerID,
	)
	return err
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id string, ownerID string) error {
	_, err := r.db.ExecContext(ctx, deleteTaskQuery, id, ownerID)
	return err
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		StartTime: row.StartTime.UTC(),
		Status:    domain.TaskStatus(row.Status),
		CreatedBy: row.CreatedBy,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.EndTime.Valid {
		value := row.EndTime.Time.UTC()
		task.EndTime = &value
	}

	return task
}

// storeTime normalizes to UTC seconds so start_time orders lexically in sqlite as well.
func storeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: storeTime(*t), Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
