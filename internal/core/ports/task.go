package ports

import (
	"context"

	"schedshare/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, fields domain.TaskFields, ownerID string) error
	UpdateTask(ctx context.Context, id string, fields domain.TaskFields, ownerID string) error
	DeleteTask(ctx context.Context, id string, ownerID string) error
}

// TaskService is the store client used by page controllers. Every error it returns is a *domain.StoreError.
type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, fields domain.TaskFields, ownerID string) error
	UpdateTask(ctx context.Context, id string, fields domain.TaskFields, ownerID string) error
	DeleteTask(ctx context.Context, id string, ownerID string) error
}
