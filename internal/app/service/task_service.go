package service

import (
	"context"

	"schedshare/internal/core/domain"
	"schedshare/internal/core/ports"
)

// TaskService is the store client: four calls, each wrapping failures in a *domain.StoreError.
type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskRepository.ListTasks(ctx)
	if err != nil {
		return nil, domain.NewStoreError("list tasks", err)
	}
	return tasks, nil
}

func (s *TaskService) CreateTask(ctx context.Context, fields domain.TaskFields, ownerID string) error {
	return domain.NewStoreError("create task", s.taskRepository.CreateTask(ctx, fields, ownerID))
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, fields domain.TaskFields, ownerID string) error {
	return domain.NewStoreError("update task", s.taskRepository.UpdateTask(ctx, id, fields, ownerID))
}

func (s *TaskService) DeleteTask(ctx context.Context, id string, ownerID string) error {
	return domain.NewStoreError("delete task", s.taskRepository.DeleteTask(ctx, id, ownerID))
}

var _ ports.TaskService = (*TaskService)(nil)
