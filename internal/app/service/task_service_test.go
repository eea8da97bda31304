package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"schedshare/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, fields domain.TaskFields, ownerID string) error {
	return m.Called(ctx, fields, ownerID).Error(0)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, id string, fields domain.TaskFields, ownerID string) error {
	return m.Called(ctx, id, fields, ownerID).Error(0)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, id string, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

func TestTaskService_ListTasks(t *testing.T) {
	tasks := []domain.Task{{ID: "t1", Title: "Standup", StartTime: time.Now(), CreatedBy: "u1"}}
	repo := new(taskRepositoryMock)
	repo.On("ListTasks", mock.Anything).Return(tasks, nil).Once()

	got, err := NewTaskService(repo).ListTasks(context.Background())

	require.NoError(t, err)
	require.Equal(t, tasks, got)
	repo.AssertExpectations(t)
}

func TestTaskService_WrapsFailuresAsStoreError(t *testing.T) {
	cause := errors.New("db is down")
	fields := domain.TaskFields{Title: "Standup"}

	repo := new(taskRepositoryMock)
	repo.On("ListTasks", mock.Anything).Return(nil, cause).Once()
	repo.On("CreateTask", mock.Anything, fields, "u1").Return(cause).Once()
	repo.On("UpdateTask", mock.Anything, "t1", fields, "u1").Return(cause).Once()
	repo.On("DeleteTask", mock.Anything, "t1", "u1").Return(cause).Once()
	svc := NewTaskService(repo)
	ctx := context.Background()

	_, err := svc.ListTasks(ctx)
	requireStoreError(t, err, "list tasks", cause)
	requireStoreError(t, svc.CreateTask(ctx, fields, "u1"), "create task", cause)
	requireStoreError(t, svc.UpdateTask(ctx, "t1", fields, "u1"), "update task", cause)
	requireStoreError(t, svc.DeleteTask(ctx, "t1", "u1"), "delete task", cause)
	repo.AssertExpectations(t)
}

func TestTaskService_MutationSuccessReturnsNil(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("DeleteTask", mock.Anything, "missing", "u1").Return(nil).Once()

	require.NoError(t, NewTaskService(repo).DeleteTask(context.Background(), "missing", "u1"))
	repo.AssertExpectations(t)
}

func requireStoreError(t *testing.T, err error, op string, cause error) {
	t.Helper()

	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, op, storeErr.Op)
	require.ErrorIs(t, err, cause)
}
