package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task is a row of the tasks relation. CreatedBy is stamped at insert and never changes.
type Task struct {
	ID          string
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     *time.Time
	Status      TaskStatus
	CreatedBy   string
}

func (t Task) OwnedBy(userID string) bool {
	return userID != "" && t.CreatedBy == userID
}

// TaskFields holds the writable columns sent on insert and update.
type TaskFields struct {
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     *time.Time
	Status      TaskStatus
}

// Validate only checks the title; end_time before start_time is accepted.
func (f TaskFields) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}
