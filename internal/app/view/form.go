package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"schedshare/internal/core/domain"
)

const (
	DefaultStartClock = "09:00"
	DefaultEndClock   = "10:00"
	clockLayout       = "15:04"
	formTimeLayout    = "2006-01-02T15:04:05"
)

var ErrInvalidSchedule = errors.New("invalid task date or time")

// TaskForm is the raw input of the add and edit dialogs.
type TaskForm struct {
	Title       string
	Description string
	Date        string
	StartClock  string
	EndClock    string
	Status      string
}

// Fields composes the form into store columns. Times are built as
// date + "T" + HH:mm + ":00" and read in loc; an empty Date uses fallbackDay.
func (f TaskForm) Fields(loc *time.Location, fallbackDay time.Time) (domain.TaskFields, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return domain.TaskFields{}, domain.ErrTitleRequired
	}

	date := strings.TrimSpace(f.Date)
	if date == "" {
		date = fallbackDay.In(loc).Format(domain.DayKeyLayout)
	}

	start, err := composeTime(date, orDefault(f.StartClock, DefaultStartClock), loc)
	if err != nil {
		return domain.TaskFields{}, err
	}
	end, err := composeTime(date, orDefault(f.EndClock, DefaultEndClock), loc)
	if err != nil {
		return domain.TaskFields{}, err
	}

	status := domain.TaskStatus(orDefault(f.Status, string(domain.TaskStatusPending)))
	if !status.Valid() {
		return domain.TaskFields{}, domain.ErrInvalidStatus
	}

	fields := domain.TaskFields{
		Title:     title,
		StartTime: start,
		EndTime:   &end,
		Status:    status,
	}
	if description := strings.TrimSpace(f.Description); description != "" {
		fields.Description = &description
	}
	return fields, nil
}

// Validate runs every check of Fields that does not depend on the fallback day.
func (f TaskForm) Validate() error {
	_, err := f.Fields(time.UTC, time.Time{})
	return err
}

// FormFromTask pre-fills the edit dialog.
func FormFromTask(task domain.Task, loc *time.Location) TaskForm {
	form := TaskForm{
		Title:      task.Title,
		Date:       task.StartTime.In(loc).Format(domain.DayKeyLayout),
		StartClock: task.StartTime.In(loc).Format(clockLayout),
		EndClock:   DefaultEndClock,
		Status:     string(task.Status),
	}
	if task.Description != nil {
		form.Description = *task.Description
	}
	if task.EndTime != nil {
		form.EndClock = task.EndTime.In(loc).Format(clockLayout)
	}
	return form
}

func composeTime(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(formTimeLayout, date+"T"+strings.TrimSpace(clock)+":00", loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	return t, nil
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
