package mapper

import (
	"strings"
	"time"

	"schedshare/internal/adapter/http/dto"
	"schedshare/internal/app/view"
	"schedshare/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task, currentUserID string, loc *time.Location) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, currentUserID, loc))
	}
	return items
}

// ToTaskItem renders times as RFC3339 in loc.
func ToTaskItem(task domain.Task, currentUserID string, loc *time.Location) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		StartTime: task.StartTime.In(loc).Format(time.RFC3339),
		Status:    string(task.Status),
		CreatedBy: task.CreatedBy,
		Mine:      task.OwnedBy(currentUserID),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.EndTime != nil {
		value := task.EndTime.In(loc).Format(time.RFC3339)
		item.EndTime = &value
	}

	return item
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{ID: user.ID, Email: user.Email, Initials: initials(user.Email)}
}

func ToAppearanceItem(a domain.Appearance) dto.AppearanceItem {
	return dto.AppearanceItem{Theme: string(a.Theme), Dark: a.Dark, Attributes: a.DocumentAttributes()}
}

func ToDashboardResponse(v view.DashboardView, user domain.User, a domain.Appearance, saving bool, loc *time.Location) dto.DashboardResponse {
	days := make([]dto.DayItem, 0, len(v.Buckets))
	for _, b := range v.Buckets {
		days = append(days, dto.DayItem{Date: b.Key, Tasks: ToTaskItems(b.Tasks, user.ID, loc)})
	}
	return dto.DashboardResponse{
		User:       ToUserItem(user),
		Appearance: ToAppearanceItem(a),
		Month:      v.Month.Format(domain.MonthKeyLayout),
		Filter:     string(v.Filter),
		Saving:     saving,
		Days:       days,
	}
}

func ToCalendarResponse(v view.CalendarView, user domain.User, a domain.Appearance, today time.Time, saving bool, loc *time.Location) dto.CalendarResponse {
	todayKey := today.Format(domain.DayKeyLayout)
	selectedKey := v.Selected.Format(domain.DayKeyLayout)

	days := make([]dto.CalendarDay, 0, len(v.Days))
	for _, d := range v.Days {
		days = append(days, dto.CalendarDay{
			Date:      d.Key,
			TaskCount: d.Count,
			Selected:  d.Key == selectedKey,
			Today:     d.Key == todayKey,
		})
	}
	return dto.CalendarResponse{
		User:          ToUserItem(user),
		Appearance:    ToAppearanceItem(a),
		Month:         v.Month.Format(domain.MonthKeyLayout),
		SelectedDate:  selectedKey,
		Filter:        string(v.Filter),
		Saving:        saving,
		Days:          days,
		SelectedTasks: ToTaskItems(v.SelectedTasks, user.ID, loc),
	}
}

// initials takes the first two letters of the email's local part.
func initials(email string) string {
	local, _, _ := strings.Cut(email, "@")
	runes := []rune(local)
	if len(runes) == 0 {
		return "U"
	}
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

// ToTaskFormResponse flattens a pre-filled edit form for the client.
func ToTaskFormResponse(task domain.Task, form view.TaskForm, currentUserID string) dto.TaskFormResponse {
	return dto.TaskFormResponse{
		ID:          task.ID,
		Title:       form.Title,
		Description: form.Description,
		Date:        form.Date,
		StartTime:   form.StartClock,
		EndTime:     form.EndClock,
		Status:      form.Status,
		Mine:        task.OwnedBy(currentUserID),
	}
}
