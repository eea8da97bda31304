package view

import (
	"time"

	"schedshare/internal/core/domain"
)

type DashboardView struct {
	Month   time.Time
	Filter  domain.FilterType
	Buckets []domain.DayBucket
}

type DayCount struct {
	Key   string
	Date  time.Time
	Count int
}

type CalendarView struct {
	Month         time.Time
	Selected      time.Time
	Filter        domain.FilterType
	Days          []DayCount
	SelectedTasks []domain.Task
}

// Dashboard buckets the visible tasks over every day of month.
func (c *Controller) Dashboard(month time.Time) DashboardView {
	first, last := domain.MonthRange(month.In(c.loc))
	return DashboardView{
		Month:   first,
		Filter:  c.Filter(),
		Buckets: domain.BucketByDay(c.Visible(), first, last),
	}
}

// Calendar returns the month grid counts and the task list of the selected day.
func (c *Controller) Calendar(month, selected time.Time) CalendarView {
	c.SelectDay(selected)
	selected = domain.StartOfDay(selected.In(c.loc))
	visible := c.Visible()

	first, last := domain.MonthRange(month.In(c.loc))
	days := make([]DayCount, 0, last.Day())
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		days = append(days, DayCount{
			Key:   day.Format(domain.DayKeyLayout),
			Date:  day,
			Count: domain.CountOnDay(visible, day),
		})
	}

	return CalendarView{
		Month:         first,
		Selected:      selected,
		Filter:        c.Filter(),
		Days:          days,
		SelectedTasks: domain.TasksOnDay(visible, selected),
	}
}

// Today is midnight of the current day in the controller's location.
func (c *Controller) Today() time.Time {
	return domain.StartOfDay(c.now().In(c.loc))
}
