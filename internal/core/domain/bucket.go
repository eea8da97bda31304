package domain

import "time"

const (
	DayKeyLayout   = "2006-01-02"
	MonthKeyLayout = "2006-01"
)

// DayBucket is one calendar day and the tasks starting on it.
type DayBucket struct {
	Key   string
	Date  time.Time
	Tasks []Task
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// MonthRange returns the first and last calendar day of t's month, both at midnight.
func MonthRange(t time.Time) (time.Time, time.Time) {
	y, m, _ := t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	return first, first.AddDate(0, 1, -1)
}

// ParseMonth reads a YYYY-MM key as the first day of that month in loc.
func ParseMonth(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(MonthKeyLayout, value, loc)
}

// ParseDay reads a YYYY-MM-DD key as midnight of that day in loc.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, value, loc)
}

// BucketByDay emits one bucket per day of [rangeStart, rangeEnd], empty days included.
// A task lands on the day of its StartTime in rangeStart's location; tasks outside the
// range are dropped and input order is kept inside each bucket.
func BucketByDay(tasks []Task, rangeStart, rangeEnd time.Time) []DayBucket {
	loc := rangeStart.Location()
	first := StartOfDay(rangeStart)
	last := StartOfDay(rangeEnd.In(loc))
	if last.Before(first) {
		return []DayBucket{}
	}

	var buckets []DayBucket
	index := make(map[string]int)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format(DayKeyLayout)
		index[key] = len(buckets)
		buckets = append(buckets, DayBucket{Key: key, Date: day, Tasks: []Task{}})
	}

	for _, task := range tasks {
		i, ok := index[task.StartTime.In(loc).Format(DayKeyLayout)]
		if !ok {
			continue
		}
		buckets[i].Tasks = append(buckets[i].Tasks, task)
	}
	return buckets
}

// TasksOnDay keeps tasks starting within [StartOfDay(day), EndOfDay(day)].
func TasksOnDay(tasks []Task, day time.Time) []Task {
	from, to := StartOfDay(day), EndOfDay(day)
	out := make([]Task, 0)
	for _, task := range tasks {
		if task.StartTime.Before(from) || task.StartTime.After(to) {
			continue
		}
		out = append(out, task)
	}
	return out
}

func CountOnDay(tasks []Task, day time.Time) int {
	return len(TasksOnDay(tasks, day))
}
