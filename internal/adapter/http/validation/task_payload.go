package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"schedshare/internal/adapter/http/dto"
	"schedshare/internal/app/view"
	"schedshare/internal/core/domain"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrInvalidMonth       = errors.New("invalid month")
	ErrInvalidDate        = errors.New("invalid date")
)

// BuildTaskForm checks the decoded payload against the raw JSON object.
// A null status is rejected rather than read as "pending".
func BuildTaskForm(req dto.TaskPayload, raw map[string]json.RawMessage) (view.TaskForm, error) {
	if hasJSONField(raw, "status") && (req.Status == nil || isJSONNull(raw["status"])) {
		return view.TaskForm{}, ErrInvalidTaskPayload
	}
	for _, field := range []string{"title", "date", "start_time", "end_time", "description"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return view.TaskForm{}, ErrInvalidTaskPayload
		}
	}

	form := view.TaskForm{
		Title:       req.Title,
		Description: req.Description,
		Date:        strings.TrimSpace(req.Date),
		StartClock:  strings.TrimSpace(req.StartTime),
		EndClock:    strings.TrimSpace(req.EndTime),
	}
	if req.Status != nil {
		form.Status = *req.Status
	}
	return form, nil
}

// ParseMonthQuery reads ?month=YYYY-MM; empty means the month of fallback.
func ParseMonthQuery(value string, loc *time.Location, fallback time.Time) (time.Time, error) {
	if value == "" {
		first, _ := domain.MonthRange(fallback.In(loc))
		return first, nil
	}
	month, err := domain.ParseMonth(value, loc)
	if err != nil {
		return time.Time{}, ErrInvalidMonth
	}
	return month, nil
}

// ParseDayQuery reads ?date=YYYY-MM-DD; empty means fallback's day.
func ParseDayQuery(value string, loc *time.Location, fallback time.Time) (time.Time, error) {
	if value == "" {
		return domain.StartOfDay(fallback.In(loc)), nil
	}
	day, err := domain.ParseDay(value, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
