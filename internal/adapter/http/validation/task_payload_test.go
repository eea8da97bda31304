package validation_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedshare/internal/adapter/http/dto"
	"schedshare/internal/adapter/http/validation"
	"schedshare/internal/app/view"
)

func decode(t *testing.T, body string) (dto.TaskPayload, map[string]json.RawMessage) {
	t.Helper()

	var req dto.TaskPayload
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return req, raw
}

func TestBuildTaskForm(t *testing.T) {
	req, raw := decode(t, `{"title":"Plan","date":" 2024-06-03 ","start_time":"08:00","status":"completed"}`)

	form, err := validation.BuildTaskForm(req, raw)

	require.NoError(t, err)
	assert.Equal(t, view.TaskForm{Title: "Plan", Date: "2024-06-03", StartClock: "08:00", Status: "completed"}, form)
}

func TestBuildTaskForm_RejectsNulls(t *testing.T) {
	for _, body := range []string{
		`{"title":"Plan","status":null}`,
		`{"title":null}`,
		`{"title":"Plan","end_time":null}`,
	} {
		req, raw := decode(t, body)

		_, err := validation.BuildTaskForm(req, raw)

		require.ErrorIs(t, err, validation.ErrInvalidTaskPayload, body)
	}
}

func TestParseQueries(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, loc)

	month, err := validation.ParseMonthQuery("", loc, now)
	require.NoError(t, err)
	assert.True(t, month.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, loc)))

	month, err = validation.ParseMonthQuery("2024-02", loc, now)
	require.NoError(t, err)
	assert.True(t, month.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, loc)))

	_, err = validation.ParseMonthQuery("2024-2", loc, now)
	require.ErrorIs(t, err, validation.ErrInvalidMonth)

	day, err := validation.ParseDayQuery("", loc, now)
	require.NoError(t, err)
	assert.True(t, day.Equal(time.Date(2024, 6, 12, 0, 0, 0, 0, loc)))

	_, err = validation.ParseDayQuery("12/06/2024", loc, now)
	require.ErrorIs(t, err, validation.ErrInvalidDate)
}
