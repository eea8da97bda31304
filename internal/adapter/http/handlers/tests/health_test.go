package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"schedshare/internal/adapter/http/handlers"
)

func TestHealth_DownWithoutDatabase(t *testing.T) {
	router := newRouter(newAuthMock(), new(taskServiceMock))

	rec := doRequest(router, http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var got handlers.HealthBasic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, handlers.StatusDown, got.Message)
	require.Equal(t, "Schedule Share", got.AppName)
	require.Equal(t, "dev", got.AppVersion)
}

func TestHealth_Report(t *testing.T) {
	router := newRouter(newAuthMock(), new(taskServiceMock))

	rec := doRequestLang(router, http.MethodGet, "/api/health/report", "", "id")

	require.Equal(t, http.StatusOK, rec.Code)
	var got handlers.HealthAdvanced
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, handlers.StatusDown, got.Status.Database)
	require.Equal(t, "id", got.Language)
	require.Equal(t, "WIB", got.Timezone)
}
