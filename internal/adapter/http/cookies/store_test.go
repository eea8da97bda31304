package cookies_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedshare/internal/adapter/http/cookies"
)

func TestStore_ReadsRequestCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	c.Request.AddCookie(&http.Cookie{Name: "theme-color", Value: "blue"})

	store := cookies.NewStore(c, false)

	value, ok := store.Get("theme-color")
	require.True(t, ok)
	assert.Equal(t, "blue", value)

	_, ok = store.Get("dark-mode")
	assert.False(t, ok)
}

func TestStore_SetWritesCookieAndIsReadable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/dashboard/filter", nil)
	c.Request.AddCookie(&http.Cookie{Name: "dashboard-filter-type", Value: "all"})

	store := cookies.NewStore(c, true)
	store.Set("dashboard-filter-type", "my-tasks")

	value, ok := store.Get("dashboard-filter-type")
	require.True(t, ok)
	assert.Equal(t, "my-tasks", value)

	written := w.Result().Cookies()
	require.Len(t, written, 1)
	assert.Equal(t, "dashboard-filter-type", written[0].Name)
	assert.Equal(t, "my-tasks", written[0].Value)
	assert.Equal(t, "/", written[0].Path)
	assert.True(t, written[0].Secure)
	assert.False(t, written[0].HttpOnly)
}
