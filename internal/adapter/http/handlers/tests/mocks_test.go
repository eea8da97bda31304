package tests

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	httpadapter "schedshare/internal/adapter/http"
	"schedshare/internal/adapter/http/handlers"
	"schedshare/internal/adapter/http/middleware"
	"schedshare/internal/app/preferences"
	"schedshare/internal/core/domain"
	"schedshare/pkg/translator"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, fields domain.TaskFields, ownerID string) error {
	return m.Called(ctx, fields, ownerID).Error(0)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id string, fields domain.TaskFields, ownerID string) error {
	return m.Called(ctx, id, fields, ownerID).Error(0)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id string, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) SignUp(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *authServiceMock) CurrentUser(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) SignOut(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

const (
	sessionCookieName = "schedshare_session"
	sessionToken      = "tok"
)

var (
	wib      = time.FixedZone("WIB", 7*60*60)
	fixedNow = time.Date(2024, time.June, 12, 10, 0, 0, 0, wib)
	alice    = domain.User{ID: "alice", Email: "alice@example.com"}
)

// newAuthMock knows one valid session token; anything else is unauthenticated.
func newAuthMock() *authServiceMock {
	auth := new(authServiceMock)
	auth.On("CurrentUser", mock.Anything, sessionToken).Return(alice, nil).Maybe()
	auth.On("CurrentUser", mock.Anything, mock.Anything).Return(domain.User{}, domain.ErrUnauthenticated).Maybe()
	return auth
}

func newRouter(auth *authServiceMock, tasks *taskServiceMock) *gin.Engine {
	session := middleware.SessionCookie{Name: sessionCookieName}
	pageConfig := handlers.PageConfig{
		Session:  session,
		Location: wib,
		Now:      func() time.Time { return fixedNow },
	}

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(nil, handlers.AppInfo{Name: "Schedule Share", Location: wib}),
		Auth:      handlers.NewAuthHandler(auth, session),
		Dashboard: handlers.NewPageHandler(preferences.PageDashboard, auth, tasks, pageConfig),
		Calendar:  handlers.NewPageHandler(preferences.PageCalendar, auth, tasks, pageConfig),
		Settings:  handlers.NewSettingsHandler(auth, session),
	})
	return router
}

func sessionCookie() *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: sessionToken}
}

func doRequest(router *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return doRequestLang(router, method, path, body, translator.LanguageEn, cookies...)
}

func doRequestLang(router *gin.Engine, method, path, body, lang string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept-Language", lang)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func taskAt(id, owner string, start time.Time) domain.Task {
	return domain.Task{ID: id, Title: id, StartTime: start, Status: domain.TaskStatusPending, CreatedBy: owner}
}
