package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"schedshare/internal/adapter/http/cookies"
	"schedshare/internal/adapter/http/dto"
	"schedshare/internal/adapter/http/mapper"
	"schedshare/internal/adapter/http/middleware"
	"schedshare/internal/adapter/http/validation"
	"schedshare/internal/app/preferences"
	"schedshare/internal/app/view"
	"schedshare/internal/core/domain"
	"schedshare/internal/core/ports"
	"schedshare/pkg/apierrors"
)

const LoginPath = "/auth/login"

// PageHandler serves one task page (dashboard or calendar). Every request
// builds a fresh view.Controller bound to the caller's cookies. Input is
// validated before the controller fetches or writes anything.
type PageHandler struct {
	page        preferences.Page
	authService ports.AuthService
	taskService ports.TaskService
	session     middleware.SessionCookie
	loc         *time.Location
	now         func() time.Time
}

type PageConfig struct {
	Session  middleware.SessionCookie
	Location *time.Location
	Now      func() time.Time
}

func NewPageHandler(page preferences.Page, authService ports.AuthService, taskService ports.TaskService, cfg PageConfig) *PageHandler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &PageHandler{
		page:        page,
		authService: authService,
		taskService: taskService,
		session:     cfg.Session,
		loc:         loc,
		now:         now,
	}
}

// viewQuery holds the parsed month and date query parameters of a page request.
type viewQuery struct {
	month    time.Time
	selected time.Time
}

// Show renders the page for the requested month (and calendar day).
func (h *PageHandler) Show(c *gin.Context) {
	ctrl, prefs, ok := h.authenticate(c)
	if !ok {
		return
	}
	defer ctrl.Close()

	query, ok := h.parseViewQuery(c)
	if !ok {
		return
	}
	if !h.load(c, ctrl) {
		return
	}
	h.render(c, ctrl, prefs, query)
}

// SetFilter persists the page filter cookie and answers with the re-filtered view.
func (h *PageHandler) SetFilter(c *gin.Context) {
	ctrl, prefs, ok := h.authenticate(c)
	if !ok {
		return
	}
	defer ctrl.Close()

	query, ok := h.parseViewQuery(c)
	if !ok {
		return
	}
	lang := middleware.GetLang(c)
	var req dto.FilterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidFilter, lang))
		return
	}
	filter, err := domain.ParseFilter(req.Filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidFilter, lang))
		return
	}
	if !h.load(c, ctrl) {
		return
	}

	ctrl.SetFilter(filter)
	h.render(c, ctrl, prefs, query)
}

// ShowTask returns the pre-filled edit dialog of one task.
func (h *PageHandler) ShowTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}
	ctrl, ok := h.mount(c)
	if !ok {
		return
	}
	defer ctrl.Close()

	task, found := ctrl.Task(id)
	if !found {
		lang := middleware.GetLang(c)
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang))
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskFormResponse(task, view.FormFromTask(task, h.loc), ctrl.User().ID))
}

// CreateTask adds a task. An empty form date falls back to ?date= or today.
func (h *PageHandler) CreateTask(c *gin.Context) {
	ctrl, prefs, ok := h.authenticate(c)
	if !ok {
		return
	}
	defer ctrl.Close()

	query, ok := h.parseViewQuery(c)
	if !ok {
		return
	}
	form, ok := h.bindTaskForm(c)
	if !ok {
		return
	}
	if !h.load(c, ctrl) {
		return
	}

	ctrl.SelectDay(query.selected)
	if err := ctrl.AddTask(c.Request.Context(), form); err != nil {
		h.mutationError(c, err)
		return
	}
	h.render(c, ctrl, prefs, query)
}

// UpdateTask edits a task owned by the caller. Other tasks are left untouched.
func (h *PageHandler) UpdateTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}
	ctrl, prefs, ok := h.authenticate(c)
	if !ok {
		return
	}
	defer ctrl.Close()

	query, ok := h.parseViewQuery(c)
	if !ok {
		return
	}
	form, ok := h.bindTaskForm(c)
	if !ok {
		return
	}
	if !h.load(c, ctrl) {
		return
	}

	if err := ctrl.EditTask(c.Request.Context(), id, form); err != nil {
		h.mutationError(c, err)
		return
	}
	h.render(c, ctrl, prefs, query)
}

// DeleteTask removes a task owned by the caller. A missing id is not an error.
func (h *PageHandler) DeleteTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}
	ctrl, prefs, ok := h.authenticate(c)
	if !ok {
		return
	}
	defer ctrl.Close()

	query, ok := h.parseViewQuery(c)
	if !ok {
		return
	}
	if !h.load(c, ctrl) {
		return
	}

	if err := ctrl.DeleteTask(c.Request.Context(), id); err != nil {
		h.mutationError(c, err)
		return
	}
	h.render(c, ctrl, prefs, query)
}

// authenticate builds the controller and redirects to the login page when there
// is no session. Tasks are not fetched yet.
func (h *PageHandler) authenticate(c *gin.Context) (*view.Controller, *preferences.Preferences, bool) {
	ctrl, prefs := h.newController(c)
	if err := ctrl.Authenticate(c.Request.Context(), h.session.Token(c)); err != nil {
		ctrl.Close()
		h.sessionError(c, err)
		return nil, nil, false
	}
	middleware.SetUserID(c, ctrl.User().ID)
	return ctrl, prefs, true
}

// mount is authenticate followed by the first fetch, for requests without input to check.
func (h *PageHandler) mount(c *gin.Context) (*view.Controller, bool) {
	ctrl, _ := h.newController(c)
	if err := ctrl.Mount(c.Request.Context(), h.session.Token(c)); err != nil {
		ctrl.Close()
		h.sessionError(c, err)
		return nil, false
	}
	middleware.SetUserID(c, ctrl.User().ID)
	return ctrl, true
}

func (h *PageHandler) newController(c *gin.Context) (*view.Controller, *preferences.Preferences) {
	prefs := preferences.New(cookies.NewStore(c, h.session.Secure))
	return view.NewController(h.page, h.authService, h.taskService, prefs, h.loc, view.WithClock(h.now)), prefs
}

func (h *PageHandler) sessionError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrUnauthenticated) {
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
		return
	}
	zap.L().Error("failed to mount page", zap.String("page", string(h.page)), zap.Error(err))
	c.AbortWithStatus(http.StatusInternalServerError)
}

func (h *PageHandler) load(c *gin.Context, ctrl *view.Controller) bool {
	if err := ctrl.Load(c.Request.Context()); err != nil {
		zap.L().Error("failed to load page", zap.String("page", string(h.page)), zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return false
	}
	return true
}

// parseViewQuery reads ?month=YYYY-MM and ?date=YYYY-MM-DD. Without a month
// the calendar shows the month of the selected date.
func (h *PageHandler) parseViewQuery(c *gin.Context) (viewQuery, bool) {
	lang := middleware.GetLang(c)
	today := domain.StartOfDay(h.now().In(h.loc))

	month, err := validation.ParseMonthQuery(c.Query("month"), h.loc, today)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidMonth, lang))
		return viewQuery{}, false
	}
	selected, err := validation.ParseDayQuery(c.Query("date"), h.loc, today)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDate, lang))
		return viewQuery{}, false
	}
	if h.page == preferences.PageCalendar && c.Query("month") == "" {
		month, _ = domain.MonthRange(selected)
	}
	return viewQuery{month: month, selected: selected}, true
}

func (h *PageHandler) render(c *gin.Context, ctrl *view.Controller, prefs *preferences.Preferences, query viewQuery) {
	saving := ctrl.State() == view.StateSaving
	if h.page == preferences.PageCalendar {
		calendar := ctrl.Calendar(query.month, query.selected)
		c.JSON(http.StatusOK, mapper.ToCalendarResponse(calendar, ctrl.User(), prefs.Appearance(), ctrl.Today(), saving, h.loc))
		return
	}

	dashboard := ctrl.Dashboard(query.month)
	c.JSON(http.StatusOK, mapper.ToDashboardResponse(dashboard, ctrl.User(), prefs.Appearance(), saving, h.loc))
}

// bindTaskForm decodes and validates the dialog payload, answering 400 on failure.
func (h *PageHandler) bindTaskForm(c *gin.Context) (view.TaskForm, bool) {
	lang := middleware.GetLang(c)

	var req dto.TaskPayload
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return view.TaskForm{}, false
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return view.TaskForm{}, false
	}

	form, err := validation.BuildTaskForm(req, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return view.TaskForm{}, false
	}
	if err := form.Validate(); err != nil {
		h.mutationError(c, err)
		return view.TaskForm{}, false
	}
	return form, true
}

func (h *PageHandler) taskID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		lang := middleware.GetLang(c)
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang))
		return "", false
	}
	return id, true
}

func (h *PageHandler) mutationError(c *gin.Context, err error) {
	lang := middleware.GetLang(c)

	switch {
	case errors.Is(err, domain.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgTitleRequired, lang))
	case errors.Is(err, view.ErrInvalidSchedule), errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
	case errors.Is(err, domain.ErrBusy):
		c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgSavingInProgress, lang))
	case errors.Is(err, domain.ErrUnauthenticated):
		c.Redirect(http.StatusFound, LoginPath)
	default:
		zap.L().Error("unexpected task mutation failure", zap.String("page", string(h.page)), zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
