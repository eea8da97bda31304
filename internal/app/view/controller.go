package view

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"schedshare/internal/app/preferences"
	"schedshare/internal/core/domain"
	"schedshare/internal/core/ports"
)

type State int

const (
	StateInitial State = iota
	StateRedirecting
	StateLoading
	StateReady
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateRedirecting:
		return "redirecting"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSaving:
		return "saving"
	}
	return "unknown"
}

var (
	ErrClosed         = errors.New("view controller closed")
	ErrAlreadyMounted = errors.New("view controller already mounted")
)

// Controller drives one page instance: session check, task fetch, mutations
// and the filtered projections rendered by the page.
type Controller struct {
	page  preferences.Page
	auth  ports.AuthService
	store ports.TaskService
	prefs *preferences.Preferences
	loc   *time.Location
	now   func() time.Time

	mu       sync.Mutex
	state    State
	user     domain.User
	tasks    []domain.Task
	selected time.Time
	seq      uint64
	closed   bool
	ctx      context.Context
	cancel   context.CancelFunc
}

type Option func(*Controller)

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController builds a controller in StateInitial. Nothing is fetched until Mount.
func NewController(
	page preferences.Page,
	auth ports.AuthService,
	store ports.TaskService,
	prefs *preferences.Preferences,
	loc *time.Location,
	opts ...Option,
) *Controller {
	if loc == nil {
		loc = time.Local
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		page:   page,
		auth:   auth,
		store:  store,
		prefs:  prefs,
		loc:    loc,
		now:    time.Now,
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.selected = domain.StartOfDay(c.now().In(loc))
	return c
}

// Mount resolves the session and performs the first fetch. It returns
// domain.ErrUnauthenticated when the page must redirect to the login screen.
func (c *Controller) Mount(ctx context.Context, token string) error {
	if err := c.Authenticate(ctx, token); err != nil {
		return err
	}
	return c.Load(ctx)
}

// Authenticate resolves the session without fetching tasks. On success the
// controller waits in StateLoading until Load.
func (c *Controller) Authenticate(ctx context.Context, token string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state != StateInitial {
		c.mu.Unlock()
		return ErrAlreadyMounted
	}
	c.mu.Unlock()

	ctx, stop := c.scope(ctx)
	defer stop()

	user, err := c.auth.CurrentUser(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateRedirecting
		return domain.ErrUnauthenticated
	}
	c.user = user
	c.state = StateLoading
	return nil
}

// Load fetches the task list. A result superseded by a newer fetch is dropped.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	closed, state := c.closed, c.state
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if state == StateInitial || state == StateRedirecting {
		return domain.ErrUnauthenticated
	}

	ctx, stop := c.scope(ctx)
	defer stop()
	c.refresh(ctx)

	c.mu.Lock()
	if c.state == StateLoading {
		c.state = StateReady
	}
	c.mu.Unlock()
	return nil
}

// AddTask validates the form, creates the task and re-fetches the list.
// Store failures are logged and leave the list as it was.
func (c *Controller) AddTask(ctx context.Context, form TaskForm) error {
	c.mu.Lock()
	fallback := c.selected
	c.mu.Unlock()

	fields, err := form.Fields(c.loc, fallback)
	if err != nil {
		return err
	}
	userID, err := c.beginSaving()
	if err != nil {
		return err
	}
	defer c.endSaving()

	ctx, stop := c.scope(ctx)
	defer stop()

	if err := c.store.CreateTask(ctx, fields, userID); err != nil {
		c.logStoreError("create task", err)
		return nil
	}
	c.refresh(ctx)
	return nil
}

// EditTask updates a task; an empty form date keeps the task's own day.
func (c *Controller) EditTask(ctx context.Context, id string, form TaskForm) error {
	c.mu.Lock()
	fallback := c.selected
	if i := c.indexOf(id); i >= 0 {
		fallback = c.tasks[i].StartTime
	}
	c.mu.Unlock()

	fields, err := form.Fields(c.loc, fallback)
	if err != nil {
		return err
	}
	userID, err := c.beginSaving()
	if err != nil {
		return err
	}
	defer c.endSaving()

	ctx, stop := c.scope(ctx)
	defer stop()

	if err := c.store.UpdateTask(ctx, id, fields, userID); err != nil {
		c.logStoreError("update task", err)
		return nil
	}
	c.refresh(ctx)
	return nil
}

// DeleteTask removes the task from the local list on success; no re-fetch.
func (c *Controller) DeleteTask(ctx context.Context, id string) error {
	userID, err := c.beginSaving()
	if err != nil {
		return err
	}
	defer c.endSaving()

	ctx, stop := c.scope(ctx)
	defer stop()

	if err := c.store.DeleteTask(ctx, id, userID); err != nil {
		c.logStoreError("delete task", err)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.tasks = slices.DeleteFunc(c.tasks, func(t domain.Task) bool { return t.ID == id })
	return nil
}

// SetFilter persists the page filter. It is allowed in every state.
func (c *Controller) SetFilter(filter domain.FilterType) {
	c.prefs.SetFilter(c.page, filter)
}

func (c *Controller) Filter() domain.FilterType {
	return c.prefs.Filter(c.page)
}

func (c *Controller) SelectDay(day time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = domain.StartOfDay(day.In(c.loc))
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) User() domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Task looks up a fetched task by id.
func (c *Controller) Task(id string) (domain.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return c.tasks[i], true
}

// Tasks returns a copy of the full fetched set.
func (c *Controller) Tasks() []domain.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.tasks)
}

// Visible is the filtered projection of Tasks.
func (c *Controller) Visible() []domain.Task {
	filter := c.Filter()
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.ApplyFilter(c.tasks, filter, c.user.ID)
}

// Close cancels in-flight store calls; late results are dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.cancel()
}

func (c *Controller) refresh(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	tasks, err := c.store.ListTasks(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || seq != c.seq {
		zap.L().Debug("discarding superseded task list",
			zap.String("page", string(c.page)),
			zap.Uint64("seq", seq),
			zap.Uint64("latest", c.seq),
			zap.Bool("closed", c.closed),
		)
		return
	}
	if err != nil {
		zap.L().Error("failed to fetch tasks", zap.String("page", string(c.page)), zap.Error(err))
		if c.tasks == nil {
			c.tasks = []domain.Task{}
		}
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	c.tasks = tasks
}

func (c *Controller) beginSaving() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return "", ErrClosed
	}
	switch c.state {
	case StateInitial, StateRedirecting:
		return "", domain.ErrUnauthenticated
	case StateLoading, StateSaving:
		return "", domain.ErrBusy
	}
	c.state = StateSaving
	return c.user.ID, nil
}

func (c *Controller) endSaving() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSaving {
		c.state = StateReady
	}
}

// scope derives a context that is also cancelled by Close.
func (c *Controller) scope(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func (c *Controller) indexOf(id string) int {
	return slices.IndexFunc(c.tasks, func(t domain.Task) bool { return t.ID == id })
}

func (c *Controller) logStoreError(op string, err error) {
	zap.L().Error("failed to "+op,
		zap.String("page", string(c.page)),
		zap.String("user_id", c.User().ID),
		zap.Error(err),
	)
}
