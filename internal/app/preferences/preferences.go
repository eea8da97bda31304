package preferences

import (
	"strconv"
	"sync"

	"schedshare/internal/core/domain"
	"schedshare/internal/core/ports"
)

const (
	KeyDashboardFilter = "dashboard-filter-type"
	KeyCalendarFilter  = "calendar-filter-type"
	KeyThemeColor      = "theme-color"
	KeyDarkMode        = "dark-mode"
)

const (
	DefaultFilter = domain.FilterAll
	DefaultTheme  = domain.ThemeSlate
)

// Page identifies which filter key a view reads and writes.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageCalendar  Page = "calendar"
)

func (p Page) FilterKey() string {
	if p == PageCalendar {
		return KeyCalendarFilter
	}
	return KeyDashboardFilter
}

// Preferences is a typed view over a ports.PreferenceStore.
// Unknown or missing stored values fall back to the defaults.
type Preferences struct {
	store ports.PreferenceStore
}

func New(store ports.PreferenceStore) *Preferences {
	return &Preferences{store: store}
}

func (p *Preferences) Filter(page Page) domain.FilterType {
	raw, ok := p.store.Get(page.FilterKey())
	if !ok {
		return DefaultFilter
	}
	filter, err := domain.ParseFilter(raw)
	if err != nil {
		return DefaultFilter
	}
	return filter
}

func (p *Preferences) SetFilter(page Page, filter domain.FilterType) {
	p.store.Set(page.FilterKey(), string(filter))
}

func (p *Preferences) Theme() domain.ThemeColor {
	raw, ok := p.store.Get(KeyThemeColor)
	if !ok {
		return DefaultTheme
	}
	theme, err := domain.ParseThemeColor(raw)
	if err != nil {
		return DefaultTheme
	}
	return theme
}

func (p *Preferences) SetTheme(theme domain.ThemeColor) {
	p.store.Set(KeyThemeColor, string(theme))
}

func (p *Preferences) Dark() bool {
	raw, ok := p.store.Get(KeyDarkMode)
	if !ok {
		return false
	}
	dark, err := strconv.ParseBool(raw)
	return err == nil && dark
}

func (p *Preferences) SetDark(dark bool) {
	p.store.Set(KeyDarkMode, strconv.FormatBool(dark))
}

func (p *Preferences) Appearance() domain.Appearance {
	return domain.Appearance{Theme: p.Theme(), Dark: p.Dark()}
}

// MemoryStore is a process-local PreferenceStore. The cookie store keeps the
// writes of the current request in one.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

var _ ports.PreferenceStore = (*MemoryStore)(nil)
