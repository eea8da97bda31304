package cookies

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"schedshare/internal/app/preferences"
	"schedshare/internal/core/ports"
)

const maxAge = 365 * 24 * 60 * 60

// Store keeps preferences in browser cookies, one cookie per key.
// Values written during a request are visible to later reads of the same request.
type Store struct {
	c       *gin.Context
	secure  bool
	written *preferences.MemoryStore
}

func NewStore(c *gin.Context, secure bool) *Store {
	return &Store{c: c, secure: secure, written: preferences.NewMemoryStore()}
}

func (s *Store) Get(key string) (string, bool) {
	if value, ok := s.written.Get(key); ok {
		return value, true
	}
	value, err := s.c.Cookie(key)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *Store) Set(key, value string) {
	s.written.Set(key, value)
	// Not HttpOnly: the page script applies theme and dark mode before first paint.
	http.SetCookie(s.c.Writer, &http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		MaxAge:   maxAge,
		Path:     "/",
		Secure:   s.secure,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

var _ ports.PreferenceStore = (*Store)(nil)
