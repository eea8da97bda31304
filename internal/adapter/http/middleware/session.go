package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"schedshare/internal/core/domain"
)

const userIDKey = "user_id"

// SessionCookie reads and writes the opaque session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (s SessionCookie) Token(c *gin.Context) string {
	token, err := c.Cookie(s.Name)
	if err != nil {
		return ""
	}
	return token
}

func (s SessionCookie) Set(c *gin.Context, session domain.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, session.Token, maxAge, "/", "", s.Secure, true)
}

func (s SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, "", -1, "/", "", s.Secure, true)
}

// SetUserID tags the request with the signed-in user for request logs.
func SetUserID(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}

func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
