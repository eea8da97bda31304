package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schedshare/internal/adapter/http/cookies"
	"schedshare/internal/adapter/http/dto"
	"schedshare/internal/adapter/http/mapper"
	"schedshare/internal/adapter/http/middleware"
	"schedshare/internal/app/preferences"
	"schedshare/internal/core/domain"
	"schedshare/internal/core/ports"
	"schedshare/pkg/apierrors"
)

type SettingsHandler struct {
	authService ports.AuthService
	session     middleware.SessionCookie
}

func NewSettingsHandler(authService ports.AuthService, session middleware.SessionCookie) *SettingsHandler {
	return &SettingsHandler{authService: authService, session: session}
}

// Show returns the current appearance and the selectable theme colors.
func (h *SettingsHandler) Show(c *gin.Context) {
	user, prefs, ok := h.load(c)
	if !ok {
		return
	}
	h.render(c, user, prefs)
}

// SetTheme stores the theme color cookie.
func (h *SettingsHandler) SetTheme(c *gin.Context) {
	user, prefs, ok := h.load(c)
	if !ok {
		return
	}

	lang := middleware.GetLang(c)
	var req dto.ThemeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTheme, lang))
		return
	}
	theme, err := domain.ParseThemeColor(req.Theme)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTheme, lang))
		return
	}

	prefs.SetTheme(theme)
	h.render(c, user, prefs)
}

// SetDarkMode stores the dark mode cookie.
func (h *SettingsHandler) SetDarkMode(c *gin.Context) {
	user, prefs, ok := h.load(c)
	if !ok {
		return
	}

	var req dto.DarkModeRequest
	if err := c.ShouldBind(&req); err != nil {
		lang := middleware.GetLang(c)
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDarkMode, lang))
		return
	}

	prefs.SetDark(*req.Dark)
	h.render(c, user, prefs)
}

func (h *SettingsHandler) load(c *gin.Context) (domain.User, *preferences.Preferences, bool) {
	user, err := h.authService.CurrentUser(c.Request.Context(), h.session.Token(c))
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthenticated) {
			c.AbortWithStatus(http.StatusInternalServerError)
			return domain.User{}, nil, false
		}
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
		return domain.User{}, nil, false
	}
	middleware.SetUserID(c, user.ID)
	return user, preferences.New(cookies.NewStore(c, h.session.Secure)), true
}

func (h *SettingsHandler) render(c *gin.Context, user domain.User, prefs *preferences.Preferences) {
	colors := make([]string, 0, len(domain.ThemeColors))
	for _, color := range domain.ThemeColors {
		colors = append(colors, string(color))
	}
	c.JSON(http.StatusOK, dto.SettingsResponse{
		User:        mapper.ToUserItem(user),
		Appearance:  mapper.ToAppearanceItem(prefs.Appearance()),
		ThemeColors: colors,
	})
}
