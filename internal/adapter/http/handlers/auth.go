package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"schedshare/internal/adapter/http/dto"
	"schedshare/internal/adapter/http/mapper"
	"schedshare/internal/adapter/http/middleware"
	"schedshare/internal/app/service"
	"schedshare/internal/core/domain"
	"schedshare/internal/core/ports"
	"schedshare/pkg/apierrors"
)

const (
	SignUpPath        = "/auth/sign-up"
	SignUpSuccessPath = "/auth/sign-up-success"
	DashboardPath     = "/dashboard"
)

type AuthHandler struct {
	authService ports.AuthService
	session     middleware.SessionCookie
}

func NewAuthHandler(authService ports.AuthService, session middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, session: session}
}

// LoginHint sends signed-in users to the dashboard and describes the login form otherwise.
func (h *AuthHandler) LoginHint(c *gin.Context) {
	if _, err := h.authService.CurrentUser(c.Request.Context(), h.session.Token(c)); err == nil {
		c.Redirect(http.StatusFound, DashboardPath)
		return
	}

	c.JSON(http.StatusOK, dto.LoginHint{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgLoginRequired, middleware.GetLang(c)),
		SignUp:  SignUpPath,
		Login:   LoginPath,
	})
}

// Login checks the credentials and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CredentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAuthPayload, lang))
		return
	}

	session, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang))
			return
		}
		zap.L().Error("failed to sign in", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSignIn, lang))
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), session.Token)
	if err != nil {
		zap.L().Error("session not usable right after sign in", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSignIn, lang))
		return
	}

	h.session.Set(c, session)
	middleware.SetUserID(c, user.ID)
	c.JSON(http.StatusOK, dto.LoginResponse{User: mapper.ToUserItem(user), Redirect: DashboardPath})
}

// SignUp registers an account and points the client at the sign-up success page.
func (h *AuthHandler) SignUp(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CredentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAuthPayload, lang))
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgEmailTaken, lang))
		case errors.Is(err, service.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgWeakPassword, lang))
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAuthPayload, lang))
		default:
			zap.L().Error("failed to sign up", zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSignUp, lang))
		}
		return
	}

	c.Header("Location", SignUpSuccessPath)
	c.JSON(http.StatusCreated, dto.SignUpResponse{User: mapper.ToUserItem(user), Redirect: SignUpSuccessPath})
}

func (h *AuthHandler) SignUpSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SignUpSuccess{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgSignUpSuccess, middleware.GetLang(c)),
		Login:   LoginPath,
	})
}

// Logout always clears the cookie, even when the stored session cannot be deleted.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.SignOut(c.Request.Context(), h.session.Token(c)); err != nil {
		zap.L().Warn("failed to delete session", zap.Error(err))
	}
	h.session.Clear(c)
	c.Redirect(http.StatusFound, LoginPath)
}
