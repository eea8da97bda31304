package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schedshare/internal/adapter/http/handlers"
	"schedshare/internal/adapter/http/middleware"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Dashboard *handlers.PageHandler
	Calendar  *handlers.PageHandler
	Settings  *handlers.SettingsHandler
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.Use(middleware.LanguageMiddleware())

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, handlers.DashboardPath) })

	api := r.Group("/api")
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics))
	}

	auth := r.Group("/auth")
	{
		auth.GET("/login", h.Auth.LoginHint)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/sign-up", h.Auth.SignUp)
		auth.GET("/sign-up-success", h.Auth.SignUpSuccess)
		auth.POST("/logout", h.Auth.Logout)
	}

	registerPage(r.Group("/dashboard"), h.Dashboard)
	registerPage(r.Group("/calendar"), h.Calendar)

	settings := r.Group("/settings")
	{
		settings.GET("", h.Settings.Show)
		settings.PUT("/theme", h.Settings.SetTheme)
		settings.PUT("/dark-mode", h.Settings.SetDarkMode)
	}
}

func registerPage(g *gin.RouterGroup, page *handlers.PageHandler) {
	g.GET("", page.Show)
	g.PUT("/filter", page.SetFilter)
	g.POST("/tasks", page.CreateTask)
	g.GET("/tasks/:id", page.ShowTask)
	g.PUT("/tasks/:id", page.UpdateTask)
	g.DELETE("/tasks/:id", page.DeleteTask)
}
