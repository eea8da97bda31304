package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "schedshare/internal/adapter/db"
	httpadapter "schedshare/internal/adapter/http"
	"schedshare/internal/adapter/http/handlers"
	httpmiddleware "schedshare/internal/adapter/http/middleware"
	"schedshare/internal/app/preferences"
	appservice "schedshare/internal/app/service"
	"schedshare/internal/config"
	"schedshare/pkg/translator"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var (
		debug       bool
		addr        string
		skipMigrate bool
		noMetrics   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := initLogger(debug)
			if err != nil {
				return err
			}
			defer syncLogger(logger)

			cfg := config.LoadConfig()
			if addr == "" {
				addr = ":" + cfg.AppPort
			}

			translator.InitTranslator(translator.Config{
				TranslationFolder:  cfg.TranslationFolder,
				SupportedLanguages: []string{translator.LanguageEn, translator.LanguageId},
			})

			db, err := dbadapter.ConnectDB(cfg)
			if err != nil {
				logger.Error("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					logger.Warn("failed to close database connection", zap.Error(err))
				}
			}()

			if !skipMigrate {
				if err := dbadapter.Migrate(cmd.Context(), db, cfg.DbDriver); err != nil {
					logger.Error("failed to migrate database", zap.Error(err))
					return err
				}
			}

			var registry *prometheus.Registry
			if !noMetrics {
				registry = prometheus.NewRegistry()
				registry.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
					collectors.NewDBStatsCollector(db.DB, cfg.DbDriver),
				)
			}

			router, err := newRouter(cfg, db, logger, registry)
			if err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			serveErr := make(chan error, 1)
			go func() {
				logger.Info("starting server",
					zap.String("addr", httpServer.Addr),
					zap.String("driver", cfg.DbDriver),
					zap.String("version", version),
				)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err, ok := <-serveErr:
				if ok {
					logger.Error("server stopped unexpectedly", zap.Error(err))
					return err
				}
				return nil
			case sig := <-quit:
				logger.Info("shutting down", zap.String("signal", sig.String()))
			}

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(ctx); err != nil {
				logger.Error("failed to shutdown server", zap.Error(err))
				return err
			}
			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable development logging")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to :$APP_PORT)")
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not create the schema on startup")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "Disable the /metrics endpoint")
	return cmd
}

// newRouter wires repositories, services and handlers onto a gin engine.
// A nil registry disables metrics.
func newRouter(cfg *config.Config, db *sqlx.DB, logger *zap.Logger, registry *prometheus.Registry) (*gin.Engine, error) {
	if !logger.Core().Enabled(zap.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}

	loc := cfg.Location()
	users := dbadapter.NewUserRepository(db)
	taskService := appservice.NewTaskService(dbadapter.NewTaskRepository(db))
	authService := appservice.NewAuthService(users, users, cfg.SessionTTL)

	session := httpmiddleware.SessionCookie{Name: cfg.SessionCookieName, Secure: cfg.CookieSecure}
	pageConfig := handlers.PageConfig{Session: session, Location: loc}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Error("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
		return nil, err
	}
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))

	routes := httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(db, handlers.AppInfo{Name: cfg.AppName, Version: cfg.AppVersion, Location: loc}),
		Auth:      handlers.NewAuthHandler(authService, session),
		Dashboard: handlers.NewPageHandler(preferences.PageDashboard, authService, taskService, pageConfig),
		Calendar:  handlers.NewPageHandler(preferences.PageCalendar, authService, taskService, pageConfig),
		Settings:  handlers.NewSettingsHandler(authService, session),
	}
	if registry != nil {
		r.Use(httpmiddleware.NewMetrics(registry).Middleware())
		routes.Metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	}

	httpadapter.RegisterRoutes(r, routes)
	return r, nil
}
