package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"schedshare/internal/adapter/http/middleware"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Database string `json:"database"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Driver            string         `json:"driver"`
	Timezone          string         `json:"timezone"`
	Status            HealthServices `json:"status"`
}

type AppInfo struct {
	Name     string
	Version  string
	Location *time.Location
}

type HealthHandler struct {
	db   *sqlx.DB
	info AppInfo
}

func NewHealthHandler(db *sqlx.DB, info AppInfo) *HealthHandler {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Location == nil {
		info.Location = time.Local
	}
	return &HealthHandler{db: db, info: info}
}

// CheckHealth answers 500 when the database does not respond to a ping.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkConnectionToDatabase(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           h.info.Name,
		AppVersion:        h.info.Version,
		CurrentSystemTime: h.systemTime(),
		Message:           message,
	})
}

// CheckHealthReport always answers 200 and reports each dependency separately.
func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	databaseStatus := StatusDown
	if h.checkConnectionToDatabase(c.Request.Context()) {
		databaseStatus = StatusOk
	}

	driver := ""
	if h.db != nil {
		driver = h.db.DriverName()
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           h.info.Name,
		AppVersion:        h.info.Version,
		CurrentSystemTime: h.systemTime(),
		Language:          middleware.GetLang(c),
		Driver:            driver,
		Timezone:          h.info.Location.String(),
		Status:            HealthServices{Database: databaseStatus},
	})
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func (h *HealthHandler) systemTime() string {
	return time.Now().In(h.info.Location).Format("2006-01-02 15:04:05")
}
