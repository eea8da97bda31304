package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	AppName           string
	AppVersion        string
	AppPort           string
	DbDriver          string
	SqlitePath        string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	Timezone          string
	SessionCookieName string
	SessionTTL        time.Duration
	CookieSecure      bool
	TranslationFolder string
	TrustedProxies    []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppName:           getEnv("APP_NAME", "Schedule Share"),
		AppVersion:        getEnv("APP_VERSION", "dev"),
		AppPort:           getEnv("APP_PORT", "8080"),
		DbDriver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		SqlitePath:        getEnv("SQLITE_PATH", "data/schedshare.db"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "schedshare"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "schedshare"),
		DbName:            getEnv("MYSQL_DATABASE", "schedshare"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		Timezone:          getEnv("TIMEZONE", "Local"),
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "schedshare_session"),
		SessionTTL:        getDuration("SESSION_TTL", 7*24*time.Hour),
		CookieSecure:      getBool("COOKIE_SECURE", false),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

// Location resolves Timezone, falling back to time.Local when it cannot be loaded.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
