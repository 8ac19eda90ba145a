// Package config exposes process configuration read from the environment,
// with defaults suitable for local development.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("DEVFOLIO_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("DEVFOLIO_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("DEVFOLIO_LISTEN")
}

func GetPort() int {
	return getEnvInt("PORT", 8000)
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("DEVFOLIO_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "db"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("DEVFOLIO_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

func GetMediaFolder() string {
	return getEnv("MEDIA_FOLDER", "media")
}

func GetStaticFolder() string {
	return getEnv("STATIC_FOLDER", "static")
}

func GetAdminUsername() string {
	return getEnv("ADMIN_USERNAME", "admin")
}

func GetAdminPassword() string {
	return getEnv("ADMIN_PASSWORD", "admin123")
}

// GetAllowedOrigins returns the frontend origins permitted by CORS,
// read from FRONTEND_URL as a comma separated list.
func GetAllowedOrigins() []string {
	raw := getEnv("FRONTEND_URL", "http://localhost:5173")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, strings.TrimSuffix(p, "/"))
		}
	}
	return origins
}

// GetBackendURL returns the externally visible base URL of this server,
// used to build absolute media links.
func GetBackendURL() string {
	return strings.TrimSuffix(getEnv("BACKEND_URL", "http://127.0.0.1:8000"), "/")
}

func GetMaxUploadBytes() int64 {
	return int64(getEnvInt("MAX_UPLOAD_BYTES", 5*1024*1024))
}

// GetTokenSecret returns the JWT signing secret from the environment.
// Empty means a generated secret persisted in the settings table is used.
func GetTokenSecret() string {
	return os.Getenv("JWT_SECRET")
}

func GetTokenMinutes() int {
	return getEnvInt("TOKEN_MINUTES", 30)
}

func GetSMTPHost() string {
	return os.Getenv("SMTP_HOST")
}

func GetSMTPPort() int {
	return getEnvInt("SMTP_PORT", 587)
}

func GetSMTPUsername() string {
	return os.Getenv("SMTP_USERNAME")
}

func GetSMTPPassword() string {
	return os.Getenv("SMTP_PASSWORD")
}

// GetContactRecipient returns the mailbox contact messages are relayed to.
func GetContactRecipient() string {
	return getEnv("CONTACT_EMAIL", GetSMTPUsername())
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
