package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	ServerPort string

	// sqlite (padrão, arquivo local) ou postgres via DATABASE_URL
	DBType string
	DBPath string
	DBUrl  string

	JWTSecret  string
	UsersFile  string
	SessionTTL int // horas

	GeminiAPIKey string
	GeminiModel  string

	Timezone           string
	AuditRetentionDays int
	LogLevel           string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBType: getEnv("DB_TYPE", "sqlite"),
		DBPath: getEnv("DB_PATH", "salesmaster.db"),
		DBUrl:  getEnv("DATABASE_URL", ""),

		JWTSecret:  getEnv("JWT_SECRET", ""),
		UsersFile:  getEnv("USERS_FILE", ""),
		SessionTTL: getEnvInt("SESSION_TTL_HOURS", 24),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),

		Timezone:           getEnv("TZ_NAME", "America/Sao_Paulo"),
		AuditRetentionDays: getEnvInt("AUDIT_RETENTION_DAYS", 90),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
