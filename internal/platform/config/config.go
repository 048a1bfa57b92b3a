package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr           string
	DatabaseURL    string
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         int
	AllowedOrigins []string
	FrontendDir    string
	Environment    string
	RunMigrations  bool
	SeedSampleData bool
	MaxBodyBytes   int64
}

func Load() Config {
	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DBHost:         getEnv("PGHOST", "localhost"),
		DBUser:         getEnv("PGUSER", "hrms"),
		DBPassword:     getEnv("PGPASSWORD", "hrmspass"),
		DBName:         getEnv("PGDATABASE", "hrms_db"),
		DBPort:         getEnvInt("PGPORT", 5432),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		FrontendDir:    getEnv("FRONTEND_DIR", "client/dist"),
		Environment:    getEnv("APP_ENV", "development"),
		RunMigrations:  getEnvBool("RUN_MIGRATIONS", true),
		SeedSampleData: getEnvBool("SEED_SAMPLE_DATA", false),
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
	}
}

// ConnString returns DATABASE_URL when set, otherwise a URL built from the
// individual PG* settings.
func (c Config) ConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:   c.DBName,
	}
	return u.String()
}

func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		if strings.TrimSpace(c.DBHost) == "" {
			return fmt.Errorf("PGHOST is required when DATABASE_URL is not set")
		}
		if strings.TrimSpace(c.DBName) == "" {
			return fmt.Errorf("PGDATABASE is required when DATABASE_URL is not set")
		}
		if c.DBPort <= 0 || c.DBPort > 65535 {
			return fmt.Errorf("PGPORT must be a valid port number")
		}
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGINS must list at least one origin")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
