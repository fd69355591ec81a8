package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

const devJWTSecret = "dev-secret-change-in-production"

// Supported values for DB_DRIVER.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

type Config struct {
	Port        string
	Env         string
	LogLevel    slog.Level
	DBDriver    string
	DatabaseDSN string
	AutoMigrate bool
	JWTSecret   string
	JWTExpiry   time.Duration
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		LogLevel:    parseLevel(getEnv("LOG_LEVEL", "info")),
		DBDriver:    getEnv("DB_DRIVER", DriverMySQL),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/notes?parseTime=true"),
		AutoMigrate: getBool("AUTO_MIGRATE", true),
		JWTSecret:   getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:   getDuration("JWT_EXPIRY", 24*time.Hour),
	}

	if cfg.IsProduction() && cfg.JWTSecret == devJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

// IsProduction reports whether the service runs with ENV=production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks the settings that would otherwise fail late, at the first query.
func (c Config) Validate() error {
	var problems []string

	switch c.DBDriver {
	case DriverMySQL:
		dsn, err := mysql.ParseDSN(c.DatabaseDSN)
		if err != nil {
			problems = append(problems, fmt.Sprintf("DATABASE_DSN: %v", err))
		} else if !dsn.ParseTime {
			problems = append(problems, "DATABASE_DSN: parseTime=true is required")
		}
	case DriverSQLite:
		if c.DatabaseDSN == "" {
			problems = append(problems, "DATABASE_DSN is required")
		}
	default:
		problems = append(problems, fmt.Sprintf("DB_DRIVER %q is not supported", c.DBDriver))
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required")
	}
	if c.JWTExpiry <= 0 {
		problems = append(problems, "JWT_EXPIRY must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
