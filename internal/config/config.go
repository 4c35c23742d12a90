package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/Footy64/api/pkg/database"
)

type Config struct {
	Port     string
	Postgres database.Config

	JWTSecret string
	TokenTTL  time.Duration

	CORSAllowedOrigins []string

	MigrationsPath string
}

func Load() *Config {
	return &Config{
		Port: getEnv("SERVER_PORT", "8080"),
		Postgres: database.Config{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			Username: getEnv("POSTGRES_USERNAME", ""),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", ""),
			SSLMode:  getEnv("DB_SSL", "disable"),
		},

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getDurationEnv("JWT_EXPIRES_IN", 15*time.Minute),

		CORSAllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:4200"}),

		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if defaultValue == "" {
		log.Fatalf("environment variable %s is required", key)
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("warning: invalid duration value for %s, using default %v", key, defaultValue)
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
