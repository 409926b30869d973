package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration, all env-driven.
type Config struct {
	Host           string
	Port           string
	AllowedOrigins string

	// RateLimitRPS is the per-client request budget enforced at the HTTP
	// layer. Admission control lives here, not in the scraper.
	RateLimitRPS float64

	// SettleDelay is the flat wait between navigation and DOM queries.
	SettleDelay time.Duration

	// CheckSchedule is the cron spec for rechecking watched URLs.
	CheckSchedule string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Host:           getEnv("HOST", "0.0.0.0"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		SettleDelay:    getEnvDuration("SETTLE_DELAY", 3*time.Second),
		CheckSchedule:  getEnv("CHECK_SCHEDULE", "0 0 */6 * * *"),
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
