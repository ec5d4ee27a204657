package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/josejalvarezm/autoinx-functions/internal/domain"
)

// Config holds application configuration
type Config struct {
	FirebaseProjectID   string
	FirebaseDatabaseURL string
	ConfigCollection    string
	ConfigDocument      string
	AuditPath           string
	ScheduleTimezone    string
	ScheduleCron        string
	SchedulerSecret     string
	AllowedOrigins      []string
	RateLimitRPS        int
	RateLimitBurst      int
	Port                string
	Environment         string
	LogLevel            string
	DefaultsFile        string

	// Defaults seeds the config document on first read
	Defaults domain.ConfigRecord
	// FallbackSchedule applies when the document has no chatSchedule
	FallbackSchedule domain.ChatSchedule
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		FirebaseProjectID:   os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseDatabaseURL: os.Getenv("FIREBASE_DATABASE_URL"),
		ConfigCollection:    getEnvOrDefault("CONFIG_COLLECTION", "settings"),
		ConfigDocument:      getEnvOrDefault("CONFIG_DOCUMENT", "adminConfig"),
		AuditPath:           getEnvOrDefault("CONFIG_AUDIT_PATH", "configAudit"),
		ScheduleTimezone:    getEnvOrDefault("SCHEDULE_TIMEZONE", "America/Bogota"),
		ScheduleCron:        getEnvOrDefault("SCHEDULE_CRON", "*/15 * * * *"),
		SchedulerSecret:     os.Getenv("SCHEDULER_SECRET"),
		AllowedOrigins:      splitList(getEnvOrDefault("ALLOWED_ORIGINS", "*")),
		Port:                getEnvOrDefault("PORT", "8080"),
		Environment:         getEnvOrDefault("ENVIRONMENT", "production"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		DefaultsFile:        os.Getenv("AUTOINX_DEFAULTS_FILE"),
		Defaults:            domain.DefaultConfig(),
		FallbackSchedule:    domain.DefaultChatSchedule(),
	}

	var err error
	if cfg.RateLimitRPS, err = getEnvInt("RATE_LIMIT_RPS", 100); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 20); err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.ConfigCollection == "" || cfg.ConfigDocument == "" {
		return nil, fmt.Errorf("CONFIG_COLLECTION and CONFIG_DOCUMENT must not be empty")
	}
	if len(cfg.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("ALLOWED_ORIGINS must list at least one origin")
	}

	if cfg.DefaultsFile != "" {
		if err := applyDefaultsFile(cfg, cfg.DefaultsFile); err != nil {
			return nil, fmt.Errorf("AUTOINX_DEFAULTS_FILE: %w", err)
		}
	}

	return cfg, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses a positive integer environment variable
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, value)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
