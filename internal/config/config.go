package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	JWT        JWTConfig
	Attendance AttendanceConfig
	Bkash      BkashConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Timezone string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AttendanceConfig holds the ingestion and classification knobs of the
// reconciliation engine. The hour cutoffs are wall-clock hours in the
// configured company timezone.
type AttendanceConfig struct {
	// ImportCutoff is the oldest device history instant worth importing;
	// anything earlier is skipped as stale.
	ImportCutoff time.Time
	// DebounceWindow collapses repeated taps on the terminal.
	DebounceWindow time.Duration
	// PushOutCutoffHour: push events at/after this local hour are Out.
	PushOutCutoffHour int
	// PushKey authenticates terminals posting to the public push
	// endpoint. Empty disables the endpoint.
	PushKey string
	// DeviceSyncInterval drives the optional background sync job;
	// zero disables it.
	DeviceSyncInterval time.Duration
	// AgentURL is the base URL of the LAN agent that talks to the
	// terminals on our behalf.
	AgentURL string
}

type BkashConfig struct {
	BaseURL   string
	AppKey    string
	AppSecret string
	Username  string
	Password  string
	TokenTTL  time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hazira"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("APP_TIMEZONE", "Asia/Dhaka"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	importCutoff, err := time.Parse("2006-01-02", getEnv("ATTENDANCE_IMPORT_CUTOFF", "2025-01-01"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_IMPORT_CUTOFF: %w", err)
	}

	debounce, err := time.ParseDuration(getEnv("ATTENDANCE_DEBOUNCE_WINDOW", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_DEBOUNCE_WINDOW: %w", err)
	}

	pushCutoff, err := strconv.Atoi(getEnv("ATTENDANCE_PUSH_OUT_CUTOFF_HOUR", "13"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_PUSH_OUT_CUTOFF_HOUR: %w", err)
	}

	syncInterval := time.Duration(0)
	if raw := getEnv("DEVICE_SYNC_INTERVAL", ""); raw != "" {
		syncInterval, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid DEVICE_SYNC_INTERVAL: %w", err)
		}
	}

	config.Attendance = AttendanceConfig{
		ImportCutoff:       importCutoff,
		DebounceWindow:     debounce,
		PushOutCutoffHour:  pushCutoff,
		PushKey:            getEnv("DEVICE_PUSH_KEY", ""),
		DeviceSyncInterval: syncInterval,
		AgentURL:           getEnv("DEVICE_AGENT_URL", "http://127.0.0.1:8090"),
	}

	tokenTTL, err := time.ParseDuration(getEnv("BKASH_TOKEN_TTL", "20m"))
	if err != nil {
		return nil, fmt.Errorf("invalid BKASH_TOKEN_TTL: %w", err)
	}

	config.Bkash = BkashConfig{
		BaseURL:   getEnv("BKASH_BASE_URL", "https://tokenized.pay.bka.sh/v1.2.0-beta"),
		AppKey:    getEnv("BKASH_APP_KEY", ""),
		AppSecret: getEnv("BKASH_APP_SECRET", ""),
		Username:  getEnv("BKASH_USERNAME", ""),
		Password:  getEnv("BKASH_PASSWORD", ""),
		TokenTTL:  tokenTTL,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	if c.Attendance.DebounceWindow < 0 {
		return fmt.Errorf("ATTENDANCE_DEBOUNCE_WINDOW must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location resolves the configured company timezone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
