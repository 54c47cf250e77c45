package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Recon    ReconConfig
}

type DatabaseConfig struct {
	// URL overrides the composed connection string when set
	// (DATABASE_URL), for managed databases handing out full DSNs.
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	// Pool sizing and the deadline for establishing the first
	// connection.
	MaxConns       int
	MinConns       int
	ConnectTimeout time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// ReconConfig holds reconciliation engine tuning values.
type ReconConfig struct {
	// Timezone defines the local calendar used for "today" in
	// month-to-date calculations.
	Timezone string
	// ToleranceHours absorbs rounding noise when comparing actual
	// hours against plan and permitted ceilings.
	ToleranceHours float64
	// WindowCollapseHours is the threshold above which the three
	// weekly-template windows of one weekday are treated as duplicates
	// of one long shift and only the longest window counts.
	WindowCollapseHours float64
	// Workers bounds the per-employee fan-out.
	Workers int
	// DefaultRegion is the holiday region every employee is classified
	// under.
	DefaultRegion string
}

func Load() (*Config, error) {
	// Missing .env is fine in containerized deploys; env vars win.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	dbConnectTimeout, err := time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
	}

	config.Database = DatabaseConfig{
		URL:            getEnv("DATABASE_URL", ""),
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           dbPort,
		User:           getEnv("DB_USER", "postgres"),
		Password:       getEnv("DB_PASSWORD", ""),
		Name:           getEnv("DB_NAME", "timerecon"),
		SSLMode:        getEnv("DB_SSL_MODE", "disable"),
		MaxConns:       dbMaxConns,
		MinConns:       dbMinConns,
		ConnectTimeout: dbConnectTimeout,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Reconciliation engine configuration
	tolerance, err := strconv.ParseFloat(getEnv("RECON_TOLERANCE_HOURS", "0.25"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RECON_TOLERANCE_HOURS: %w", err)
	}

	collapse, err := strconv.ParseFloat(getEnv("RECON_WINDOW_COLLAPSE_HOURS", "22"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RECON_WINDOW_COLLAPSE_HOURS: %w", err)
	}

	workers, err := strconv.Atoi(getEnv("RECON_WORKERS", strconv.Itoa(runtime.NumCPU())))
	if err != nil {
		return nil, fmt.Errorf("invalid RECON_WORKERS: %w", err)
	}

	config.Recon = ReconConfig{
		Timezone:            getEnv("RECON_TIMEZONE", "Europe/Madrid"),
		ToleranceHours:      tolerance,
		WindowCollapseHours: collapse,
		Workers:             workers,
		DefaultRegion:       getEnv("RECON_DEFAULT_REGION", "MAD"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.URL == "" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD or DATABASE_URL is required")
	}
	if c.Database.MinConns < 1 || c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("DB_MAX_CONNS/DB_MIN_CONNS must satisfy 1 <= min <= max")
	}
	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("DB_CONNECT_TIMEOUT must be positive")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Recon.ToleranceHours < 0 {
		return fmt.Errorf("RECON_TOLERANCE_HOURS must not be negative")
	}
	if c.Recon.WindowCollapseHours <= 0 {
		return fmt.Errorf("RECON_WINDOW_COLLAPSE_HOURS must be positive")
	}
	if c.Recon.Workers < 1 {
		return fmt.Errorf("RECON_WORKERS must be at least 1")
	}
	return nil
}

// DSN returns the PostgreSQL connection string, preferring the full
// DATABASE_URL when one was provided.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Name,
		d.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
