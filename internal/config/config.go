package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds all configuration for the application
type Config struct {
	// Storage
	DataDir string

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Projections
	ProjectionMonths int

	// SnapshotSchedule is a standard five-field cron spec for the net worth snapshot worker
	SnapshotSchedule string

	// Rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int

	// S3 backups
	S3 S3Config
}

// S3Config holds AWS S3 configuration
type S3Config struct {
	Region          string
	Bucket          string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // Optional: for MinIO/LocalStack local dev
}

// Enabled reports whether backups have somewhere to go
func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

// IsProduction reports whether the app runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:            getEnv("DATA_DIR", "./data"),
		Port:               getEnv("PORT", "8080"),
		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		Env:                getEnv("ENV", "development"),
		ProjectionMonths:   getEnvInt("PROJECTION_MONTHS", 12),
		SnapshotSchedule:   getEnv("SNAPSHOT_SCHEDULE", "0 3 1 * *"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 30),
		S3: S3Config{
			Region:          getEnv("S3_REGION", "eu-west-1"),
			Bucket:          getEnv("S3_BUCKET", ""),
			Prefix:          getEnv("S3_PREFIX", "kasboek"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""), // Empty = use AWS, set for MinIO/LocalStack
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.ProjectionMonths < 1 || c.ProjectionMonths > 120 {
		return fmt.Errorf("PROJECTION_MONTHS must be between 1 and 120, got %d", c.ProjectionMonths)
	}
	if c.RateLimitPerMinute < 1 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive")
	}
	if c.SnapshotSchedule != "" {
		if _, err := cron.ParseStandard(c.SnapshotSchedule); err != nil {
			return fmt.Errorf("SNAPSHOT_SCHEDULE is invalid: %w", err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns -1 for values that do not parse so validate reports them
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return -1
	}
	return n
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
