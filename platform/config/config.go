// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// Database drivers understood by the store layer.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Session store backends for the assistant.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseDriver() string
	GetDatabaseURL() string
	ShouldSeedDemoData() bool
}

// JWTConfig provides JWT validation settings for the admin guard.
type JWTConfig interface {
	GetJWTAccessSecret() string
	IsAdminEnabled() bool
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// SchedulerConfig provides settings for asynq background jobs.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
	GetWeeklyReportCron() string
}

// SessionConfig provides settings for assistant session storage.
type SessionConfig interface {
	GetSessionStore() string
	GetSessionTTL() time.Duration
	GetRedisURL() string
}

// AnalyticsConfig provides thresholds for the analytics surfaces.
type AnalyticsConfig interface {
	GetSyntheticMinLeads() int
}

// SMTPConfig provides settings for emailing the weekly report.
type SMTPConfig interface {
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetSMTPFrom() string
	GetReportRecipient() string
	IsReportEmailEnabled() bool
}

// ReportStorageConfig provides settings for archiving reports in MinIO.
type ReportStorageConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinioBucketReports() string
	IsMinIOEnabled() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env               string
	HTTPAddr          string
	DatabaseDriver    string
	DatabaseURL       string
	SeedDemoData      bool
	CORSAllowAll      bool
	CORSOrigins       []string
	CORSAllowCreds    bool
	RateLimitRPS      float64
	RateLimitBurst    int
	JWTAccessSecret   string
	RedisURL          string
	RedisTLSInsecure  bool
	SessionStore      string
	SessionTTL        time.Duration
	AsynqQueueName    string
	AsynqConcurrency  int
	WeeklyReportCron  string
	SyntheticMinLeads int
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
	SMTPFrom          string
	ReportRecipient   string
	MinIOEndpoint     string
	MinIOAccessKey    string
	MinIOSecretKey    string
	MinIOUseSSL       bool
	MinioBucketReport string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseDriver() string { return c.DatabaseDriver }
func (c *Config) GetDatabaseURL() string    { return c.DatabaseURL }
func (c *Config) ShouldSeedDemoData() bool  { return c.SeedDemoData }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }
func (c *Config) IsAdminEnabled() bool       { return c.JWTAccessSecret != "" }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string         { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool   { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string   { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int    { return c.AsynqConcurrency }
func (c *Config) GetWeeklyReportCron() string { return c.WeeklyReportCron }

// SessionConfig implementation
func (c *Config) GetSessionStore() string      { return c.SessionStore }
func (c *Config) GetSessionTTL() time.Duration { return c.SessionTTL }

// AnalyticsConfig implementation
func (c *Config) GetSyntheticMinLeads() int { return c.SyntheticMinLeads }

// SMTPConfig implementation
func (c *Config) GetSMTPHost() string        { return c.SMTPHost }
func (c *Config) GetSMTPPort() int           { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string    { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string    { return c.SMTPPassword }
func (c *Config) GetSMTPFrom() string        { return c.SMTPFrom }
func (c *Config) GetReportRecipient() string { return c.ReportRecipient }
func (c *Config) IsReportEmailEnabled() bool {
	return c.SMTPHost != "" && c.ReportRecipient != ""
}

// ReportStorageConfig implementation
func (c *Config) GetMinIOEndpoint() string      { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string     { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string     { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool          { return c.MinIOUseSSL }
func (c *Config) GetMinioBucketReports() string { return c.MinioBucketReport }
func (c *Config) IsMinIOEnabled() bool          { return c.MinIOEndpoint != "" }

// Load reads configuration from the environment, loading a .env file first
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		DatabaseDriver:    strings.ToLower(getEnv("DATABASE_DRIVER", DriverSQLite)),
		DatabaseURL:       getEnv("DATABASE_URL", "file:salesspark.db"),
		SeedDemoData:      strings.EqualFold(getEnv("SEED_DEMO_DATA", "true"), "true"),
		CORSAllowAll:      corsAllowAll,
		CORSOrigins:       corsOrigins,
		CORSAllowCreds:    strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		RateLimitRPS:      mustFloat(getEnv("RATE_LIMIT_RPS", "20")),
		RateLimitBurst:    mustInt(getEnv("RATE_LIMIT_BURST", "40")),
		JWTAccessSecret:   getEnv("JWT_ACCESS_SECRET", ""),
		RedisURL:          getEnv("REDIS_URL", ""),
		RedisTLSInsecure:  strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		SessionStore:      strings.ToLower(getEnv("SESSION_STORE", SessionStoreMemory)),
		SessionTTL:        mustDuration(getEnv("SESSION_TTL", "0s")),
		AsynqQueueName:    getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:  mustInt(getEnv("ASYNQ_CONCURRENCY", "5")),
		WeeklyReportCron:  getEnv("WEEKLY_REPORT_CRON", "0 8 * * 1"),
		SyntheticMinLeads: mustInt(getEnv("SYNTHETIC_MIN_LEADS", "10")),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:          getEnv("SMTP_FROM", ""),
		ReportRecipient:   getEnv("REPORT_RECIPIENT", ""),
		MinIOEndpoint:     getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:    getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:    getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:       strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinioBucketReport: getEnv("MINIO_BUCKET_REPORTS", "weekly-reports"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DatabaseDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DatabaseDriver)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	switch c.SessionStore {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when SESSION_STORE is redis")
		}
	default:
		return fmt.Errorf("SESSION_STORE must be %q or %q, got %q", SessionStoreMemory, SessionStoreRedis, c.SessionStore)
	}
	if c.SyntheticMinLeads < 0 {
		return fmt.Errorf("SYNTHETIC_MIN_LEADS cannot be negative")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.IsReportEmailEnabled() && c.SMTPFrom == "" {
		return fmt.Errorf("SMTP_FROM is required when report email is enabled")
	}
	if c.CORSAllowAll && c.CORSAllowCreds {
		return fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
