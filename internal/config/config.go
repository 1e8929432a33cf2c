// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Environment constants
const (
	EnvProduction = "production"
)

// insecureDevInviteSecret is the development fallback for the invitation
// token HMAC key. Validate rejects it in production.
const insecureDevInviteSecret = "dev-invite-secret-do-not-use-in-prod"

// Config holds all application configuration.
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
	IdP       IdPConfig
	Invite    InviteConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Jobs      JobsConfig
	Email     EmailConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name  string
	Env   string
	Debug bool
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	RequestTimeout  time.Duration // Per-request handler timeout
	ShutdownTimeout time.Duration
	MaxBodySize     int64
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string

	// SkipHealthLogs skips request logging for health check endpoints.
	SkipHealthLogs bool
}

// IdPConfig holds external identity provider configuration.
type IdPConfig struct {
	// IssuerURL is the expected token issuer (e.g. "https://auth.example.com").
	IssuerURL string
	// JWKSURL is the provider's JWKS endpoint. Derived from IssuerURL when
	// empty.
	JWKSURL string
	// Audience is the expected audience claim (optional).
	Audience string
	// JWKSRefreshInterval is how often to refresh JWKS keys.
	JWKSRefreshInterval time.Duration
	// HTTPTimeout is the timeout for HTTP requests to the provider.
	HTTPTimeout time.Duration
}

// ResolveJWKSURL returns the JWKS endpoint URL.
func (c *IdPConfig) ResolveJWKSURL() string {
	if c.JWKSURL != "" {
		return c.JWKSURL
	}
	return strings.TrimSuffix(c.IssuerURL, "/") + "/.well-known/jwks.json"
}

// InviteConfig holds invitation token configuration.
type InviteConfig struct {
	// TokenSecret is the HMAC key for invitation token hashing. Rotating it
	// invalidates all outstanding invitations.
	TokenSecret string
	// Expiry is the invitation validity window.
	Expiry time.Duration
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	Enabled         bool
	RequestsPerSec  float64
	Burst           int
	CleanupInterval time.Duration
}

// JobsConfig holds background job worker configuration.
type JobsConfig struct {
	Enabled     bool
	Concurrency int
	Queue       string
}

// EmailConfig holds outgoing email configuration for invitation delivery.
type EmailConfig struct {
	Enabled  bool
	From     string
	FromName string
	// BaseURL is the frontend base URL for invitation links
	// (e.g. https://app.campaignhub.io).
	BaseURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPTLS      bool
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:  getEnv("APP_NAME", "campaignhub"),
			Env:   getEnv("APP_ENV", "development"),
			Debug: getEnvBool("APP_DEBUG", false),
		},
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			RequestTimeout:  getEnvDuration("SERVER_REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			MaxBodySize:     getEnvInt64("SERVER_MAX_BODY_SIZE", 1<<20), // 1MB default
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "campaignhub"),
			Password:        getEnv("DB_PASSWORD", "secret"),
			Name:            getEnv("DB_NAME", "campaignhub"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnvInt("REDIS_PORT", 6379),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvInt("REDIS_DB", 0),
			PoolSize:     getEnvInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Log: LogConfig{
			Level:          getEnv("LOG_LEVEL", "info"),
			Format:         getEnv("LOG_FORMAT", "json"),
			SkipHealthLogs: getEnvBool("LOG_SKIP_HEALTH", true),
		},
		IdP: IdPConfig{
			IssuerURL:           getEnv("IDP_ISSUER_URL", "http://localhost:9000"),
			JWKSURL:             getEnv("IDP_JWKS_URL", ""),
			Audience:            getEnv("IDP_AUDIENCE", ""),
			JWKSRefreshInterval: getEnvDuration("IDP_JWKS_REFRESH_INTERVAL", 1*time.Hour),
			HTTPTimeout:         getEnvDuration("IDP_HTTP_TIMEOUT", 10*time.Second),
		},
		Invite: InviteConfig{
			TokenSecret: getEnv("INVITE_TOKEN_SECRET", insecureDevInviteSecret),
			Expiry:      getEnvDuration("INVITE_EXPIRY", 7*24*time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}),
			AllowedHeaders: getEnvSlice("CORS_ALLOWED_HEADERS", []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"}),
			MaxAge:         getEnvInt("CORS_MAX_AGE", 86400),
		},
		RateLimit: RateLimitConfig{
			Enabled:         getEnvBool("RATE_LIMIT_ENABLED", true),
			RequestsPerSec:  getEnvFloat("RATE_LIMIT_RPS", 100),
			Burst:           getEnvInt("RATE_LIMIT_BURST", 200),
			CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP", 1*time.Minute),
		},
		Jobs: JobsConfig{
			Enabled:     getEnvBool("JOBS_ENABLED", true),
			Concurrency: getEnvInt("JOBS_CONCURRENCY", 10),
			Queue:       getEnv("JOBS_QUEUE", "default"),
		},
		Email: EmailConfig{
			Enabled:  getEnvBool("EMAIL_ENABLED", false),
			From:     getEnv("EMAIL_FROM", "no-reply@campaignhub.io"),
			FromName: getEnv("EMAIL_FROM_NAME", "CampaignHub"),
			BaseURL:  getEnv("EMAIL_BASE_URL", "http://localhost:3000"),

			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnvInt("SMTP_PORT", 587),
			SMTPUser:     getEnv("SMTP_USER", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			SMTPTLS:      getEnvBool("SMTP_TLS", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.validateBasic(); err != nil {
		return err
	}
	if c.App.Env == EnvProduction {
		return c.validateProduction()
	}
	return nil
}

// validateBasic validates basic configuration regardless of environment.
func (c *Config) validateBasic() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Invite.TokenSecret == "" {
		return fmt.Errorf("INVITE_TOKEN_SECRET must not be empty")
	}
	if c.Invite.Expiry <= 0 {
		return fmt.Errorf("INVITE_EXPIRY must be positive")
	}
	return c.validateLog()
}

// validateLog validates logging configuration.
func (c *Config) validateLog() error {
	validLevels := map[string]bool{
		"debug": true, "DEBUG": true,
		"info": true, "INFO": true,
		"warn": true, "WARN": true,
		"error": true, "ERROR": true,
	}
	if c.Log.Level != "" && !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid LOG_LEVEL: %s (must be debug, info, warn, or error)", c.Log.Level)
	}

	validFormats := map[string]bool{
		"json": true, "JSON": true,
		"text": true, "TEXT": true,
		"": true, // Empty is allowed (defaults to json)
	}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid LOG_FORMAT: %s (must be json or text)", c.Log.Format)
	}

	return nil
}

// validateProduction validates production-specific configuration.
func (c *Config) validateProduction() error {
	if c.Invite.TokenSecret == insecureDevInviteSecret {
		return fmt.Errorf("INVITE_TOKEN_SECRET must be set in production")
	}
	if len(c.Invite.TokenSecret) < 32 {
		return fmt.Errorf("INVITE_TOKEN_SECRET must be at least 32 characters in production")
	}
	if c.IdP.IssuerURL == "" || strings.HasPrefix(c.IdP.IssuerURL, "http://localhost") {
		return fmt.Errorf("IDP_ISSUER_URL must be set in production")
	}
	if !strings.HasPrefix(c.IdP.IssuerURL, "https://") {
		return fmt.Errorf("IDP_ISSUER_URL must use HTTPS in production")
	}
	if slices.Contains(c.CORS.AllowedOrigins, "*") {
		return fmt.Errorf("CORS wildcard origin not allowed in production")
	}
	if c.Database.SSLMode == "disable" {
		return fmt.Errorf("database SSL must be enabled in production (use 'require' or 'verify-full')")
	}
	if !c.RateLimit.Enabled {
		return fmt.Errorf("rate limiting must be enabled in production")
	}
	if c.App.Debug {
		return fmt.Errorf("debug mode must be disabled in production")
	}
	if c.Log.Level == "debug" {
		return fmt.Errorf("log level should not be 'debug' in production")
	}
	if c.Redis.Password == "" {
		return fmt.Errorf("redis password must be set in production")
	}
	return nil
}

// DSN returns the database connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Addr returns the Redis address.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Addr returns the HTTP server address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDevelopment returns true if the application is in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if the application is in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == EnvProduction
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		var result []string
		for _, p := range strings.Split(value, ",") {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
