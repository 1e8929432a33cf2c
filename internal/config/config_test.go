package config

import (
	"strings"
	"testing"
	"time"
)

func loadDefault(t *testing.T) *Config {
	t.Helper()
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadDefault(t)

	if cfg.App.Env != "development" {
		t.Errorf("App.Env = %q, want development", cfg.App.Env)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Invite.Expiry != 7*24*time.Hour {
		t.Errorf("Invite.Expiry = %v, want 168h", cfg.Invite.Expiry)
	}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("default env should be development")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("INVITE_EXPIRY", "48h")
	t.Setenv("LOG_LEVEL", "warn")

	cfg := loadDefault(t)

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Invite.Expiry != 48*time.Hour {
		t.Errorf("Invite.Expiry = %v, want 48h", cfg.Invite.Expiry)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("invalid port", func(t *testing.T) {
		cfg := loadDefault(t)
		cfg.Server.Port = 0
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject port 0")
		}
	})

	t.Run("empty invite secret", func(t *testing.T) {
		cfg := loadDefault(t)
		cfg.Invite.TokenSecret = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject empty invite secret")
		}
	})

	t.Run("non-positive invite expiry", func(t *testing.T) {
		cfg := loadDefault(t)
		cfg.Invite.Expiry = 0
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject zero expiry")
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := loadDefault(t)
		cfg.Log.Level = "verbose"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject unknown log level")
		}
	})
}

// productionConfig returns a config that passes production validation, for
// tests to break one field at a time.
func productionConfig(t *testing.T) *Config {
	cfg := loadDefault(t)
	cfg.App.Env = EnvProduction
	cfg.Invite.TokenSecret = strings.Repeat("s", 32)
	cfg.IdP.IssuerURL = "https://idp.example.com"
	cfg.CORS.AllowedOrigins = []string{"https://app.example.com"}
	cfg.Database.SSLMode = "require"
	cfg.RateLimit.Enabled = true
	cfg.Redis.Password = "redis-secret"
	return cfg
}

func TestConfig_ValidateProduction(t *testing.T) {
	t.Run("hardened config passes", func(t *testing.T) {
		if err := productionConfig(t).Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	breakers := []struct {
		name  string
		mutate func(*Config)
	}{
		{"dev invite secret", func(c *Config) { c.Invite.TokenSecret = insecureDevInviteSecret }},
		{"short invite secret", func(c *Config) { c.Invite.TokenSecret = "short" }},
		{"localhost issuer", func(c *Config) { c.IdP.IssuerURL = "http://localhost:9000" }},
		{"plain http issuer", func(c *Config) { c.IdP.IssuerURL = "http://idp.example.com" }},
		{"wildcard CORS", func(c *Config) { c.CORS.AllowedOrigins = []string{"*"} }},
		{"ssl disabled", func(c *Config) { c.Database.SSLMode = "disable" }},
		{"rate limit off", func(c *Config) { c.RateLimit.Enabled = false }},
		{"debug on", func(c *Config) { c.App.Debug = true }},
		{"debug log level", func(c *Config) { c.Log.Level = "debug" }},
		{"no redis password", func(c *Config) { c.Redis.Password = "" }},
	}

	for _, tt := range breakers {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig(t)
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() should fail with %s", tt.name)
			}
		})
	}
}

func TestAddrHelpers(t *testing.T) {
	cfg := loadDefault(t)
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8081
	if cfg.Server.Addr() != "127.0.0.1:8081" {
		t.Errorf("Server.Addr() = %q", cfg.Server.Addr())
	}

	cfg.Redis.Host = "redis"
	cfg.Redis.Port = 6380
	if cfg.Redis.Addr() != "redis:6380" {
		t.Errorf("Redis.Addr() = %q", cfg.Redis.Addr())
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := loadDefault(t)
	dsn := cfg.Database.DSN()
	for _, part := range []string{"host=", "port=", "user=", "dbname=", "sslmode="} {
		if !strings.Contains(dsn, part) {
			t.Errorf("DSN() missing %q: %s", part, dsn)
		}
	}
}
