package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Database: DatabaseConfig{
			Host:           "localhost",
			Port:           5432,
			User:           "postgres",
			Database:       "menudigitale",
			MaxConnections: 25,
			MinConnections: 5,
		},
		Logger: LoggerConfig{Level: "info", Format: "json"},
		Auth:   AuthConfig{JWTSecret: "test-secret", TokenTTL: 24 * time.Hour},
		Translation: TranslationConfig{
			Model:   "gpt-4o-mini",
			Timeout: 60 * time.Second,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "invalid server port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "missing database host",
			mutate:  func(c *Config) { c.Database.Host = "" },
			wantErr: "database host is required",
		},
		{
			name:    "min connections above max",
			mutate:  func(c *Config) { c.Database.MinConnections = 50 },
			wantErr: "min connections cannot exceed max",
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.Auth.JWTSecret = "" },
			wantErr: "JWT secret is required",
		},
		{
			name:    "token ttl too short",
			mutate:  func(c *Config) { c.Auth.TokenTTL = 10 * time.Second },
			wantErr: "token TTL",
		},
		{
			name:    "translation timeout too short",
			mutate:  func(c *Config) { c.Translation.Timeout = 100 * time.Millisecond },
			wantErr: "translation timeout",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logger.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Logger.Format = "xml" },
			wantErr: "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoad_DefaultsFromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TRANSLATION_TIMEOUT_SECONDS", "30")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "gpt-4o-mini", cfg.Translation.Model)
	assert.Equal(t, 30*time.Second, cfg.Translation.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoad_MissingSecretFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "app",
		Password: "pw",
		Database: "menus",
	}

	assert.Equal(t,
		"postgres://app:pw@db.internal:5433/menus?sslmode=disable",
		cfg.ConnectionString())
}

func TestServerConfig_Address(t *testing.T) {
	cfg := &ServerConfig{Host: "127.0.0.1", Port: 8080}

	assert.Equal(t, "127.0.0.1:8080", cfg.Address())
}
