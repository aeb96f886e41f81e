// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
//
// Only server-level settings live here. The calling policy (daily window,
// peak hour, reference zone) is a set of named constants in internal/schedule
// and has no runtime reconfiguration.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env            string
	HTTPAddr       string
	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool
}

// Load reads configuration from the environment, with .env support for local
// development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:   corsAllowAll,
		CORSOrigins:    corsOrigins,
		CORSAllowCreds: strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
	}

	return cfg, nil
}

// GetHTTPAddr returns the listen address for the HTTP server.
func (c *Config) GetHTTPAddr() string { return c.HTTPAddr }

// GetCORSAllowAll reports whether any origin is allowed.
func (c *Config) GetCORSAllowAll() bool { return c.CORSAllowAll }

// GetCORSOrigins returns the allowed CORS origins.
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// GetCORSAllowCreds reports whether credentialed CORS requests are allowed.
func (c *Config) GetCORSAllowCreds() bool { return c.CORSAllowCreds }

var _ HTTPConfig = (*Config)(nil)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
