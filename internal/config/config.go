// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"fmt"
	"os"
	"strings"
)

// CloudinaryConfig holds the photo storage credentials. An empty
// CloudName disables uploads.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Config represents the application configuration, loaded from the
// environment. DatabaseURL is required; everything else has a default or
// degrades a feature when absent.
type Config struct {
	Env         string // "development" or "production"
	Port        string
	DatabaseURL string
	RedisURL    string // empty disables logout revocation
	ChromePath  string // empty lets chromedp locate the browser
	AdminEmails []string
	Cloudinary  CloudinaryConfig
}

// IsAdmin reports whether an email is on the admin list.
func (c *Config) IsAdmin(email string) bool {
	for _, admin := range c.AdminEmails {
		if strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Env:         envOr("APP_ENV", "development"),
		Port:        envOr("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		ChromePath:  os.Getenv("CHROME_PATH"),
		AdminEmails: splitList(os.Getenv("ADMIN_EMAILS")),
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL is required but not set")
	}
	if c.Env != "development" && c.Env != "production" {
		return fmt.Errorf("config error: APP_ENV must be 'development' or 'production', got %q", c.Env)
	}
	if c.Cloudinary.CloudName != "" && (c.Cloudinary.APIKey == "" || c.Cloudinary.APISecret == "") {
		return fmt.Errorf("config error: CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required when CLOUDINARY_CLOUD_NAME is set")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
