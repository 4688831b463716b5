package config

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries all runtime settings. Values come from the environment
// with an optional .env file for local development.
type Config struct {
	Env           string // development | production
	Addr          string
	DBPath        string
	CSRFKey       []byte
	RedisURL      string // empty = in-memory sessions
	ResendKey     string // empty = noop email sender
	EmailFrom     string
	EmailReplyTo  string
	AdminEmail    string
	AdminPassword string
	RatePerSecond int
}

// IsProduction reports whether the service runs with production policies.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from .env (if present) and the environment.
// PRE: none
// POST: Returns a validated Config or an error for missing required values
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err == nil {
		slog.Info("config_loaded", "source", ".env")
	}

	cfg := &Config{
		Env:           envOrDefault("COMMUNITY_ENV", "development"),
		Addr:          envOrDefault("COMMUNITY_ADDR", ":8080"),
		DBPath:        envOrDefault("COMMUNITY_DB_PATH", "community.db"),
		RedisURL:      os.Getenv("COMMUNITY_REDIS_URL"),
		ResendKey:     os.Getenv("COMMUNITY_RESEND_KEY"),
		EmailFrom:     envOrDefault("COMMUNITY_EMAIL_FROM", "CommunityHub <noreply@communityhub.io>"),
		EmailReplyTo:  envOrDefault("COMMUNITY_EMAIL_REPLY_TO", "support@communityhub.io"),
		AdminEmail:    envOrDefault("COMMUNITY_ADMIN_EMAIL", "admin@communityhub.io"),
		AdminPassword: envOrDefault("COMMUNITY_ADMIN_PASSWORD", "change me before launch"),
		RatePerSecond: envIntOrDefault("COMMUNITY_RATE_PER_SECOND", 10),
	}

	key, err := loadCSRFKey(cfg.IsProduction())
	if err != nil {
		return nil, err
	}
	cfg.CSRFKey = key

	return cfg, nil
}

// loadCSRFKey reads COMMUNITY_CSRF_KEY (hex-encoded, 32 bytes). The key
// is required in production; development generates none and lets the
// HTTP layer mint a per-startup key.
func loadCSRFKey(production bool) ([]byte, error) {
	keyHex := os.Getenv("COMMUNITY_CSRF_KEY")
	if keyHex == "" {
		if production {
			return nil, fmt.Errorf("COMMUNITY_CSRF_KEY is required in production")
		}
		return nil, nil
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != 32 {
		return nil, fmt.Errorf("COMMUNITY_CSRF_KEY must be 64 hex characters (32 bytes)")
	}
	return key, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
