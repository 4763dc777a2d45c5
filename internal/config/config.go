package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting
	RateLimitMax    int
	RateLimitWindow time.Duration
	RedisURL        string // Shared limiter storage; in-memory when empty

	// Replies
	ReplyDelay time.Duration // Cosmetic "thinking" pause before a reply is shown
	Seed       uint64        // Non-zero makes fragment choice reproducible

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Wellness Companion"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		ServerAddr:      getEnv("SERVER_ADDR", ":3000"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:3000"),
		CORSOrigins:     getEnv("CORS_ORIGINS", ""),
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 60),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		RedisURL:        getEnv("REDIS_URL", ""),
		ReplyDelay:      getEnvDuration("REPLY_DELAY", 350*time.Millisecond),
		Seed:            uint64(getEnvInt("REPLY_SEED", 0)),

		SiteTitle:   getEnv("SITE_TITLE", "Wellness Companion"),
		SiteTagline: getEnv("SITE_TAGLINE", "A gentle space to check in with yourself"),
		SiteFooter:  getEnv("SITE_FOOTER", "This companion is not a substitute for professional help. In the U.S. call or text 988."),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// UsesRedis reports whether rate-limit counters are shared through Redis.
func (c *Config) UsesRedis() bool {
	return c.RedisURL != ""
}
