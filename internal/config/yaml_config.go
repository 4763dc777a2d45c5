package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the optional config.yaml file.
// Only deployment settings live here; keyword and reply tables are fixed.
type YAMLConfig struct {
	Branding  BrandingConfig  `yaml:"branding"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Replies   RepliesConfig   `yaml:"replies"`
}

// BrandingConfig overrides the site branding.
type BrandingConfig struct {
	Title   string `yaml:"title,omitempty"`
	Tagline string `yaml:"tagline,omitempty"`
	Footer  string `yaml:"footer,omitempty"`
}

// RateLimitConfig overrides the per-IP limiter.
type RateLimitConfig struct {
	Max    int           `yaml:"max,omitempty"`
	Window time.Duration `yaml:"window,omitempty"` // e.g. "30s"
	Redis  string        `yaml:"redis_url,omitempty"`
}

// RepliesConfig overrides reply pacing.
type RepliesConfig struct {
	Delay *time.Duration `yaml:"delay,omitempty"` // pointer so "0s" disables the pause
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return loadYAMLFile(getEnv("CONFIG_FILE", "config.yaml"))
}

func loadYAMLFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply overlays non-empty YAML values onto c.
func (y *YAMLConfig) Apply(c *Config) {
	if y == nil {
		return
	}
	if y.Branding.Title != "" {
		c.SiteTitle = y.Branding.Title
	}
	if y.Branding.Tagline != "" {
		c.SiteTagline = y.Branding.Tagline
	}
	if y.Branding.Footer != "" {
		c.SiteFooter = y.Branding.Footer
	}
	if y.RateLimit.Max > 0 {
		c.RateLimitMax = y.RateLimit.Max
	}
	if y.RateLimit.Window > 0 {
		c.RateLimitWindow = y.RateLimit.Window
	}
	if y.RateLimit.Redis != "" {
		c.RedisURL = y.RateLimit.Redis
	}
	if y.Replies.Delay != nil && *y.Replies.Delay >= 0 {
		c.ReplyDelay = *y.Replies.Delay
	}
}
