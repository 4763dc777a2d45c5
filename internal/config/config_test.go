package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "SERVER_ADDR", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW", "REDIS_URL", "REPLY_DELAY", "REPLY_SEED", "SITE_TITLE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want :3000", cfg.ServerAddr)
	}
	if !cfg.IsDev() {
		t.Error("expected development environment by default")
	}
	if cfg.RateLimitMax != 60 || cfg.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 60/1m", cfg.RateLimitMax, cfg.RateLimitWindow)
	}
	if cfg.ReplyDelay != 350*time.Millisecond {
		t.Errorf("ReplyDelay = %v, want 350ms", cfg.ReplyDelay)
	}
	if cfg.UsesRedis() {
		t.Error("expected in-memory limiter storage by default")
	}
	if cfg.SiteTitle != "Wellness Companion" {
		t.Errorf("SiteTitle = %q", cfg.SiteTitle)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("RATE_LIMIT_MAX", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("REPLY_DELAY", "0s")
	t.Setenv("REPLY_SEED", "42")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := Load()
	if cfg.IsDev() {
		t.Error("production should not be dev")
	}
	if cfg.RateLimitMax != 10 || cfg.RateLimitWindow != 30*time.Second {
		t.Errorf("rate limit = %d/%v, want 10/30s", cfg.RateLimitMax, cfg.RateLimitWindow)
	}
	if cfg.ReplyDelay != 0 {
		t.Errorf("ReplyDelay = %v, want 0", cfg.ReplyDelay)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if !cfg.UsesRedis() {
		t.Error("expected redis limiter storage")
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "lots")
	t.Setenv("REPLY_DELAY", "-5s")

	cfg := Load()
	if cfg.RateLimitMax != 60 {
		t.Errorf("RateLimitMax = %d, want fallback 60", cfg.RateLimitMax)
	}
	if cfg.ReplyDelay != 350*time.Millisecond {
		t.Errorf("ReplyDelay = %v, want fallback 350ms", cfg.ReplyDelay)
	}
}

func TestLoadYAMLConfig_Missing(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	y, err := LoadYAMLConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if y != nil {
		t.Errorf("expected nil config for missing file, got %+v", y)
	}
}

func TestLoadYAMLConfig_Apply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
branding:
  title: Campus Check-in
  footer: Student counselling is open 9-5.
rate_limit:
  max: 5
  window: 10s
replies:
  delay: 0s
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)

	y, err := LoadYAMLConfig()
	if err != nil {
		t.Fatalf("LoadYAMLConfig: %v", err)
	}

	cfg := &Config{
		SiteTitle:       "Wellness Companion",
		SiteTagline:     "keep me",
		RateLimitMax:    60,
		RateLimitWindow: time.Minute,
		ReplyDelay:      350 * time.Millisecond,
	}
	y.Apply(cfg)

	if cfg.SiteTitle != "Campus Check-in" {
		t.Errorf("SiteTitle = %q", cfg.SiteTitle)
	}
	if cfg.SiteTagline != "keep me" {
		t.Errorf("SiteTagline should be untouched, got %q", cfg.SiteTagline)
	}
	if cfg.SiteFooter != "Student counselling is open 9-5." {
		t.Errorf("SiteFooter = %q", cfg.SiteFooter)
	}
	if cfg.RateLimitMax != 5 || cfg.RateLimitWindow != 10*time.Second {
		t.Errorf("rate limit = %d/%v, want 5/10s", cfg.RateLimitMax, cfg.RateLimitWindow)
	}
	if cfg.ReplyDelay != 0 {
		t.Errorf("ReplyDelay = %v, want 0", cfg.ReplyDelay)
	}
}

func TestLoadYAMLConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("branding: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := LoadYAMLConfig(); err == nil {
		t.Error("expected parse error")
	}
}

func TestYAMLConfigApply_Nil(t *testing.T) {
	var y *YAMLConfig
	cfg := &Config{SiteTitle: "x"}
	y.Apply(cfg)
	if cfg.SiteTitle != "x" {
		t.Error("nil YAML config must not change anything")
	}
}
