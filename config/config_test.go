package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("BACKEND_BASE_URL", "")
	t.Setenv("BACKEND_TIMEOUT", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SESSION_COOKIE_NAME", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SESSION_BACKEND", "")
	t.Setenv("LOGIN_RATE_LIMIT_RPS", "")
	t.Setenv("LOGIN_RATE_LIMIT_BURST", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	if cfg.Backend.BaseURL != "http://localhost:8081" {
		t.Fatalf("expected default backend base URL, got %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 10*time.Second {
		t.Fatalf("expected default backend timeout 10s, got %v", cfg.Backend.Timeout)
	}
	if cfg.Session.CookieName != "clinic_session" {
		t.Fatalf("expected default cookie name clinic_session, got %q", cfg.Session.CookieName)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Fatalf("expected default session TTL 30m, got %v", cfg.Session.TTL)
	}
	if cfg.Session.Backend != "memory" {
		t.Fatalf("expected default session backend memory, got %q", cfg.Session.Backend)
	}
	if cfg.RateLimit.RPS != 5 {
		t.Fatalf("expected default rate limit 5 rps, got %v", cfg.RateLimit.RPS)
	}
	if cfg.RateLimit.Burst != 10 {
		t.Fatalf("expected default rate limit burst 10, got %d", cfg.RateLimit.Burst)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("BACKEND_BASE_URL", "https://clinic-api.example.com")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("SESSION_SECRET", "super-secret")
	t.Setenv("SESSION_COOKIE_NAME", "portal_sid")
	t.Setenv("SESSION_TTL", "10m")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("LOGIN_RATE_LIMIT_RPS", "2")
	t.Setenv("LOGIN_RATE_LIMIT_BURST", "4")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if cfg.App.Port != "9090" {
		t.Fatalf("expected overridden port 9090, got %q", cfg.App.Port)
	}
	if cfg.App.Env != "production" {
		t.Fatalf("expected overridden env production, got %q", cfg.App.Env)
	}
	if cfg.Backend.BaseURL != "https://clinic-api.example.com" {
		t.Fatalf("expected overridden backend base URL, got %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Fatalf("expected overridden backend timeout 3s, got %v", cfg.Backend.Timeout)
	}
	if cfg.Session.Secret != "super-secret" {
		t.Fatalf("expected overridden session secret, got %q", cfg.Session.Secret)
	}
	if cfg.Session.CookieName != "portal_sid" {
		t.Fatalf("expected overridden cookie name portal_sid, got %q", cfg.Session.CookieName)
	}
	if cfg.Session.TTL != 10*time.Minute {
		t.Fatalf("expected overridden session TTL 10m, got %v", cfg.Session.TTL)
	}
	if cfg.Session.Backend != "redis" {
		t.Fatalf("expected overridden session backend redis, got %q", cfg.Session.Backend)
	}
	if cfg.Redis.Host != "redis.internal" {
		t.Fatalf("expected overridden redis host, got %q", cfg.Redis.Host)
	}
	if cfg.RateLimit.RPS != 2 {
		t.Fatalf("expected overridden rate limit 2 rps, got %v", cfg.RateLimit.RPS)
	}
	if cfg.RateLimit.Burst != 4 {
		t.Fatalf("expected overridden rate limit burst 4, got %d", cfg.RateLimit.Burst)
	}
}

func TestLoadConfigExplicitZero(t *testing.T) {
	t.Setenv("LOGIN_RATE_LIMIT_RPS", "0")
	t.Setenv("LOGIN_RATE_LIMIT_BURST", "0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if cfg.RateLimit.RPS != 0 {
		t.Fatalf("expected explicit zero rps to stick, got %v", cfg.RateLimit.RPS)
	}
	if cfg.RateLimit.Burst != 0 {
		t.Fatalf("expected explicit zero burst to stick, got %d", cfg.RateLimit.Burst)
	}
}
