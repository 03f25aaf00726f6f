package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Fatalf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL = %v, want 24h", cfg.TokenTTL)
	}
	if cfg.MinPlayers != 1 || cfg.MaxPlayers != 10 {
		t.Fatalf("player bounds = (%d, %d), want (1, 10)", cfg.MinPlayers, cfg.MaxPlayers)
	}
	if cfg.InviteTTL != 10*time.Minute {
		t.Fatalf("InviteTTL = %v, want 10m", cfg.InviteTTL)
	}
	if cfg.RateLimitRequests != 60 || cfg.RateLimitWindow != time.Minute {
		t.Fatalf("rate limit = (%d, %v), want (60, 1m)", cfg.RateLimitRequests, cfg.RateLimitWindow)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Fatalf("AllowedOrigins = %v, want [*]", cfg.AllowedOrigins)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("JWT_SIGNING_KEY", "test-key")
	t.Setenv("MAX_PLAYERS", "4")
	t.Setenv("INVITE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Addr != ":9999" {
		t.Fatalf("Addr = %q, want :9999", cfg.Addr)
	}
	if cfg.JWTSigningKey != "test-key" {
		t.Fatalf("JWTSigningKey = %q, want test-key", cfg.JWTSigningKey)
	}
	if cfg.MaxPlayers != 4 {
		t.Fatalf("MaxPlayers = %d, want 4", cfg.MaxPlayers)
	}
	if cfg.InviteTTL != 30*time.Second {
		t.Fatalf("InviteTTL = %v, want 30s", cfg.InviteTTL)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("AllowedOrigins = %v, want two origins", cfg.AllowedOrigins)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blackjackd.yaml")
	contents := "jwt_signing_key: file-secret\nmax_players: 6\naddr: \":7777\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	// The environment must win over the file for the same key.
	t.Setenv("ADDR", ":8888")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.JWTSigningKey != "file-secret" {
		t.Fatalf("JWTSigningKey = %q, want file-secret", cfg.JWTSigningKey)
	}
	if cfg.MaxPlayers != 6 {
		t.Fatalf("MaxPlayers = %d, want 6", cfg.MaxPlayers)
	}
	if cfg.Addr != ":8888" {
		t.Fatalf("Addr = %q, want the environment to win", cfg.Addr)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := Load(context.Background()); err == nil {
		t.Fatal("Load() should fail when CONFIG_FILE does not exist")
	}
}
