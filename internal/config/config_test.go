package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.MatchListRetryAttempts != 3 {
		t.Fatalf("MatchListRetryAttempts = %d, want 3", cfg.MatchListRetryAttempts)
	}
	if cfg.MatchListRetryBaseDelay != time.Second {
		t.Fatalf("MatchListRetryBaseDelay = %v, want 1s", cfg.MatchListRetryBaseDelay)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Fatalf("SessionTTL = %v, want 2h", cfg.SessionTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("USE_MEMORY_STORE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("MATCH_LIST_RETRY_ATTEMPTS", "5")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppEnv != EnvProd {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvProd)
	}
	if !cfg.UseMemoryStore {
		t.Fatal("UseMemoryStore = false, want true")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.MatchListRetryAttempts != 5 {
		t.Fatalf("MatchListRetryAttempts = %d, want 5", cfg.MatchListRetryAttempts)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]struct {
		key, value string
	}{
		"bad app env":          {"APP_ENV", "production"},
		"bad bool":             {"CACHE_ENABLED", "yes please"},
		"bad ttl":              {"CACHE_TTL", "-broken"},
		"zero retry attempts":  {"MATCH_LIST_RETRY_ATTEMPTS", "0"},
		"uptrace without dsn":  {"UPTRACE_ENABLED", "true"},
		"negative session ttl": {"SESSION_TTL", "-1m"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("Load accepted %s=%q", tc.key, tc.value)
			}
		})
	}
}
