package config

import (
	"testing"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()

	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %q, want default 8000", cfg.Server.Port)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache.Type = %q, want default memory", cfg.Cache.Type)
	}
	if cfg.Fetch.TimeoutSeconds != 15 {
		t.Errorf("Fetch.TimeoutSeconds = %d, want default 15", cfg.Fetch.TimeoutSeconds)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.LogLevel)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TYPE", "sqlite")
	t.Setenv("SQLITE_CACHE_PATH", "/tmp/test-cache.db")
	t.Setenv("RATE_LIMIT", "120")
	t.Setenv("LEXICON_FILE", "/etc/credcheck/lexicon.yaml")

	cfg, err := LoadFromEnv()

	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Cache.Type != "sqlite" {
		t.Errorf("Cache.Type = %q, want sqlite", cfg.Cache.Type)
	}
	if cfg.Server.RateLimit != 120 {
		t.Errorf("RateLimit = %d, want 120", cfg.Server.RateLimit)
	}
	if cfg.LexiconFile != "/etc/credcheck/lexicon.yaml" {
		t.Errorf("LexiconFile = %q", cfg.LexiconFile)
	}
}

func TestLoadFromEnv_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")

	cfg, err := LoadFromEnv()

	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.Server.RateLimit != 60 {
		t.Errorf("RateLimit = %d, want default 60 on parse failure", cfg.Server.RateLimit)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg, _ := LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Server.Port = "" }},
		{"zero rate limit", func(c *Config) { c.Server.RateLimit = 0 }},
		{"unknown cache type", func(c *Config) { c.Cache.Type = "memcached" }},
		{"redis without address", func(c *Config) {
			c.Cache.Type = "redis"
			c.Cache.Redis.Address = ""
		}},
		{"sqlite without path", func(c *Config) {
			c.Cache.Type = "sqlite"
			c.Cache.SQLitePath = ""
		}},
		{"zero fetch timeout", func(c *Config) { c.Fetch.TimeoutSeconds = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := LoadFromEnv()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate should reject %s", tt.name)
			}
		})
	}
}
