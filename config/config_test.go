package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("reads config.yaml", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.ScheduleAPI.URL != "http://localhost:3000/api" {
			t.Errorf("unexpected url %q", cfg.ScheduleAPI.URL)
		}
		if cfg.Session.TTL != 30*time.Minute {
			t.Errorf("unexpected session ttl %v", cfg.Session.TTL)
		}
		if cfg.GoogleCalendar.CalendarID != "primary" {
			t.Errorf("unexpected calendar id %q", cfg.GoogleCalendar.CalendarID)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SCHEDULE_API_URL", "https://sena.example.com/api/")
		t.Setenv("RATE_LIMIT_REQUESTS_PER_MIN", "5")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.ScheduleAPI.URL != "https://sena.example.com/api" {
			t.Errorf("expected trimmed env url, got %q", cfg.ScheduleAPI.URL)
		}
		if cfg.RateLimit.RequestsPerMin != 5 {
			t.Errorf("expected 5 requests per min, got %d", cfg.RateLimit.RequestsPerMin)
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPServer:  HTTPServerConfig{Port: 8080},
			ScheduleAPI: ScheduleAPIConfig{URL: "http://localhost:3000", Timeout: "5s"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing url", func(c *Config) { c.ScheduleAPI.URL = "" }, true},
		{"relative url", func(c *Config) { c.ScheduleAPI.URL = "/api" }, true},
		{"bad timeout", func(c *Config) { c.ScheduleAPI.Timeout = "soon" }, true},
		{"no port", func(c *Config) { c.HTTPServer.Port = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if err := loadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("sets variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte("SCHEDULE_CALENDAR_TEST_VAR=from-dotenv\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv("SCHEDULE_CALENDAR_TEST_VAR", "")
		os.Unsetenv("SCHEDULE_CALENDAR_TEST_VAR")

		if err := loadDotEnv(path); err != nil {
			t.Fatalf("loadDotEnv: %v", err)
		}
		if got := os.Getenv("SCHEDULE_CALENDAR_TEST_VAR"); got != "from-dotenv" {
			t.Errorf("expected from-dotenv, got %q", got)
		}
	})
}
