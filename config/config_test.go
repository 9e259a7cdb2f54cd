package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "TZ", "DB_PATH", "SESSION_SECRET", "SESSION_TTL", "COOKIE_SECURE",
		"ENABLE_DEV_LOGIN", "HABIT_WINDOW_DAYS", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8080" || cfg.Timezone != "UTC" || cfg.DBPath != "lifeplan.db" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SessionTTL != 30*24*time.Hour || cfg.HabitWindowDays != 365 {
		t.Errorf("ttl/window = %v/%d", cfg.SessionTTL, cfg.HabitWindowDays)
	}
	if cfg.CookieSecure || cfg.EnableDevLogin {
		t.Errorf("flags default on: %+v", cfg)
	}
	if len(cfg.SessionSecret) != 64 {
		t.Errorf("generated secret has %d hex chars, want 64", len(cfg.SessionSecret))
	}
	if cfg.Location() != time.UTC {
		t.Errorf("location = %v", cfg.Location())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TZ", "Asia/Bangkok")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("ENABLE_DEV_LOGIN", "true")
	t.Setenv("HABIT_WINDOW_DAYS", "30")
	t.Setenv("LOG_LEVEL", "warn")

	cfg := Load()
	if cfg.Port != "9000" || cfg.SessionSecret != "s3cret" || cfg.SessionTTL != 2*time.Hour {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.CookieSecure || !cfg.EnableDevLogin || cfg.HabitWindowDays != 30 {
		t.Errorf("cfg = %+v", cfg)
	}
	if got := cfg.Location().String(); got != "Asia/Bangkok" {
		t.Errorf("location = %s", got)
	}
}

func TestBadValuesFallBack(t *testing.T) {
	t.Setenv("TZ", "Mars/Olympus")
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("HABIT_WINDOW_DAYS", "-3")
	cfg := Load()
	if cfg.Location() != time.UTC {
		t.Errorf("unknown zone resolved to %v", cfg.Location())
	}
	if cfg.SessionTTL != 30*24*time.Hour || cfg.HabitWindowDays != 365 {
		t.Errorf("cfg = %+v", cfg)
	}
}
