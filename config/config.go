package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"lifeplan/pkg/logger"
)

type AppConfig struct {
	Port            string
	Timezone        string
	DBPath          string
	SessionSecret   string
	SessionTTL      time.Duration
	CookieSecure    bool
	EnableDevLogin  bool
	HabitWindowDays int
	LogLevel        string
	LogFile         string
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Load() AppConfig {
	// Load .env file if it exists
	envErr := godotenv.Load()

	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "UTC"),
		DBPath:          get("DB_PATH", "lifeplan.db"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		SessionTTL:      getDuration("SESSION_TTL", 30*24*time.Hour),
		CookieSecure:    get("COOKIE_SECURE", "false") == "true",
		EnableDevLogin:  get("ENABLE_DEV_LOGIN", "false") == "true",
		HabitWindowDays: getInt("HABIT_WINDOW_DAYS", 365),
		LogLevel:        get("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
	}

	// logger must exist before anything below reports through it
	logger.Init(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if envErr != nil {
		logger.Debug("no .env file loaded", "err", envErr)
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = randomSecret()
		logger.Warn("SESSION_SECRET not set, sessions will not survive a restart")
	}
	logger.Info("config loaded",
		"port", cfg.Port,
		"tz", cfg.Timezone,
		"db", cfg.DBPath,
		"dev_login", cfg.EnableDevLogin,
		"habit_window", cfg.HabitWindowDays,
	)
	return cfg
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		logger.Fatal("generate session secret", "err", err)
	}
	return hex.EncodeToString(buf)
}
