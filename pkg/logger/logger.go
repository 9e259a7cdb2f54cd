package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logger. It writes to stderr until Init runs.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "lifeplan",
})

type Config struct {
	Level string
	// File enables a rotating copy of the log on disk when non-empty.
	File string
}

func Init(cfg Config) {
	var w io.Writer = os.Stderr
	if cfg.File != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	level := ParseLevel(cfg.Level)
	Logger = log.NewWithOptions(w, log.Options{
		ReportCaller:    level == log.DebugLevel,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "lifeplan",
	})
}

// SetOutput points the logger at w, used by tests to capture output.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func Debug(msg string, keyvals ...interface{}) { Logger.Debug(msg, keyvals...) }

func Info(msg string, keyvals ...interface{}) { Logger.Info(msg, keyvals...) }

func Warn(msg string, keyvals ...interface{}) { Logger.Warn(msg, keyvals...) }

func Error(msg string, keyvals ...interface{}) { Logger.Error(msg, keyvals...) }

func Fatal(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
	os.Exit(1)
}
