package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const LevelEnvVar = "LOG_LEVEL"

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(level)
	return logger
}

// LevelFromEnv reads LOG_LEVEL, returning fallback when unset or unrecognized.
func LevelFromEnv(fallback logrus.Level) logrus.Level {
	return ParseLevel(os.Getenv(LevelEnvVar), fallback)
}

func ParseLevel(value string, fallback logrus.Level) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return fallback
	}
}

// Discard returns a logger that drops every entry.
func Discard() *logrus.Logger {
	return New(io.Discard, logrus.PanicLevel)
}
