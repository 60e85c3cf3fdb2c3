package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries the settings read from the environment (and .env).
type Config struct {
	Theme    string
	SeedPath string
	LogLevel slog.Level
	LogFile  string
}

// Load reads .env when present, then the LIBRARY_* variables.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may already carry everything.
	_ = godotenv.Load()

	var level slog.Level
	if err := level.UnmarshalText([]byte(withDefault(os.Getenv("LIBRARY_LOG_LEVEL"), "warn"))); err != nil {
		return nil, fmt.Errorf("LIBRARY_LOG_LEVEL: %w", err)
	}

	return &Config{
		Theme:    withDefault(os.Getenv("LIBRARY_THEME"), "classic"),
		SeedPath: strings.TrimSpace(os.Getenv("LIBRARY_SEED")),
		LogLevel: level,
		LogFile:  strings.TrimSpace(os.Getenv("LIBRARY_LOG_FILE")),
	}, nil
}

// NewLogger builds the text logger used by the front ends. When LogFile is
// set it wins over fallback; the returned closer must be called on exit.
func (c *Config) NewLogger(fallback io.Writer) (*slog.Logger, io.Closer, error) {
	var (
		w      = fallback
		closer io.Closer = nopCloser{}
	)
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel})
	return slog.New(h), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func withDefault(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}
