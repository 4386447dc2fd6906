package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel converts debug, info, warn or error into a slog level
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// NewLogger builds the logger for env: human-readable text in development,
// JSON in production and nothing at all under test.
func NewLogger(env, level string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: l}

	switch env {
	case Development:
		return slog.New(slog.NewTextHandler(os.Stdout, opts)), nil
	case Production:
		return slog.New(slog.NewJSONHandler(os.Stdout, opts)), nil
	case Test:
		return slog.New(slog.DiscardHandler), nil
	default:
		return nil, fmt.Errorf("unknown environment %q", env)
	}
}
