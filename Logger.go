package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

func ParseLogLevel(level string) (slog.Level, error) {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return parsed, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return parsed, nil
}

func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	parsed, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parsed})), nil
}
