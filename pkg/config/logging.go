package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileLogger opens LogFile for appending and returns a text logger writing to it.
// The terminal belongs to the UI, so interactive commands never log to stdout.
// The returned func closes the file.
func (c *Config) FileLogger() (*slog.Logger, func() error, error) {
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: c.Level()}))
	return log, f.Close, nil
}

// JSONLogger returns a JSON logger writing to w, for the API server.
func (c *Config) JSONLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}
