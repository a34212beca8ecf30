package main

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// newLogger returns a debug-level logger writing to path. The terminal is
// owned by the viewer, so with no path the logs are discarded.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(path, "primview")
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
