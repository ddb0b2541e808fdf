package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// nopHandler discards every record. Enabled returns false so callers skip
// formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var activeLogger = slog.New(nopHandler{})

func logger() *slog.Logger { return activeLogger }

// setLogger replaces the package logger. nil restores silence.
func setLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	activeLogger = l
}

// setupLogging sends debug output to a file when LETTERSORT_DEBUG is set;
// the terminal is owned by the UI. The returned closer is never nil.
func setupLogging() (io.Closer, error) {
	path := os.Getenv("LETTERSORT_DEBUG")
	if path == "" {
		return io.NopCloser(nil), nil
	}
	if path == "1" || path == "true" {
		path = "lettersort-debug.log"
	}
	f, err := tea.LogToFile(path, "lettersort")
	if err != nil {
		return io.NopCloser(nil), err
	}
	setLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f, nil
}
