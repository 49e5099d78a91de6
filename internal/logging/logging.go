// Package logging configures structured logging with tint.
//
// INFO and WARN go to stdout, ERROR goes to stderr. If a log file is given,
// every record is also written there without colors.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// levelRouter is a slog.Handler that routes records below ERROR to stdout and
// ERROR+ to stderr, optionally teeing everything to a file handler.
type levelRouter struct {
	level  slog.Level
	stdout slog.Handler
	stderr slog.Handler
	file   slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= lr.level
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if lr.file != nil {
		if err := lr.file.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	if r.Level >= slog.LevelError {
		return lr.stderr.Handle(ctx, r)
	}
	return lr.stdout.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &levelRouter{
		level:  lr.level,
		stdout: lr.stdout.WithAttrs(attrs),
		stderr: lr.stderr.WithAttrs(attrs),
	}
	if lr.file != nil {
		next.file = lr.file.WithAttrs(attrs)
	}
	return next
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	next := &levelRouter{
		level:  lr.level,
		stdout: lr.stdout.WithGroup(name),
		stderr: lr.stderr.WithGroup(name),
	}
	if lr.file != nil {
		next.file = lr.file.WithGroup(name)
	}
	return next
}

// newRouter builds the handler tree. file may be nil.
func newRouter(level slog.Level, stdout, stderr, file io.Writer, color bool) *levelRouter {
	opts := func(noColor bool) *tint.Options {
		return &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
			NoColor:    noColor,
		}
	}

	lr := &levelRouter{
		level:  level,
		stdout: tint.NewHandler(stdout, opts(!color)),
		stderr: tint.NewHandler(stderr, opts(!color)),
	}
	if file != nil {
		lr.file = tint.NewHandler(file, opts(true))
	}
	return lr
}

// Setup installs the default logger. If logPath is non-empty, records are
// also appended to that file. The returned cleanup closes the file and is
// never nil.
func Setup(level slog.Level, logPath string) (func(), error) {
	cleanup := func() {}

	var file io.Writer
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		file = f
	}

	slog.SetDefault(slog.New(newRouter(level, os.Stdout, os.Stderr, file, isTerminal(os.Stdout))))
	return cleanup, nil
}

// isTerminal reports whether f is a character device, so colour codes are
// only written to an interactive console.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}
