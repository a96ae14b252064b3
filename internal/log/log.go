// Package log builds the slog.Logger used by the command line tools.
//
// Logs always go to stderr since stdout carries the rendered art. When
// stderr is a terminal the output is colored.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup builds a logger writing to stderr and, if file is set, to file. The
// returned closers must be closed on exit.
func Setup(level, file string) (*slog.Logger, []io.Closer, error) {
	return setup(os.Stderr, isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()), level, file)
}

func setup(console io.Writer, color bool, level, file string) (*slog.Logger, []io.Closer, error) {
	lvl := ParseLevel(level)

	var handlers []slog.Handler
	if color {
		handlers = append(handlers, &colorHandler{w: console, level: lvl})
	} else {
		handlers = append(handlers, slog.NewTextHandler(console, &slog.HandlerOptions{Level: lvl}))
	}

	var closers []io.Closer
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, f)
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	}

	var h slog.Handler = handlers[0]
	if len(handlers) > 1 {
		h = multiHandler(handlers)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger, closers, nil
}

// multiHandler fans records out to every handler.
type multiHandler []slog.Handler

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithGroup(name)
	}
	return out
}

type colorHandler struct {
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder

	buf.WriteString("\x1b[90m")
	buf.WriteString(r.Time.Format("15:04:05.000"))
	buf.WriteString("\x1b[0m ")

	var color string
	switch {
	case r.Level >= slog.LevelError:
		color = "\x1b[31m"
	case r.Level >= slog.LevelWarn:
		color = "\x1b[33m"
	case r.Level >= slog.LevelInfo:
		color = "\x1b[32m"
	default:
		color = "\x1b[34m"
	}
	buf.WriteString(color)
	buf.WriteString(fmt.Sprintf("%5s", r.Level.String()))
	buf.WriteString("\x1b[0m ")
	buf.WriteString(r.Message)

	write := func(a slog.Attr) bool {
		buf.WriteString(" ")
		buf.WriteString(a.Key)
		buf.WriteString("=")
		buf.WriteString(a.Value.String())
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)

	buf.WriteString("\n")
	_, err := io.WriteString(h.w, buf.String())
	return err
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &colorHandler{w: h.w, level: h.level, attrs: merged}
}

// WithGroup is not supported, attributes stay flat.
func (h *colorHandler) WithGroup(string) slog.Handler {
	return h
}
