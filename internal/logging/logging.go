package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/lmittmann/tint"
)

// Config controls how Setup builds the default logger.
type Config struct {
	// Level is DEBUG, INFO, WARN or ERROR. Defaults to INFO.
	Level string
	// Format is "json" (default) or "text" for colored human-readable output.
	Format string
	// Writer defaults to os.Stdout.
	Writer io.Writer
	// AppName is the Fluent Bit tag prefix.
	AppName string
	Fluent  FluentConfig
}

// FluentConfig enables forwarding of log records to Fluent Bit.
type FluentConfig struct {
	Enabled bool
	Host    string
	Port    int
}

// Setup configures the global slog default and returns a function that
// flushes and closes any remote sink. ERROR-level logs automatically
// include a stack trace.
func Setup(cfg Config) (func(), error) {
	level := parseLevel(cfg.Level)
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	var base slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		base = tint.NewHandler(w, &tint.Options{
			Level:      level,
			AddSource:  true,
			TimeFormat: "2006-01-02 15:04:05",
		})
	} else {
		base = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})
	}
	var handler slog.Handler = &stackHandler{Handler: base}

	shutdown := func() {}
	if cfg.Fluent.Enabled {
		client, err := fluent.New(fluent.Config{
			FluentHost: cfg.Fluent.Host,
			FluentPort: cfg.Fluent.Port,
			TagPrefix:  cfg.AppName,
			Async:      true,
		})
		if err != nil {
			return shutdown, fmt.Errorf("logging: create fluent client: %w", err)
		}
		handler = newFanoutHandler(handler, newFluentHandler(client, level))
		shutdown = func() {
			if err := client.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "logging: close fluent client: %v\n", err)
			}
		}
	}

	slog.SetDefault(slog.New(handler))
	return shutdown, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Fatal logs at Error level and exits with code 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

// stackHandler wraps a slog.Handler and appends a stack trace for ERROR+.
type stackHandler struct {
	slog.Handler
}

func (h *stackHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stacktrace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *stackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &stackHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *stackHandler) WithGroup(name string) slog.Handler {
	return &stackHandler{Handler: h.Handler.WithGroup(name)}
}
