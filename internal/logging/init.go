// Package logging wires log/slog to the sinks the CLI supports, with
// lumberjack rotation behind the file sink.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/zynaxsoft/zellij/internal/identity"
)

type InitOptions struct {
	App     string
	Version string
}

// Init installs the default slog logger according to cfg (merged over
// defaults and env overrides) and returns a close func for the sink.
func Init(cfg Config, opts InitOptions) (func() error, error) {
	if opts.App == "" {
		opts.App = identity.AppSlug
	}

	merged := mergeConfig(DefaultConfig(), cfg).WithEnv()

	sink := SinkStderr
	if merged.Sink != nil {
		sink = Sink(*merged.Sink)
	}
	format := FormatText
	if merged.Format != nil {
		format = Format(*merged.Format)
	}

	writer, closeFn, err := resolveWriter(merged, sink)
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{
		Level:     parseLevel(merged.Level),
		AddSource: derefBool(merged.AddSource, false),
	}
	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	default:
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	logger := slog.New(handler).With(
		slog.String("app", opts.App),
		slog.String("version", opts.Version),
	)
	slog.SetDefault(logger)
	return closeFn, nil
}

func parseLevel(value *string) slog.Leveler {
	if value == nil {
		return slog.LevelInfo
	}
	switch strings.ToLower(strings.TrimSpace(*value)) {
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

func resolveWriter(cfg Config, sink Sink) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch sink {
	case SinkNone:
		return io.Discard, noop, nil
	case SinkStderr:
		return os.Stderr, noop, nil
	case SinkFile:
		path := ""
		if cfg.File != nil {
			path = strings.TrimSpace(*cfg.File)
		}
		if path == "" {
			dir, err := os.UserCacheDir()
			if err != nil {
				return nil, nil, fmt.Errorf("resolve cache dir: %w", err)
			}
			path = filepath.Join(dir, identity.AppSlug, identity.AppSlug+".log")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		rot := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    derefInt(cfg.MaxSizeMB, 20),
			MaxBackups: derefInt(cfg.MaxBackups, 5),
			MaxAge:     derefInt(cfg.MaxAgeDays, 7),
			Compress:   derefBool(cfg.Compress, true),
		}
		return rot, rot.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown log sink: %q", sink)
	}
}
