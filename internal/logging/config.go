package logging

import (
	"os"
	"strconv"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

const (
	EnvLogLevel      = "ZELLIJ_LOG_LEVEL"
	EnvLogFormat     = "ZELLIJ_LOG_FORMAT"
	EnvLogSink       = "ZELLIJ_LOG_SINK"
	EnvLogFile       = "ZELLIJ_LOG_FILE"
	EnvLogAddSource  = "ZELLIJ_LOG_ADD_SOURCE"
	EnvLogMaxSizeMB  = "ZELLIJ_LOG_MAX_SIZE_MB"
	EnvLogMaxBackups = "ZELLIJ_LOG_MAX_BACKUPS"
	EnvLogMaxAgeDays = "ZELLIJ_LOG_MAX_AGE_DAYS"
	EnvLogCompress   = "ZELLIJ_LOG_COMPRESS"
)

// Config is the logging section of the app config. Nil fields fall
// back to defaults so a partial config only overrides what it names.
type Config struct {
	Level     *string `yaml:"level,omitempty"`
	Format    *string `yaml:"format,omitempty"`
	Sink      *string `yaml:"sink,omitempty"`
	File      *string `yaml:"file,omitempty"`
	AddSource *bool   `yaml:"add_source,omitempty"`

	MaxSizeMB  *int  `yaml:"max_size_mb,omitempty"`
	MaxBackups *int  `yaml:"max_backups,omitempty"`
	MaxAgeDays *int  `yaml:"max_age_days,omitempty"`
	Compress   *bool `yaml:"compress,omitempty"`
}

// DefaultConfig keeps the CLI quiet: errors only, to stderr.
func DefaultConfig() Config {
	level := "error"
	sink := string(SinkStderr)
	format := string(FormatText)
	addSource := false
	maxSizeMB := 20
	maxBackups := 5
	maxAgeDays := 7
	compress := true

	return Config{
		Level:      &level,
		Format:     &format,
		Sink:       &sink,
		AddSource:  &addSource,
		MaxSizeMB:  &maxSizeMB,
		MaxBackups: &maxBackups,
		MaxAgeDays: &maxAgeDays,
		Compress:   &compress,
	}
}

func (c Config) WithEnv() Config {
	applyString := func(dst **string, env string) {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = &v
		}
	}
	applyBool := func(dst **bool, env string) {
		raw := strings.TrimSpace(os.Getenv(env))
		if raw == "" {
			return
		}
		v := !isDisabledString(raw)
		*dst = &v
	}
	applyInt := func(dst **int, env string) {
		raw := strings.TrimSpace(os.Getenv(env))
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return
		}
		*dst = &n
	}

	applyString(&c.Level, EnvLogLevel)
	applyString(&c.Format, EnvLogFormat)
	applyString(&c.Sink, EnvLogSink)
	applyString(&c.File, EnvLogFile)
	applyBool(&c.AddSource, EnvLogAddSource)
	applyInt(&c.MaxSizeMB, EnvLogMaxSizeMB)
	applyInt(&c.MaxBackups, EnvLogMaxBackups)
	applyInt(&c.MaxAgeDays, EnvLogMaxAgeDays)
	applyBool(&c.Compress, EnvLogCompress)
	return c
}

func isDisabledString(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "0", "false", "no", "off":
		return true
	default:
		return false
	}
}

func mergeConfig(base, override Config) Config {
	out := base
	if override.Level != nil {
		out.Level = override.Level
	}
	if override.Format != nil {
		out.Format = override.Format
	}
	if override.Sink != nil {
		out.Sink = override.Sink
	}
	if override.File != nil {
		out.File = override.File
	}
	if override.AddSource != nil {
		out.AddSource = override.AddSource
	}
	if override.MaxSizeMB != nil {
		out.MaxSizeMB = override.MaxSizeMB
	}
	if override.MaxBackups != nil {
		out.MaxBackups = override.MaxBackups
	}
	if override.MaxAgeDays != nil {
		out.MaxAgeDays = override.MaxAgeDays
	}
	if override.Compress != nil {
		out.Compress = override.Compress
	}
	return out
}

func derefInt(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func derefBool(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
