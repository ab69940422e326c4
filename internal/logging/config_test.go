package logging

import "testing"

func TestMergeConfigOverrides(t *testing.T) {
	base := DefaultConfig()
	level := "debug"
	sink := "none"
	merged := mergeConfig(base, Config{Level: &level, Sink: &sink})

	if merged.Level == nil || *merged.Level != "debug" {
		t.Fatalf("merged level = %v, want debug", merged.Level)
	}
	if merged.Sink == nil || *merged.Sink != "none" {
		t.Fatalf("merged sink = %v, want none", merged.Sink)
	}
	if merged.Format == nil || *merged.Format != string(FormatText) {
		t.Fatalf("merged format = %v, want text default", merged.Format)
	}
}

func TestWithEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogCompress, "off")
	t.Setenv(EnvLogMaxBackups, "not-a-number")

	cfg := DefaultConfig().WithEnv()
	if cfg.Level == nil || *cfg.Level != "debug" {
		t.Fatalf("env level = %v, want debug", cfg.Level)
	}
	if cfg.Compress == nil || *cfg.Compress {
		t.Fatalf("env compress = %v, want false", cfg.Compress)
	}
	if cfg.MaxBackups == nil || *cfg.MaxBackups != 5 {
		t.Fatalf("invalid env int should keep default, got %v", cfg.MaxBackups)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "DEBUG",
		"warn":    "WARN",
		"warning": "WARN",
		"error":   "ERROR",
		"info":    "INFO",
		"bogus":   "INFO",
	}
	for in, want := range cases {
		level := parseLevel(&in)
		if got := level.Level().String(); got != want {
			t.Fatalf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
