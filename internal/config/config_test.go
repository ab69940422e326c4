package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != nil {
		t.Fatalf("Load() = %+v, want nil for missing file", cfg)
	}
	if got := cfg.LayoutDir(); got != "" {
		t.Fatalf("nil config LayoutDir() = %q, want empty", got)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	raw := "options:\n  layout_dir: /home/u/layouts\n  on_force_close: quit\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.LayoutDir(); got != "/home/u/layouts" {
		t.Fatalf("LayoutDir() = %q", got)
	}
	if cfg.Options.OnForceClose != ForceCloseQuit {
		t.Fatalf("OnForceClose = %v, want quit", cfg.Options.OnForceClose)
	}
}

func TestLoadRejectsBadForceClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("options:\n  on_force_close: explode\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for bad on_force_close")
	}
}

func TestParseOnForceClose(t *testing.T) {
	if got, err := ParseOnForceClose(""); err != nil || got != ForceCloseDetach {
		t.Fatalf("ParseOnForceClose(\"\") = %v, %v", got, err)
	}
	if got, err := ParseOnForceClose("Quit"); err != nil || got != ForceCloseQuit {
		t.Fatalf("ParseOnForceClose(Quit) = %v, %v", got, err)
	}
}
