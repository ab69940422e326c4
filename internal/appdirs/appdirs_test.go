package appdirs

import (
	"path/filepath"
	"testing"

	"github.com/zynaxsoft/zellij/internal/identity"
)

func TestConfigDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(identity.ConfigDirEnv, dir)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if got != dir {
		t.Fatalf("ConfigDir() = %q, want %q", got, dir)
	}

	layouts, err := LayoutDir()
	if err != nil {
		t.Fatalf("LayoutDir() error: %v", err)
	}
	if want := filepath.Join(dir, identity.GlobalLayoutsDir); layouts != want {
		t.Fatalf("LayoutDir() = %q, want %q", layouts, want)
	}
}

func TestConfigFileEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	t.Setenv(identity.ConfigFileEnv, path)

	got, err := ConfigFilePath()
	if err != nil {
		t.Fatalf("ConfigFilePath() error: %v", err)
	}
	if got != path {
		t.Fatalf("ConfigFilePath() = %q, want %q", got, path)
	}
}
