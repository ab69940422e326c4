// Package appdirs resolves the on-disk locations for configuration and
// layouts. Environment overrides always win over platform defaults.
package appdirs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zynaxsoft/zellij/internal/identity"
)

// ConfigDir returns the directory that holds the app config and the
// layouts subdirectory.
func ConfigDir() (string, error) {
	if override := strings.TrimSpace(os.Getenv(identity.ConfigDirEnv)); override != "" {
		return expandHome(override), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, identity.AppSlug), nil
}

// ConfigFilePath returns the app config file path.
func ConfigFilePath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(identity.ConfigFileEnv)); override != "" {
		return expandHome(override), nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, identity.GlobalConfigFile), nil
}

// LayoutDir returns the default layout-search directory.
func LayoutDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, identity.GlobalLayoutsDir), nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
