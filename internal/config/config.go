// Package config loads the optional app configuration. A missing
// config file is not an error; every consumer treats a nil Config as
// "all defaults".
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zynaxsoft/zellij/internal/appdirs"
	"github.com/zynaxsoft/zellij/internal/logging"
)

// OnForceClose selects what happens to the session when the client is
// force-closed.
type OnForceClose uint8

const (
	ForceCloseDetach OnForceClose = iota
	ForceCloseQuit
)

func ParseOnForceClose(s string) (OnForceClose, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "detach":
		return ForceCloseDetach, nil
	case "quit":
		return ForceCloseQuit, nil
	default:
		return 0, fmt.Errorf("unknown on_force_close value: %q", s)
	}
}

func (o OnForceClose) String() string {
	if o == ForceCloseQuit {
		return "quit"
	}
	return "detach"
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *OnForceClose) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseOnForceClose(raw)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Options are the user-tunable settings the resolver and CLI consume.
type Options struct {
	// LayoutDir overrides the layout-search directory.
	LayoutDir    string       `yaml:"layout_dir,omitempty"`
	DefaultMode  string       `yaml:"default_mode,omitempty"`
	OnForceClose OnForceClose `yaml:"on_force_close,omitempty"`
}

// Config is an immutable snapshot of the app configuration.
type Config struct {
	Options Options        `yaml:"options,omitempty"`
	Logging logging.Config `yaml:"logging,omitempty"`
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	return appdirs.ConfigFilePath()
}

// Load reads a config file. A missing file yields (nil, nil).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// LayoutDir returns the configured layout directory, or empty when the
// config (or the setting) is absent.
func (c *Config) LayoutDir() string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Options.LayoutDir)
}
