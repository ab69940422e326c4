package layout

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zynaxsoft/zellij/internal/data"
)

// RunCommand describes an external process backing a terminal pane.
type RunCommand struct {
	Command     string
	Args        []string
	Cwd         string
	Direction   *data.Direction
	HoldOnClose bool
	HoldOnStart bool
}

// PluginScheme is the location scheme of a plugin reference.
type PluginScheme string

const (
	// PluginSchemeFile points at a plugin bundle on disk.
	PluginSchemeFile PluginScheme = "file"
	// PluginSchemeBuiltin names a plugin compiled into the server.
	PluginSchemeBuiltin PluginScheme = "zellij"
)

// PluginLocation is a resolved, typed reference to a plugin.
type PluginLocation struct {
	Scheme PluginScheme
	// Path is an absolute filesystem path for file locations and the
	// builtin tag for builtin locations.
	Path string
}

func (l PluginLocation) String() string {
	return string(l.Scheme) + ":" + l.Path
}

// RunPlugin pairs a plugin location with its launch options.
type RunPlugin struct {
	Location         PluginLocation
	AllowExecHostCmd bool
}

// ParsePluginLocation resolves a user-supplied plugin URL or path.
// Relative file paths are anchored under cwd.
func ParsePluginLocation(raw string, cwd string) (PluginLocation, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PluginLocation{}, fmt.Errorf("plugin location is empty")
	}
	if rest, ok := strings.CutPrefix(trimmed, "zellij:"); ok {
		if rest == "" {
			return PluginLocation{}, fmt.Errorf("builtin plugin name is empty")
		}
		return PluginLocation{Scheme: PluginSchemeBuiltin, Path: rest}, nil
	}
	path := trimmed
	if rest, ok := strings.CutPrefix(trimmed, "file:"); ok {
		path = strings.TrimPrefix(rest, "//")
		if path == "" {
			return PluginLocation{}, fmt.Errorf("plugin path is empty")
		}
	} else if idx := strings.Index(trimmed, ":"); idx > 1 {
		// A scheme other than file: or zellij: is not something we can
		// load. Single-letter prefixes are left alone so Windows drive
		// paths keep working.
		scheme := trimmed[:idx]
		if !strings.ContainsAny(scheme, "/\\.") {
			return PluginLocation{}, fmt.Errorf("unknown plugin location scheme: %q", scheme)
		}
	}
	if !filepath.IsAbs(path) && cwd != "" {
		path = filepath.Join(cwd, path)
	}
	return PluginLocation{Scheme: PluginSchemeFile, Path: path}, nil
}
