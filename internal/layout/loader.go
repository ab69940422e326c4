package layout

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed defaults/*.kdl
var embeddedLayouts embed.FS

// SwapSource is the raw text of a swap-layout file found next to a
// layout file.
type SwapSource struct {
	Raw  string
	Path string
}

// Stringified resolves a layout reference to raw KDL source. Absolute
// paths are used as given; relative ones are looked up under layoutDir
// first and the current directory second, with a .kdl extension added
// when missing. Bare names that match an embedded builtin layout fall
// back to it. A <name>.swap.kdl file next to the resolved layout is
// returned alongside.
func Stringified(path string, layoutDir string) (sourcePath string, raw string, swap *SwapSource, err error) {
	name := strings.TrimSpace(path)
	if name == "" {
		name = "default"
	}

	for _, candidate := range layoutCandidates(name, layoutDir) {
		info, statErr := os.Stat(candidate)
		if statErr != nil || info.IsDir() {
			continue
		}
		data, readErr := os.ReadFile(candidate)
		if readErr != nil {
			return "", "", nil, fmt.Errorf("read layout %s: %w", candidate, readErr)
		}
		return candidate, string(data), readSwapFile(swapPathFor(candidate)), nil
	}

	if builtin, swapSource, ok := builtinLayout(name); ok {
		return name, builtin, swapSource, nil
	}

	if layoutDir != "" {
		return "", "", nil, fmt.Errorf("layout %q not found in %s", name, layoutDir)
	}
	return "", "", nil, fmt.Errorf("layout %q not found", name)
}

func layoutCandidates(name string, layoutDir string) []string {
	withExt := name
	if !strings.HasSuffix(name, ".kdl") {
		withExt = name + ".kdl"
	}
	if filepath.IsAbs(name) {
		return []string{name, withExt}
	}
	var out []string
	if layoutDir != "" {
		out = append(out, filepath.Join(layoutDir, name), filepath.Join(layoutDir, withExt))
	}
	return append(out, name, withExt)
}

func swapPathFor(layoutPath string) string {
	return strings.TrimSuffix(layoutPath, ".kdl") + ".swap.kdl"
}

func readSwapFile(path string) *SwapSource {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return &SwapSource{Raw: string(data), Path: path}
}

func builtinLayout(name string) (raw string, swap *SwapSource, ok bool) {
	base := strings.TrimSuffix(name, ".kdl")
	data, err := embeddedLayouts.ReadFile("defaults/" + base + ".kdl")
	if err != nil {
		return "", nil, false
	}
	swapName := "defaults/" + base + ".swap.kdl"
	if swapData, err := embeddedLayouts.ReadFile(swapName); err == nil {
		swap = &SwapSource{Raw: string(swapData), Path: swapName}
	}
	return string(data), swap, true
}

// ListBuiltinLayouts returns the names of the embedded layouts.
func ListBuiltinLayouts() ([]string, error) {
	entries, err := embeddedLayouts.ReadDir("defaults")
	if err != nil {
		return nil, fmt.Errorf("read embedded layouts: %w", err)
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".kdl") || strings.HasSuffix(name, ".swap.kdl") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".kdl"))
	}
	return names, nil
}
