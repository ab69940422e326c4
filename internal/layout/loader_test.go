package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStringifiedFromLayoutDir(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "dev.kdl")
	if err := os.WriteFile(layoutPath, []byte("layout {\n    pane\n}\n"), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}

	sourcePath, raw, swap, err := Stringified("dev", dir)
	if err != nil {
		t.Fatalf("Stringified() error: %v", err)
	}
	if sourcePath != layoutPath {
		t.Fatalf("Stringified() path = %q, want %q", sourcePath, layoutPath)
	}
	if !strings.Contains(raw, "pane") {
		t.Fatalf("Stringified() raw = %q", raw)
	}
	if swap != nil {
		t.Fatalf("Stringified() swap = %+v, want nil", swap)
	}
}

func TestStringifiedFindsSwapFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "dev.kdl"), []byte("layout {\n    pane\n}\n"), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	swapRaw := "swap_tiled_layout name=\"x\" {\n    tab {\n        pane\n    }\n}\n"
	if err := os.WriteFile(filepath.Join(dir, "dev.swap.kdl"), []byte(swapRaw), 0o644); err != nil {
		t.Fatalf("write swap layout: %v", err)
	}

	_, _, swap, err := Stringified("dev.kdl", dir)
	if err != nil {
		t.Fatalf("Stringified() error: %v", err)
	}
	if swap == nil || swap.Raw != swapRaw {
		t.Fatalf("Stringified() swap = %+v", swap)
	}
}

func TestStringifiedAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "abs.kdl")
	if err := os.WriteFile(layoutPath, []byte("layout {\n    pane\n}\n"), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}

	sourcePath, _, _, err := Stringified(layoutPath, filepath.Join(dir, "elsewhere"))
	if err != nil {
		t.Fatalf("Stringified() error: %v", err)
	}
	if sourcePath != layoutPath {
		t.Fatalf("Stringified() path = %q, want %q", sourcePath, layoutPath)
	}
}

func TestStringifiedBuiltinFallback(t *testing.T) {
	_, raw, swap, err := Stringified("default", t.TempDir())
	if err != nil {
		t.Fatalf("Stringified() error: %v", err)
	}
	if !strings.Contains(raw, "zellij:tab-bar") {
		t.Fatalf("builtin default layout = %q", raw)
	}
	if swap == nil || !strings.Contains(swap.Raw, "swap_tiled_layout") {
		t.Fatalf("builtin default swap = %+v", swap)
	}
}

func TestStringifiedNotFound(t *testing.T) {
	dir := t.TempDir()
	_, _, _, err := Stringified("nope", dir)
	if err == nil {
		t.Fatal("Stringified() expected error")
	}
	if !strings.Contains(err.Error(), "nope") || !strings.Contains(err.Error(), dir) {
		t.Fatalf("Stringified() error = %q", err)
	}
}

func TestBuiltinLayoutsParse(t *testing.T) {
	names, err := ListBuiltinLayouts()
	if err != nil {
		t.Fatalf("ListBuiltinLayouts() error: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("ListBuiltinLayouts() returned no layouts")
	}
	for _, name := range names {
		_, raw, swap, err := Stringified(name, "")
		if err != nil {
			t.Fatalf("Stringified(%q) error: %v", name, err)
		}
		if _, err := Parse(raw, name, swap, ""); err != nil {
			t.Fatalf("Parse(%q) error: %v", name, err)
		}
	}
}

func TestParsePluginLocation(t *testing.T) {
	cases := []struct {
		raw  string
		cwd  string
		want PluginLocation
	}{
		{"zellij:status-bar", "/work", PluginLocation{Scheme: PluginSchemeBuiltin, Path: "status-bar"}},
		{"file:/abs/p.wasm", "/work", PluginLocation{Scheme: PluginSchemeFile, Path: "/abs/p.wasm"}},
		{"file:///abs/p.wasm", "/work", PluginLocation{Scheme: PluginSchemeFile, Path: "/abs/p.wasm"}},
		{"file:rel/p.wasm", "/work", PluginLocation{Scheme: PluginSchemeFile, Path: "/work/rel/p.wasm"}},
		{"rel/p.wasm", "/work", PluginLocation{Scheme: PluginSchemeFile, Path: "/work/rel/p.wasm"}},
	}
	for _, tc := range cases {
		got, err := ParsePluginLocation(tc.raw, tc.cwd)
		if err != nil {
			t.Fatalf("ParsePluginLocation(%q) error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePluginLocation(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
	}
}

func TestParsePluginLocationErrors(t *testing.T) {
	for _, raw := range []string{"", "   ", "zellij:", "https://example.com/p.wasm"} {
		if _, err := ParsePluginLocation(raw, "/work"); err == nil {
			t.Fatalf("ParsePluginLocation(%q) expected error", raw)
		}
	}
}
