package layout

import (
	"strings"
	"testing"
)

func TestParseTemplatePanes(t *testing.T) {
	raw := `layout {
    pane size="1" borderless=true name="bar"
    pane split_direction="vertical" {
        pane
        pane
    }
}`
	parsed, err := Parse(raw, "test.kdl", nil, "/work")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if parsed.Template == nil {
		t.Fatal("Parse() produced no template")
	}
	if got := len(parsed.Template.Children); got != 2 {
		t.Fatalf("template children = %d, want 2", got)
	}
	first := parsed.Template.Children[0]
	if first.Size != "1" || !first.Borderless || first.Name != "bar" {
		t.Fatalf("first pane = %+v, want size=1 borderless name=bar", first)
	}
	second := parsed.Template.Children[1]
	if second.SplitDirection != SplitVertical {
		t.Fatalf("second pane split = %v, want vertical", second.SplitDirection)
	}
	if got := len(second.Children); got != 2 {
		t.Fatalf("second pane children = %d, want 2", got)
	}
}

func TestParseTabs(t *testing.T) {
	raw := `layout {
    tab name="editor" {
        pane command="vim" {
            args "main.go"
        }
    }
    tab name="logs" {
        pane
        floating_panes {
            pane name="scratch" x="10%" y="10%"
        }
    }
}`
	parsed, err := Parse(raw, "tabs.kdl", nil, "/work")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	tabs := parsed.Tabs()
	if len(tabs) != 2 {
		t.Fatalf("Tabs() = %d, want 2", len(tabs))
	}
	if tabs[0].Name != "editor" || tabs[1].Name != "logs" {
		t.Fatalf("tab names = %q, %q", tabs[0].Name, tabs[1].Name)
	}
	run := tabs[0].Root.Children[0].Run
	if run == nil || run.Command == nil {
		t.Fatalf("editor pane run = %+v, want command", run)
	}
	if run.Command.Command != "vim" || len(run.Command.Args) != 1 || run.Command.Args[0] != "main.go" {
		t.Fatalf("editor run = %+v", run.Command)
	}
	if len(tabs[1].Floating) != 1 || tabs[1].Floating[0].Name != "scratch" {
		t.Fatalf("logs floating = %+v", tabs[1].Floating)
	}
	if tabs[1].Floating[0].X != "10%" {
		t.Fatalf("floating x = %q, want 10%%", tabs[1].Floating[0].X)
	}
}

func TestParsePluginPane(t *testing.T) {
	raw := `layout {
    pane {
        plugin location="zellij:status-bar"
    }
    pane {
        plugin location="file:plugins/strider.wasm"
    }
}`
	parsed, err := Parse(raw, "plugins.kdl", nil, "/work")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	builtin := parsed.Template.Children[0].Run.Plugin.Location
	if builtin.Scheme != PluginSchemeBuiltin || builtin.Path != "status-bar" {
		t.Fatalf("builtin location = %+v", builtin)
	}
	file := parsed.Template.Children[1].Run.Plugin.Location
	if file.Scheme != PluginSchemeFile || file.Path != "/work/plugins/strider.wasm" {
		t.Fatalf("file location = %+v", file)
	}
}

func TestParseRejectsPanesAndTabsTogether(t *testing.T) {
	raw := `layout {
    pane
    tab name="x" {
        pane
    }
}`
	_, err := Parse(raw, "mixed.kdl", nil, "")
	if err == nil {
		t.Fatal("Parse() expected error for mixed panes and tabs")
	}
	if !strings.Contains(err.Error(), "cannot define both panes and tabs") {
		t.Fatalf("Parse() error = %q", err)
	}
}

func TestParseRejectsCommandAndPlugin(t *testing.T) {
	raw := `layout {
    pane command="htop" {
        plugin location="zellij:status-bar"
    }
}`
	_, err := Parse(raw, "conflict.kdl", nil, "")
	if err == nil {
		t.Fatal("Parse() expected error for command+plugin pane")
	}
	if !strings.Contains(err.Error(), "only one of command, edit or plugin") {
		t.Fatalf("Parse() error = %q", err)
	}
}

func TestParseSyntaxErrorNamesSource(t *testing.T) {
	raw := `layout {
    pane name="unterminated
}`
	_, err := Parse(raw, "broken.kdl", nil, "")
	if err == nil {
		t.Fatal("Parse() expected syntax error")
	}
	if !strings.Contains(err.Error(), "broken.kdl") {
		t.Fatalf("Parse() error does not name the source: %q", err)
	}
}

func TestParseUnknownNode(t *testing.T) {
	raw := `layout {
    window
}`
	_, err := Parse(raw, "unknown.kdl", nil, "")
	if err == nil {
		t.Fatal("Parse() expected error for unknown node")
	}
	if !strings.Contains(err.Error(), "unknown layout node") {
		t.Fatalf("Parse() error = %q", err)
	}
}

func TestParseSwapLayouts(t *testing.T) {
	raw := `layout {
    pane
}`
	swap := &SwapSource{Path: "default.swap.kdl", Raw: `swap_tiled_layout name="vertical" {
    tab max_panes="4" {
        pane split_direction="vertical" {
            pane
            pane
        }
    }
}
swap_floating_layout name="staggered" {
    floating_panes {
        pane
    }
}`}
	parsed, err := Parse(raw, "default.kdl", swap, "")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(parsed.SwapTiled) != 1 {
		t.Fatalf("SwapTiled = %d, want 1", len(parsed.SwapTiled))
	}
	tiled := parsed.SwapTiled[0]
	if tiled.Name != "vertical" || len(tiled.Variants) != 1 {
		t.Fatalf("swap tiled = %+v", tiled)
	}
	variant := tiled.Variants[0]
	if variant.Constraint.Kind != ConstraintMaxPanes || variant.Constraint.Panes != 4 {
		t.Fatalf("swap constraint = %+v", variant.Constraint)
	}
	if len(parsed.SwapFloating) != 1 || parsed.SwapFloating[0].Name != "staggered" {
		t.Fatalf("SwapFloating = %+v", parsed.SwapFloating)
	}
}

func TestNewTabFromTemplate(t *testing.T) {
	raw := `layout {
    pane name="top"
    pane name="bottom"
}`
	parsed, err := Parse(raw, "template.kdl", nil, "")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	root, floating := parsed.NewTab()
	if len(floating) != 0 {
		t.Fatalf("NewTab() floating = %d, want 0", len(floating))
	}
	if len(root.Children) != 2 || root.Children[0].Name != "top" {
		t.Fatalf("NewTab() root = %+v", root)
	}
	// The derived tree is a copy; mutating it must not touch the template.
	root.Children[0].Name = "changed"
	if parsed.Template.Children[0].Name != "top" {
		t.Fatal("NewTab() returned the template itself, not a copy")
	}
}

func TestNewTabWithoutTemplate(t *testing.T) {
	raw := `layout {
    tab {
        pane
    }
}`
	parsed, err := Parse(raw, "tabs-only.kdl", nil, "")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	root, _ := parsed.NewTab()
	if root == nil || len(root.Children) != 1 {
		t.Fatalf("NewTab() root = %+v, want single default pane", root)
	}
}
