package spec

import (
	"strings"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	doc, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	if doc.App.Name != "zellij" {
		t.Fatalf("app name = %q, want zellij", doc.App.Name)
	}
	if len(doc.Commands) == 0 {
		t.Fatal("spec has no commands")
	}
}

func TestActionSubcommandsHaveIDs(t *testing.T) {
	doc, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	action := doc.FindByID("action")
	if action == nil {
		t.Fatal("no action command in spec")
	}
	if len(action.Subcommands) == 0 {
		t.Fatal("action command has no subcommands")
	}
	for _, sub := range action.Subcommands {
		if !strings.HasPrefix(sub.ID, "action.") {
			t.Fatalf("subcommand %q has id %q, want action.* prefix", sub.Name, sub.ID)
		}
	}
}

func TestFindByID(t *testing.T) {
	doc, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	cmd := doc.FindByID("action.go-to-tab")
	if cmd == nil {
		t.Fatal("FindByID(action.go-to-tab) = nil")
	}
	if cmd.Name != "go-to-tab" {
		t.Fatalf("FindByID name = %q", cmd.Name)
	}
	if doc.FindByID("does.not.exist") != nil {
		t.Fatal("FindByID should return nil for unknown ids")
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	raw := `version: 1
app:
  name: zellij
commands:
  - name: one
    id: dup
  - name: two
    id: dup
`
	if _, err := Parse([]byte(raw)); err == nil {
		t.Fatal("Parse() expected duplicate id error")
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	raw := `version: 1
app:
  name: zellij
commands:
  - name: bad
    id: bad
    flags:
      - name: x
        type: float
`
	if _, err := Parse([]byte(raw)); err == nil {
		t.Fatal("Parse() expected schema validation error")
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse([]byte("  \n")); err == nil {
		t.Fatal("Parse() expected error for empty spec")
	}
}
