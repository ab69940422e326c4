package root

import (
	"testing"

	"github.com/zynaxsoft/zellij/internal/cli/spec"
)

func TestRegistryEnsureHandlers(t *testing.T) {
	specDoc := &spec.Spec{
		Commands: []spec.Command{{ID: "cmd", Name: "cmd"}},
	}
	reg := NewRegistry()
	if err := reg.EnsureHandlers(specDoc); err == nil {
		t.Fatalf("expected missing handler error")
	}
	reg.Register("cmd", func(ctx CommandContext) error { return nil })
	if err := reg.EnsureHandlers(specDoc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistryParentCommandsNeedNoHandler(t *testing.T) {
	specDoc := &spec.Spec{
		Commands: []spec.Command{{
			ID: "parent", Name: "parent",
			Subcommands: []spec.Command{{ID: "parent.leaf", Name: "leaf"}},
		}},
	}
	reg := NewRegistry()
	reg.Register("parent.leaf", func(ctx CommandContext) error { return nil })
	if err := reg.EnsureHandlers(specDoc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterNoop(t *testing.T) {
	var reg *Registry
	reg.Register("id", func(ctx CommandContext) error { return nil })
	empty := NewRegistry()
	empty.Register("", func(ctx CommandContext) error { return nil })
	if _, ok := empty.HandlerFor(""); ok {
		t.Fatalf("expected no handler for empty id")
	}
}

func TestFlagTypes(t *testing.T) {
	if _, err := buildFlag(spec.Flag{Name: "x", Type: "float"}); err == nil {
		t.Fatalf("expected error for unsupported flag type")
	}
	if _, err := buildFlag(spec.Flag{Type: "bool"}); err == nil {
		t.Fatalf("expected error for unnamed flag")
	}
	for _, typ := range []string{"string", "bool", "int"} {
		if _, err := buildFlag(spec.Flag{Name: "x", Type: typ}); err != nil {
			t.Fatalf("buildFlag(%s) error: %v", typ, err)
		}
	}
}

func TestEnumValidator(t *testing.T) {
	validate := enumValidator([]string{"left", "right"})
	if err := validate("left"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validate("sideways"); err == nil {
		t.Fatalf("expected error for value outside enum")
	}
}
