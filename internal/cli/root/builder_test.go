package root

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/zynaxsoft/zellij/internal/cli/spec"
)

func TestBuildAppErrors(t *testing.T) {
	reg := NewRegistry()
	if _, err := BuildApp(nil, Dependencies{}, reg); err == nil {
		t.Fatalf("expected error for nil spec")
	}
	if _, err := BuildApp(&spec.Spec{}, Dependencies{}, nil); err == nil {
		t.Fatalf("expected error for nil registry")
	}
}

func TestBuildAppRunsHandler(t *testing.T) {
	specDoc := &spec.Spec{
		App: spec.AppSpec{Name: "zellij"},
		Commands: []spec.Command{
			{Name: "cmd", ID: "cmd", Summary: "do"},
		},
	}
	reg := NewRegistry()
	called := false
	reg.Register("cmd", func(ctx CommandContext) error {
		called = true
		return nil
	})
	app, err := BuildApp(specDoc, Dependencies{}, reg)
	if err != nil {
		t.Fatalf("BuildApp() error: %v", err)
	}
	if err := app.Run(context.Background(), []string{"zellij", "cmd"}); err != nil {
		t.Fatalf("app.Run() error: %v", err)
	}
	if !called {
		t.Fatalf("expected handler called")
	}
}

func TestBuildAppMissingHandler(t *testing.T) {
	specDoc := &spec.Spec{
		App:      spec.AppSpec{Name: "zellij"},
		Commands: []spec.Command{{Name: "cmd", ID: "cmd"}},
	}
	if _, err := BuildApp(specDoc, Dependencies{}, NewRegistry()); err == nil {
		t.Fatalf("expected missing handler error")
	}
}

func TestRunHandlerJSONErrorResponse(t *testing.T) {
	specDoc := &spec.Spec{
		App:         spec.AppSpec{Name: "zellij"},
		GlobalFlags: []spec.Flag{{Name: "json", Type: "bool"}},
		Commands: []spec.Command{
			{Name: "cmd", ID: "cmd", Summary: "do"},
		},
	}
	var out bytes.Buffer
	reg := NewRegistry()
	reg.Register("cmd", func(ctx CommandContext) error {
		return errors.New("boom")
	})
	app, err := BuildApp(specDoc, Dependencies{Stdout: &out}, reg)
	if err != nil {
		t.Fatalf("BuildApp() error: %v", err)
	}
	app.ExitErrHandler = func(ctx context.Context, cmd *cli.Command, err error) {}
	err = app.Run(context.Background(), []string{"zellij", "cmd", "--json"})
	if err == nil {
		t.Fatalf("expected exit error")
	}
	if !strings.Contains(out.String(), `"command_failed"`) {
		t.Fatalf("expected error envelope, got %q", out.String())
	}
	if !strings.Contains(out.String(), "boom") {
		t.Fatalf("expected error message in envelope, got %q", out.String())
	}
}

func TestRunHandlerMissingRequiredArg(t *testing.T) {
	specDoc := &spec.Spec{
		App: spec.AppSpec{Name: "zellij"},
		Commands: []spec.Command{
			{
				Name: "cmd", ID: "cmd",
				Args: []spec.Arg{{Name: "name", Type: "string", Required: true}},
			},
		},
	}
	reg := NewRegistry()
	reg.Register("cmd", func(ctx CommandContext) error { return nil })
	app, err := BuildApp(specDoc, Dependencies{}, reg)
	if err != nil {
		t.Fatalf("BuildApp() error: %v", err)
	}
	if err := app.Run(context.Background(), []string{"zellij", "cmd"}); err == nil {
		t.Fatalf("expected missing argument error")
	}
}

func TestArgsUsage(t *testing.T) {
	usage := argsUsage([]spec.Arg{
		{Name: "file", Required: true},
		{Name: "rest", Variadic: true},
	})
	if usage != "FILE [REST...]" {
		t.Fatalf("argsUsage() = %q", usage)
	}
	if argsUsage(nil) != "" {
		t.Fatalf("expected empty usage for no args")
	}
}

func TestVersionFlag(t *testing.T) {
	specDoc := &spec.Spec{
		App:         spec.AppSpec{Name: "zellij"},
		GlobalFlags: []spec.Flag{{Name: "version", Type: "bool"}},
		Commands:    []spec.Command{{Name: "cmd", ID: "cmd"}},
	}
	var out bytes.Buffer
	reg := NewRegistry()
	reg.Register("cmd", func(ctx CommandContext) error { return nil })
	app, err := BuildApp(specDoc, Dependencies{Version: "1.2.3", Stdout: &out}, reg)
	if err != nil {
		t.Fatalf("BuildApp() error: %v", err)
	}
	app.ExitErrHandler = func(ctx context.Context, cmd *cli.Command, err error) {}
	_ = app.Run(context.Background(), []string{"zellij", "--version"})
	if got := strings.TrimSpace(out.String()); got != "zellij 1.2.3" {
		t.Fatalf("version output = %q", got)
	}
}
