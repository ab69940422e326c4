package root

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/zynaxsoft/zellij/internal/cli/spec"
)

// Runner executes the CLI using the spec and registry.
type Runner struct {
	specDoc *spec.Spec
	deps    Dependencies
	app     *cli.Command
}

// NewRunner builds the CLI runner.
func NewRunner(specDoc *spec.Spec, deps Dependencies, reg *Registry) (*Runner, error) {
	app, err := BuildApp(specDoc, deps, reg)
	if err != nil {
		return nil, err
	}
	return &Runner{specDoc: specDoc, deps: deps, app: app}, nil
}

// Run executes the CLI with the given arguments.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if r == nil || r.app == nil {
		return fmt.Errorf("runner is not initialized")
	}
	return r.app.Run(ctx, args)
}
