// Package app assembles the CLI from the embedded spec and the
// handler packages.
package app

import (
	"github.com/zynaxsoft/zellij/internal/cli/root"
	"github.com/zynaxsoft/zellij/internal/cli/spec"
)

// NewRunner builds the CLI runner from the embedded spec.
func NewRunner(deps root.Dependencies) (*root.Runner, error) {
	specDoc, err := spec.LoadDefault()
	if err != nil {
		return nil, err
	}
	reg := root.NewRegistry()
	registerAll(reg)
	return root.NewRunner(specDoc, deps, reg)
}
