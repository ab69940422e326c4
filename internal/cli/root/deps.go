package root

import (
	"io"
	"os"

	"github.com/zynaxsoft/zellij/internal/config"
	"github.com/zynaxsoft/zellij/internal/identity"
)

// Dependencies provides external services for CLI handlers.
type Dependencies struct {
	Version string
	AppName string
	WorkDir string

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	// Config is the loaded user configuration, nil when no config
	// file exists.
	Config *config.Config

	// DefaultLayoutDir is the process-wide layout directory used
	// when neither the command line nor the config names one.
	DefaultLayoutDir string
}

// DefaultDependencies returns dependencies wired to production services.
func DefaultDependencies(version string) Dependencies {
	return Dependencies{
		Version: version,
		AppName: identity.CLIName,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
	}
}
