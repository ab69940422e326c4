package root

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/zynaxsoft/zellij/internal/cli/spec"
)

func validateArgs(cmdSpec spec.Command, cmd *cli.Command) error {
	if len(cmdSpec.Args) == 0 {
		return nil
	}
	for _, argSpec := range cmdSpec.Args {
		if !argSpec.Required {
			continue
		}
		name := strings.TrimSpace(argSpec.Name)
		if name == "" {
			continue
		}
		if argSpec.Variadic {
			values := cmd.StringArgs(name)
			if len(values) == 0 {
				return fmt.Errorf("missing argument %q", argSpec.Name)
			}
			continue
		}
		if strings.TrimSpace(cmd.StringArg(name)) == "" {
			return fmt.Errorf("missing argument %q", argSpec.Name)
		}
	}
	return nil
}
