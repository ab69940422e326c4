package root

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/zynaxsoft/zellij/internal/cli/spec"
)

func buildFlags(flags []spec.Flag) ([]cli.Flag, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	out := make([]cli.Flag, 0, len(flags))
	for _, flag := range flags {
		built, err := buildFlag(flag)
		if err != nil {
			return nil, err
		}
		if built != nil {
			out = append(out, built)
		}
	}
	return out, nil
}

func buildFlag(flag spec.Flag) (cli.Flag, error) {
	name := strings.TrimSpace(flag.Name)
	if name == "" {
		return nil, fmt.Errorf("flag name is required")
	}
	switch strings.TrimSpace(flag.Type) {
	case "bool":
		return &cli.BoolFlag{
			Name:     name,
			Aliases:  flag.Aliases,
			Usage:    flag.Description,
			Required: flag.Required,
			Hidden:   flag.Hidden,
		}, nil
	case "string":
		fl := &cli.StringFlag{
			Name:     name,
			Aliases:  flag.Aliases,
			Usage:    flag.Description,
			Required: flag.Required,
			Hidden:   flag.Hidden,
		}
		if len(flag.Enum) > 0 {
			fl.Validator = enumValidator(flag.Enum)
		}
		return fl, nil
	case "int":
		return &cli.IntFlag{
			Name:     name,
			Aliases:  flag.Aliases,
			Usage:    flag.Description,
			Required: flag.Required,
			Hidden:   flag.Hidden,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported flag type %q for %s", flag.Type, name)
	}
}

func enumValidator(values []string) func(string) error {
	allowed := make(map[string]struct{}, len(values))
	for _, value := range values {
		allowed[value] = struct{}{}
	}
	return func(val string) error {
		if _, ok := allowed[val]; !ok {
			return fmt.Errorf("invalid value %q (allowed: %s)", val, strings.Join(values, ", "))
		}
		return nil
	}
}
