package act

import (
	"github.com/zynaxsoft/zellij/internal/cli/root"
	"github.com/zynaxsoft/zellij/internal/command"
)

func startOrReloadPlugin(ctx root.CommandContext) error {
	return resolve(ctx, command.StartOrReloadPlugin{URL: ctx.Cmd.StringArg("url")})
}

func launchOrFocusPlugin(ctx root.CommandContext) error {
	return resolve(ctx, command.LaunchOrFocusPlugin{
		URL:      ctx.Cmd.StringArg("url"),
		Floating: ctx.Cmd.Bool("floating"),
	})
}
