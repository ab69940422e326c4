package act

import (
	"github.com/zynaxsoft/zellij/internal/cli/root"
	"github.com/zynaxsoft/zellij/internal/command"
)

func clear(ctx root.CommandContext) error {
	return resolve(ctx, command.Clear{})
}

func dumpScreen(ctx root.CommandContext) error {
	return resolve(ctx, command.DumpScreen{
		Path: ctx.Cmd.StringArg("path"),
		Full: ctx.Cmd.Bool("full"),
	})
}

func editScrollback(ctx root.CommandContext) error {
	return resolve(ctx, command.EditScrollback{})
}

func scrollUp(ctx root.CommandContext) error {
	return resolve(ctx, command.ScrollUp{})
}

func scrollDown(ctx root.CommandContext) error {
	return resolve(ctx, command.ScrollDown{})
}

func scrollToBottom(ctx root.CommandContext) error {
	return resolve(ctx, command.ScrollToBottom{})
}

func scrollToTop(ctx root.CommandContext) error {
	return resolve(ctx, command.ScrollToTop{})
}

func pageScrollUp(ctx root.CommandContext) error {
	return resolve(ctx, command.PageScrollUp{})
}

func pageScrollDown(ctx root.CommandContext) error {
	return resolve(ctx, command.PageScrollDown{})
}

func halfPageScrollUp(ctx root.CommandContext) error {
	return resolve(ctx, command.HalfPageScrollUp{})
}

func halfPageScrollDown(ctx root.CommandContext) error {
	return resolve(ctx, command.HalfPageScrollDown{})
}
