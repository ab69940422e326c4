package act

import (
	"fmt"
	"strconv"

	"github.com/zynaxsoft/zellij/internal/cli/root"
	"github.com/zynaxsoft/zellij/internal/command"
)

func toggleActiveSyncTab(ctx root.CommandContext) error {
	return resolve(ctx, command.ToggleActiveSyncTab{})
}

func goToNextTab(ctx root.CommandContext) error {
	return resolve(ctx, command.GoToNextTab{})
}

func goToPreviousTab(ctx root.CommandContext) error {
	return resolve(ctx, command.GoToPreviousTab{})
}

func closeTab(ctx root.CommandContext) error {
	return resolve(ctx, command.CloseTab{})
}

func goToTab(ctx root.CommandContext) error {
	raw := ctx.Cmd.StringArg("index")
	index, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid tab index %q", raw)
	}
	return resolve(ctx, command.GoToTab{Index: uint32(index)})
}

func goToTabName(ctx root.CommandContext) error {
	return resolve(ctx, command.GoToTabName{
		Name:   ctx.Cmd.StringArg("name"),
		Create: ctx.Cmd.Bool("create"),
	})
}

func renameTab(ctx root.CommandContext) error {
	return resolve(ctx, command.RenameTab{Name: ctx.Cmd.StringArg("name")})
}

func undoRenameTab(ctx root.CommandContext) error {
	return resolve(ctx, command.UndoRenameTab{})
}

func newTab(ctx root.CommandContext) error {
	return resolve(ctx, command.NewTab{
		Name:      ctx.Cmd.String("name"),
		Layout:    ctx.Cmd.String("layout"),
		LayoutDir: ctx.Cmd.String("layout-dir"),
		Cwd:       ctx.Cmd.String("cwd"),
	})
}

func previousSwapLayout(ctx root.CommandContext) error {
	return resolve(ctx, command.PreviousSwapLayout{})
}

func nextSwapLayout(ctx root.CommandContext) error {
	return resolve(ctx, command.NextSwapLayout{})
}

func queryTabNames(ctx root.CommandContext) error {
	return resolve(ctx, command.QueryTabNames{})
}
