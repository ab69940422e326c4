package act

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/zynaxsoft/zellij/internal/cli/root"
	"github.com/zynaxsoft/zellij/internal/command"
	"github.com/zynaxsoft/zellij/internal/data"
)

func write(ctx root.CommandContext) error {
	raw := ctx.Cmd.StringArgs("bytes")
	bytes := make([]byte, 0, len(raw))
	for _, s := range raw {
		// Base 0 accepts both decimal and 0x-prefixed hex.
		value, err := strconv.ParseUint(s, 0, 8)
		if err != nil {
			return fmt.Errorf("invalid byte %q", s)
		}
		bytes = append(bytes, byte(value))
	}
	return resolve(ctx, command.Write{Bytes: bytes})
}

func writeChars(ctx root.CommandContext) error {
	return resolve(ctx, command.WriteChars{Chars: ctx.Cmd.StringArg("chars")})
}

func resize(ctx root.CommandContext) error {
	r, err := data.ParseResize(ctx.Cmd.StringArg("resize"))
	if err != nil {
		return err
	}
	direction, err := optionalDirectionArg(ctx, "direction")
	if err != nil {
		return err
	}
	return resolve(ctx, command.Resize{Resize: r, Direction: direction})
}

func focusNextPane(ctx root.CommandContext) error {
	return resolve(ctx, command.FocusNextPane{})
}

func focusPreviousPane(ctx root.CommandContext) error {
	return resolve(ctx, command.FocusPreviousPane{})
}

func moveFocus(ctx root.CommandContext) error {
	direction, err := data.ParseDirection(ctx.Cmd.StringArg("direction"))
	if err != nil {
		return err
	}
	return resolve(ctx, command.MoveFocus{Direction: direction})
}

func moveFocusOrTab(ctx root.CommandContext) error {
	direction, err := data.ParseDirection(ctx.Cmd.StringArg("direction"))
	if err != nil {
		return err
	}
	return resolve(ctx, command.MoveFocusOrTab{Direction: direction})
}

func movePane(ctx root.CommandContext) error {
	direction, err := optionalDirectionArg(ctx, "direction")
	if err != nil {
		return err
	}
	return resolve(ctx, command.MovePane{Direction: direction})
}

func movePaneBackwards(ctx root.CommandContext) error {
	return resolve(ctx, command.MovePaneBackwards{})
}

func toggleFullscreen(ctx root.CommandContext) error {
	return resolve(ctx, command.ToggleFullscreen{})
}

func togglePaneFrames(ctx root.CommandContext) error {
	return resolve(ctx, command.TogglePaneFrames{})
}

func togglePaneEmbedOrFloating(ctx root.CommandContext) error {
	return resolve(ctx, command.TogglePaneEmbedOrFloating{})
}

func toggleFloatingPanes(ctx root.CommandContext) error {
	return resolve(ctx, command.ToggleFloatingPanes{})
}

func closePane(ctx root.CommandContext) error {
	return resolve(ctx, command.ClosePane{})
}

func renamePane(ctx root.CommandContext) error {
	return resolve(ctx, command.RenamePane{Name: ctx.Cmd.StringArg("name")})
}

func undoRenamePane(ctx root.CommandContext) error {
	return resolve(ctx, command.UndoRenamePane{})
}

func newPane(ctx root.CommandContext) error {
	direction, err := optionalDirectionFlag(ctx, "direction")
	if err != nil {
		return err
	}
	args := ctx.Cmd.StringArgs("command")
	// A single quoted command string is split shell-style, so
	// new-pane "npm run dev" behaves like new-pane -- npm run dev.
	if len(args) == 1 {
		args, err = shellquote.Split(args[0])
		if err != nil {
			return fmt.Errorf("split command: %w", err)
		}
	}
	return resolve(ctx, command.NewPane{
		Direction:      direction,
		Command:        args,
		Plugin:         ctx.Cmd.String("plugin"),
		Cwd:            ctx.Cmd.String("cwd"),
		Floating:       ctx.Cmd.Bool("floating"),
		Name:           ctx.Cmd.String("name"),
		CloseOnExit:    ctx.Cmd.Bool("close-on-exit"),
		StartSuspended: ctx.Cmd.Bool("start-suspended"),
	})
}

func edit(ctx root.CommandContext) error {
	direction, err := optionalDirectionFlag(ctx, "direction")
	if err != nil {
		return err
	}
	var lineNumber *int
	if ctx.Cmd.IsSet("line-number") {
		n := ctx.Cmd.Int("line-number")
		lineNumber = &n
	}
	return resolve(ctx, command.Edit{
		File:       ctx.Cmd.StringArg("file"),
		Direction:  direction,
		LineNumber: lineNumber,
		Floating:   ctx.Cmd.Bool("floating"),
		Cwd:        ctx.Cmd.String("cwd"),
	})
}

func switchMode(ctx root.CommandContext) error {
	mode, err := data.ParseInputMode(ctx.Cmd.StringArg("mode"))
	if err != nil {
		return err
	}
	return resolve(ctx, command.SwitchMode{InputMode: mode})
}

func optionalDirectionArg(ctx root.CommandContext, name string) (*data.Direction, error) {
	raw := strings.TrimSpace(ctx.Cmd.StringArg(name))
	if raw == "" {
		return nil, nil
	}
	direction, err := data.ParseDirection(raw)
	if err != nil {
		return nil, err
	}
	return &direction, nil
}

func optionalDirectionFlag(ctx root.CommandContext, name string) (*data.Direction, error) {
	raw := strings.TrimSpace(ctx.Cmd.String(name))
	if raw == "" {
		return nil, nil
	}
	direction, err := data.ParseDirection(raw)
	if err != nil {
		return nil, err
	}
	return &direction, nil
}
