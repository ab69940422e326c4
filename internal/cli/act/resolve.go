package act

import (
	"github.com/zynaxsoft/zellij/internal/action"
	"github.com/zynaxsoft/zellij/internal/cli/root"
	"github.com/zynaxsoft/zellij/internal/command"
)

// resolve turns a parsed command into its actions and prints them.
// The working directory is looked up lazily so verbs that never touch
// paths do not depend on it.
func resolve(ctx root.CommandContext, cmd command.Command) error {
	currentDir := func() string {
		dir, err := root.ResolveWorkDir(ctx.Deps)
		if err != nil {
			return ""
		}
		return dir
	}
	actions, err := action.FromCLI(cmd, currentDir, ctx.Deps.Config, ctx.Deps.DefaultLayoutDir)
	if err != nil {
		return err
	}
	return render(ctx, actions)
}
