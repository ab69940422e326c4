// Package entry holds the shared CLI entrypoint used by the binary.
package entry

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/zynaxsoft/zellij/internal/appdirs"
	"github.com/zynaxsoft/zellij/internal/cli/app"
	"github.com/zynaxsoft/zellij/internal/cli/root"
	"github.com/zynaxsoft/zellij/internal/config"
	"github.com/zynaxsoft/zellij/internal/identity"
	"github.com/zynaxsoft/zellij/internal/logging"
)

// Run starts the CLI and returns the process exit code.
func Run(args []string, version string) int {
	appName := identity.CLIName

	var cfg *config.Config
	if configPath, err := config.DefaultPath(); err == nil && configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: load config: %v\n", appName, err)
			return 1
		}
		cfg = loaded
	}

	logCfg := logging.Config{}
	if cfg != nil {
		logCfg = cfg.Logging
	}
	closeLogger, err := logging.Init(logCfg, logging.InitOptions{
		App:     identity.AppSlug,
		Version: version,
	})
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
		slog.Error("init logging failed; using stderr fallback", "err", err)
	} else if closeLogger != nil {
		defer func() { _ = closeLogger() }()
	}

	deps := root.DefaultDependencies(version)
	deps.AppName = appName
	deps.Config = cfg
	if layoutDir, err := appdirs.LayoutDir(); err == nil {
		deps.DefaultLayoutDir = layoutDir
	}
	runner, err := app.NewRunner(deps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	if err := runner.Run(context.Background(), args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}
