package app

import (
	"github.com/zynaxsoft/zellij/internal/cli/act"
	"github.com/zynaxsoft/zellij/internal/cli/layouts"
	"github.com/zynaxsoft/zellij/internal/cli/root"
)

func registerAll(reg *root.Registry) {
	if reg == nil {
		return
	}
	act.Register(reg)
	layouts.Register(reg)
}
