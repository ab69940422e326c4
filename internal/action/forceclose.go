package action

import "github.com/zynaxsoft/zellij/internal/config"

// FromForceClose maps the configured force-close behavior to its
// action. The mapping is total; there is no failure path.
func FromForceClose(behavior config.OnForceClose) Action {
	if behavior == config.ForceCloseQuit {
		return Quit{}
	}
	return Detach{}
}
