package root

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveWorkDir returns the directory command paths are resolved
// against. The dependency override wins; otherwise the process working
// directory is used.
func ResolveWorkDir(deps Dependencies) (string, error) {
	if dir := strings.TrimSpace(deps.WorkDir); dir != "" {
		return filepath.Abs(dir)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Abs(cwd)
}
