// Package layouts implements the "layouts" CLI command: it lists the
// layouts a new-tab action can resolve, builtin and user-provided.
package layouts

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/zynaxsoft/zellij/internal/cli/output"
	"github.com/zynaxsoft/zellij/internal/cli/root"
	"github.com/zynaxsoft/zellij/internal/layout"
)

// Register registers layout handlers.
func Register(reg *root.Registry) {
	reg.Register("layouts.list", runList)
}

type layoutEntry struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

func runList(ctx root.CommandContext) error {
	entries, err := collectLayouts(ctx)
	if err != nil {
		return err
	}
	if ctx.JSON {
		meta := output.NewMeta(ctx.Spec.ID, ctx.Deps.Version)
		return output.WriteSuccess(ctx.Out, meta, entries)
	}
	w := tabwriter.NewWriter(ctx.Out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "NAME\tSOURCE"); err != nil {
		return err
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", entry.Name, entry.Source); err != nil {
			return err
		}
	}
	return w.Flush()
}

func collectLayouts(ctx root.CommandContext) ([]layoutEntry, error) {
	builtin, err := layout.ListBuiltinLayouts()
	if err != nil {
		return nil, err
	}
	entries := make([]layoutEntry, 0, len(builtin))
	for _, name := range builtin {
		entries = append(entries, layoutEntry{Name: name, Source: "builtin"})
	}

	// Same precedence as new-tab resolution: configured dir first,
	// then the process default.
	dir := ctx.Deps.Config.LayoutDir()
	if dir == "" {
		dir = ctx.Deps.DefaultLayoutDir
	}
	if dir != "" {
		files, err := os.ReadDir(dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read layout dir %s: %w", dir, err)
		}
		for _, f := range files {
			name := f.Name()
			if f.IsDir() || !strings.HasSuffix(name, ".kdl") || strings.HasSuffix(name, ".swap.kdl") {
				continue
			}
			entries = append(entries, layoutEntry{Name: strings.TrimSuffix(name, ".kdl"), Source: "user"})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Source < entries[j].Source
	})
	return entries, nil
}
