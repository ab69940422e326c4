package layout

import (
	"path/filepath"
	"strings"

	"github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// Parse builds a Layout from raw KDL source. sourcePath names the file
// in diagnostics. swap optionally supplies a side-by-side swap-layout
// file whose swap nodes are merged into the result. Relative paths
// inside the layout (pane cwd, plugin locations) are anchored under cwd.
func Parse(raw string, sourcePath string, swap *SwapSource, cwd string) (*Layout, error) {
	doc, err := kdl.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, &syntaxError{sourceName: sourcePath, source: raw, cause: err}
	}

	w := walker{sourceName: sourcePath, cwd: cwd}
	out := &Layout{}

	root := findTopNode(doc.Nodes, "layout")
	if root == nil {
		return nil, newDeserializeError(sourcePath, "no layout node found")
	}
	if err := w.walkLayoutChildren(root.Children, out); err != nil {
		return nil, err
	}

	if swap != nil && strings.TrimSpace(swap.Raw) != "" {
		swapDoc, err := kdl.Parse(strings.NewReader(swap.Raw))
		if err != nil {
			return nil, &syntaxError{sourceName: swap.Path, source: swap.Raw, cause: err}
		}
		sw := walker{sourceName: swap.Path, cwd: cwd}
		nodes := swapDoc.Nodes
		if swapRoot := findTopNode(nodes, "layout"); swapRoot != nil {
			nodes = swapRoot.Children
		}
		for _, node := range nodes {
			switch nodeName(node) {
			case "swap_tiled_layout":
				swapLayout, err := sw.parseSwapTiled(node)
				if err != nil {
					return nil, err
				}
				out.SwapTiled = append(out.SwapTiled, swapLayout)
			case "swap_floating_layout":
				swapLayout, err := sw.parseSwapFloating(node)
				if err != nil {
					return nil, err
				}
				out.SwapFloating = append(out.SwapFloating, swapLayout)
			}
		}
	}

	return out, nil
}

func findTopNode(nodes []*document.Node, name string) *document.Node {
	for _, node := range nodes {
		if nodeName(node) == name {
			return node
		}
	}
	return nil
}

type walker struct {
	sourceName string
	cwd        string
}

func (w walker) fail(format string, args ...any) error {
	return newDeserializeError(w.sourceName, format, args...)
}

func (w walker) walkLayoutChildren(children []*document.Node, out *Layout) error {
	var templatePanes []*TiledPane
	for _, child := range children {
		switch name := nodeName(child); name {
		case "pane":
			pane, err := w.parsePane(child)
			if err != nil {
				return err
			}
			templatePanes = append(templatePanes, pane)
		case "tab":
			tab, err := w.parseTab(child)
			if err != nil {
				return err
			}
			out.TabList = append(out.TabList, tab)
		case "floating_panes":
			floating, err := w.parseFloatingPanes(child)
			if err != nil {
				return err
			}
			out.TemplateFloating = append(out.TemplateFloating, floating...)
		case "swap_tiled_layout":
			swapLayout, err := w.parseSwapTiled(child)
			if err != nil {
				return err
			}
			out.SwapTiled = append(out.SwapTiled, swapLayout)
		case "swap_floating_layout":
			swapLayout, err := w.parseSwapFloating(child)
			if err != nil {
				return err
			}
			out.SwapFloating = append(out.SwapFloating, swapLayout)
		default:
			return w.fail("unknown layout node: %q", name)
		}
	}
	if len(templatePanes) > 0 && len(out.TabList) > 0 {
		return w.fail("cannot define both panes and tabs on the same level")
	}
	if len(templatePanes) > 0 {
		out.Template = &TiledPane{Children: templatePanes}
	}
	return nil
}

func (w walker) parseTab(node *document.Node) (Tab, error) {
	tab := Tab{}
	tab.Name, _ = nodeProp(node, "name")
	var panes []*TiledPane
	for _, child := range node.Children {
		switch name := nodeName(child); name {
		case "pane":
			pane, err := w.parsePane(child)
			if err != nil {
				return Tab{}, err
			}
			panes = append(panes, pane)
		case "floating_panes":
			floating, err := w.parseFloatingPanes(child)
			if err != nil {
				return Tab{}, err
			}
			tab.Floating = append(tab.Floating, floating...)
		default:
			return Tab{}, w.fail("unknown tab node: %q", name)
		}
	}
	if len(panes) == 0 {
		panes = []*TiledPane{{}}
	}
	tab.Root = &TiledPane{Children: panes}
	return tab, nil
}

func (w walker) parsePane(node *document.Node) (*TiledPane, error) {
	pane := &TiledPane{}
	if raw, ok := nodeProp(node, "split_direction"); ok {
		switch raw {
		case "horizontal":
			pane.SplitDirection = SplitHorizontal
		case "vertical":
			pane.SplitDirection = SplitVertical
		default:
			return nil, w.fail("invalid split_direction: %q", raw)
		}
	}
	pane.Size, _ = nodeProp(node, "size")
	pane.Name, _ = nodeProp(node, "name")
	if v, ok, err := nodePropBool(node, "borderless"); ok {
		if err != nil {
			return nil, w.fail("invalid borderless value: %v", err)
		}
		pane.Borderless = v
	}
	if v, ok, err := nodePropBool(node, "focus"); ok {
		if err != nil {
			return nil, w.fail("invalid focus value: %v", err)
		}
		pane.Focus = v
	}

	run, err := w.parseRun(node)
	if err != nil {
		return nil, err
	}
	pane.Run = run

	for _, child := range childNodes(node, "pane") {
		sub, err := w.parsePane(child)
		if err != nil {
			return nil, err
		}
		pane.Children = append(pane.Children, sub)
	}
	if len(pane.Children) > 0 && pane.Run != nil {
		return nil, w.fail("a pane with children cannot run a command or plugin")
	}
	return pane, nil
}

func (w walker) parseRun(node *document.Node) (*Run, error) {
	command, hasCommand := nodeProp(node, "command")
	edit, hasEdit := nodeProp(node, "edit")
	plugin := firstChild(node, "plugin")

	set := 0
	for _, present := range []bool{hasCommand, hasEdit, plugin != nil} {
		if present {
			set++
		}
	}
	if set == 0 {
		return nil, nil
	}
	if set > 1 {
		return nil, w.fail("pane can run only one of command, edit or plugin")
	}

	switch {
	case hasCommand:
		run := RunCommand{Command: command}
		if args := firstChild(node, "args"); args != nil {
			run.Args = nodeArgs(args)
		}
		if cwd, ok := nodeProp(node, "cwd"); ok {
			run.Cwd = w.resolvePath(cwd)
		}
		return &Run{Command: &run}, nil
	case hasEdit:
		return &Run{EditFile: w.resolvePath(edit)}, nil
	default:
		location, ok := nodeProp(plugin, "location")
		if !ok {
			if args := nodeArgs(plugin); len(args) > 0 {
				location = args[0]
			}
		}
		parsed, err := ParsePluginLocation(location, w.cwd)
		if err != nil {
			return nil, w.fail("invalid plugin location %q: %v", location, err)
		}
		return &Run{Plugin: &RunPlugin{Location: parsed}}, nil
	}
}

func (w walker) resolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) || w.cwd == "" {
		return path
	}
	return filepath.Join(w.cwd, path)
}

func (w walker) parseFloatingPanes(node *document.Node) ([]FloatingPane, error) {
	var out []FloatingPane
	for _, child := range node.Children {
		if name := nodeName(child); name != "pane" {
			return nil, w.fail("unknown floating_panes node: %q", name)
		}
		pane := FloatingPane{}
		pane.Name, _ = nodeProp(child, "name")
		pane.X, _ = nodeProp(child, "x")
		pane.Y, _ = nodeProp(child, "y")
		pane.Width, _ = nodeProp(child, "width")
		pane.Height, _ = nodeProp(child, "height")
		if v, ok, err := nodePropBool(child, "focus"); ok {
			if err != nil {
				return nil, w.fail("invalid focus value: %v", err)
			}
			pane.Focus = v
		}
		run, err := w.parseRun(child)
		if err != nil {
			return nil, err
		}
		pane.Run = run
		out = append(out, pane)
	}
	return out, nil
}

func (w walker) parseSwapTiled(node *document.Node) (SwapTiledLayout, error) {
	out := SwapTiledLayout{}
	out.Name, _ = nodeProp(node, "name")
	for _, child := range node.Children {
		if name := nodeName(child); name != "tab" {
			return SwapTiledLayout{}, w.fail("unknown swap_tiled_layout node: %q", name)
		}
		constraint, err := w.parseConstraint(child)
		if err != nil {
			return SwapTiledLayout{}, err
		}
		tab, err := w.parseTab(child)
		if err != nil {
			return SwapTiledLayout{}, err
		}
		out.Variants = append(out.Variants, SwapTiledVariant{
			Constraint: constraint,
			Root:       tab.Root,
		})
	}
	return out, nil
}

func (w walker) parseSwapFloating(node *document.Node) (SwapFloatingLayout, error) {
	out := SwapFloatingLayout{}
	out.Name, _ = nodeProp(node, "name")
	for _, child := range node.Children {
		if name := nodeName(child); name != "floating_panes" {
			return SwapFloatingLayout{}, w.fail("unknown swap_floating_layout node: %q", name)
		}
		constraint, err := w.parseConstraint(child)
		if err != nil {
			return SwapFloatingLayout{}, err
		}
		panes, err := w.parseFloatingPanes(child)
		if err != nil {
			return SwapFloatingLayout{}, err
		}
		out.Variants = append(out.Variants, SwapFloatingVariant{
			Constraint: constraint,
			Panes:      panes,
		})
	}
	return out, nil
}

func (w walker) parseConstraint(node *document.Node) (Constraint, error) {
	kinds := []struct {
		prop string
		kind ConstraintKind
	}{
		{"min_panes", ConstraintMinPanes},
		{"max_panes", ConstraintMaxPanes},
		{"exact_panes", ConstraintExactPanes},
	}
	out := Constraint{Kind: ConstraintAny}
	for _, k := range kinds {
		v, ok, err := nodePropInt(node, k.prop)
		if !ok {
			continue
		}
		if err != nil {
			return Constraint{}, w.fail("invalid %s value: %v", k.prop, err)
		}
		if out.Kind != ConstraintAny {
			return Constraint{}, w.fail("only one pane-count constraint is allowed per node")
		}
		out = Constraint{Kind: k.kind, Panes: v}
	}
	return out, nil
}
