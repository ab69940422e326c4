// Package layout loads and validates KDL layout descriptions: the pane
// trees, floating panes and swap layouts that a new tab can be built
// from.
package layout

import "encoding/json"

// SplitDirection is the axis a pane's children are stacked along.
type SplitDirection uint8

const (
	SplitHorizontal SplitDirection = iota
	SplitVertical
)

func (d SplitDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d SplitDirection) String() string {
	if d == SplitVertical {
		return "vertical"
	}
	return "horizontal"
}

// Run is what a pane executes: at most one field is set. A pane with a
// zero Run hosts the default shell.
type Run struct {
	Command  *RunCommand
	Plugin   *RunPlugin
	EditFile string
}

// TiledPane is one node of a tab's recursive pane tree.
type TiledPane struct {
	Children       []*TiledPane
	SplitDirection SplitDirection
	Size           string
	Name           string
	Borderless     bool
	Focus          bool
	Run            *Run
}

// Clone returns a deep copy of the pane tree.
func (p *TiledPane) Clone() *TiledPane {
	if p == nil {
		return nil
	}
	out := *p
	if p.Run != nil {
		run := *p.Run
		out.Run = &run
	}
	out.Children = make([]*TiledPane, 0, len(p.Children))
	for _, child := range p.Children {
		out.Children = append(out.Children, child.Clone())
	}
	return &out
}

// FloatingPane describes one floating pane and its placement.
type FloatingPane struct {
	Name   string
	X      string
	Y      string
	Width  string
	Height string
	Focus  bool
	Run    *Run
}

// ConstraintKind scopes a swap-layout variant to a pane count.
type ConstraintKind uint8

const (
	ConstraintAny ConstraintKind = iota
	ConstraintMinPanes
	ConstraintMaxPanes
	ConstraintExactPanes
)

// Constraint selects when a swap-layout variant applies.
type Constraint struct {
	Kind  ConstraintKind
	Panes int
}

// SwapTiledLayout is a named list of alternate tiled arrangements.
type SwapTiledLayout struct {
	Name     string
	Variants []SwapTiledVariant
}

// SwapTiledVariant is one alternate tiled arrangement.
type SwapTiledVariant struct {
	Constraint Constraint
	Root       *TiledPane
}

// SwapFloatingLayout is a named list of alternate floating arrangements.
type SwapFloatingLayout struct {
	Name     string
	Variants []SwapFloatingVariant
}

// SwapFloatingVariant is one alternate floating arrangement.
type SwapFloatingVariant struct {
	Constraint Constraint
	Panes      []FloatingPane
}

// Tab is one tab defined by a layout description.
type Tab struct {
	Name     string
	Root     *TiledPane
	Floating []FloatingPane
}

// Layout is a parsed layout description. A description defines either
// explicit tabs or a template the first tab is derived from; swap
// layouts apply to every tab it produces.
type Layout struct {
	Template         *TiledPane
	TemplateFloating []FloatingPane
	TabList          []Tab
	SwapTiled        []SwapTiledLayout
	SwapFloating     []SwapFloatingLayout
}

// Tabs returns the tabs the description defines explicitly.
func (l *Layout) Tabs() []Tab {
	return l.TabList
}

// NewTab derives a fresh single-tab arrangement from the description's
// root template.
func (l *Layout) NewTab() (*TiledPane, []FloatingPane) {
	if l.Template != nil {
		floating := make([]FloatingPane, len(l.TemplateFloating))
		copy(floating, l.TemplateFloating)
		return l.Template.Clone(), floating
	}
	return &TiledPane{Children: []*TiledPane{{}}}, nil
}
