// Package action defines the canonical vocabulary of multiplexer
// intents and the resolver that turns CLI commands into them. Every
// input surface (key bindings, scripted commands, plugin requests)
// ultimately speaks in these values.
package action

import (
	"reflect"

	"github.com/zynaxsoft/zellij/internal/data"
	"github.com/zynaxsoft/zellij/internal/layout"
)

// Action is one canonical intent. The set is closed: every consumer
// matches it exhaustively, and adding a variant is a breaking protocol
// change. Variants are pure value payloads; none hold live pane, tab or
// plugin objects, only identifiers, paths and descriptors the
// execution layer resolves against its own state.
type Action interface {
	isAction()
}

// Quit quits the whole session.
type Quit struct{}

// Write sends raw bytes to the focused pane's input stream.
type Write struct {
	Bytes []byte
}

// WriteChars sends text to the focused pane's input stream.
type WriteChars struct {
	Chars string
}

// SwitchToMode switches this client to an input mode.
type SwitchToMode struct {
	Mode data.InputMode
}

// SwitchModeForAllClients switches every connected client to an input
// mode.
type SwitchModeForAllClients struct {
	Mode data.InputMode
}

// Resize grows or shrinks the focused pane at an optional border.
type Resize struct {
	Resize    data.Resize
	Direction *data.Direction
}

type FocusNextPane struct{}

type FocusPreviousPane struct{}

type SwitchFocus struct{}

// MoveFocus moves focus to the next pane in a direction.
type MoveFocus struct {
	Direction data.Direction
}

// MoveFocusOrTab moves focus in a direction, switching to the
// previous/next tab when no pane is there.
type MoveFocusOrTab struct {
	Direction data.Direction
}

// MovePane moves the focused pane in a direction, or into the largest
// available space when none is given.
type MovePane struct {
	Direction *data.Direction
}

type MovePaneBackwards struct{}

// ClearScreen clears all buffers of the current screen.
type ClearScreen struct{}

// DumpScreen dumps the focused pane's screen to a file.
type DumpScreen struct {
	Path string
	Full bool
}

// EditScrollback opens the focused pane's scrollback in the default
// editor.
type EditScrollback struct{}

type ScrollUp struct{}

// ScrollUpAt scrolls up at a screen position.
type ScrollUpAt struct {
	Position data.Position
}

type ScrollDown struct{}

// ScrollDownAt scrolls down at a screen position.
type ScrollDownAt struct {
	Position data.Position
}

type ScrollToBottom struct{}

type ScrollToTop struct{}

type PageScrollUp struct{}

type PageScrollDown struct{}

type HalfPageScrollUp struct{}

type HalfPageScrollDown struct{}

type ToggleFocusFullscreen struct{}

type TogglePaneFrames struct{}

type ToggleActiveSyncTab struct{}

// NewPane opens a new pane in a direction relative to focus, using the
// biggest available space when no direction is given. Name is optional.
type NewPane struct {
	Direction *data.Direction
	Name      string
}

// EditFile opens a file in a new editor pane.
type EditFile struct {
	Path       string
	LineNumber *int
	Cwd        string
	Direction  *data.Direction
	Floating   bool
}

// NewFloatingPane opens a floating pane, optionally running a command.
type NewFloatingPane struct {
	Command *layout.RunCommand
	Name    string
}

// NewTiledPane opens a tiled pane, optionally running a command.
type NewTiledPane struct {
	Direction *data.Direction
	Command   *layout.RunCommand
	Name      string
}

type TogglePaneEmbedOrFloating struct{}

type ToggleFloatingPanes struct{}

// CloseFocus closes the focused pane.
type CloseFocus struct{}

// PaneNameInput appends bytes to the pending pane-rename buffer.
type PaneNameInput struct {
	Bytes []byte
}

type UndoRenamePane struct{}

// NewTab creates a tab. Layout and the swap lists are optional; a nil
// Layout creates the tab from the default layout. Name is optional and
// empty means unnamed.
type NewTab struct {
	Layout       *layout.TiledPane
	Floating     []layout.FloatingPane
	SwapTiled    []layout.SwapTiledLayout
	SwapFloating []layout.SwapFloatingLayout
	Name         string
}

type NoOp struct{}

type GoToNextTab struct{}

type GoToPreviousTab struct{}

type CloseTab struct{}

// GoToTab focuses the tab at a 1-based index.
type GoToTab struct {
	Index uint32
}

// GoToTabName focuses a tab by name, creating it when Create is set.
type GoToTabName struct {
	Name   string
	Create bool
}

type ToggleTab struct{}

// TabNameInput appends bytes to the pending tab-rename buffer. A
// single zero byte resets the buffer.
type TabNameInput struct {
	Bytes []byte
}

type UndoRenameTab struct{}

// Run runs a command in a new pane.
type Run struct {
	Command layout.RunCommand
}

// Detach detaches the session and exits.
type Detach struct{}

type LeftClick struct {
	Position data.Position
}

type RightClick struct {
	Position data.Position
}

type MiddleClick struct {
	Position data.Position
}

// LaunchOrFocusPlugin launches a plugin, or focuses its pane when it
// is already running.
type LaunchOrFocusPlugin struct {
	Plugin   layout.RunPlugin
	Floating bool
}

type LeftMouseRelease struct {
	Position data.Position
}

type RightMouseRelease struct {
	Position data.Position
}

type MiddleMouseRelease struct {
	Position data.Position
}

type MouseHoldLeft struct {
	Position data.Position
}

type MouseHoldRight struct {
	Position data.Position
}

type MouseHoldMiddle struct {
	Position data.Position
}

type Copy struct{}

// Confirm answers a pending prompt positively.
type Confirm struct{}

// Deny answers a pending prompt negatively.
type Deny struct{}

// SkipConfirm executes the wrapped action without prompting.
type SkipConfirm struct {
	Action Action
}

// SearchInput appends bytes to the pending search buffer.
type SearchInput struct {
	Bytes []byte
}

// Search continues the search in a direction.
type Search struct {
	Direction data.SearchDirection
}

// SearchToggleOption toggles a search behavior.
type SearchToggleOption struct {
	Option data.SearchOption
}

type ToggleMouseMode struct{}

type PreviousSwapLayout struct{}

type NextSwapLayout struct{}

// QueryTabNames asks for all tab names.
type QueryTabNames struct{}

// NewTiledPluginPane opens a tiled plugin pane. It deliberately has no
// direction: the client requesting it may differ from, and race with,
// the client whose focus would anchor the placement.
type NewTiledPluginPane struct {
	Location layout.PluginLocation
	Name     string
}

// NewFloatingPluginPane opens a floating plugin pane.
type NewFloatingPluginPane struct {
	Location layout.PluginLocation
	Name     string
}

// StartOrReloadPlugin starts a plugin, reloading it if already running.
type StartOrReloadPlugin struct {
	Plugin layout.RunPlugin
}

func (Quit) isAction()                      {}
func (Write) isAction()                     {}
func (WriteChars) isAction()                {}
func (SwitchToMode) isAction()              {}
func (SwitchModeForAllClients) isAction()   {}
func (Resize) isAction()                    {}
func (FocusNextPane) isAction()             {}
func (FocusPreviousPane) isAction()         {}
func (SwitchFocus) isAction()               {}
func (MoveFocus) isAction()                 {}
func (MoveFocusOrTab) isAction()            {}
func (MovePane) isAction()                  {}
func (MovePaneBackwards) isAction()         {}
func (ClearScreen) isAction()               {}
func (DumpScreen) isAction()                {}
func (EditScrollback) isAction()            {}
func (ScrollUp) isAction()                  {}
func (ScrollUpAt) isAction()                {}
func (ScrollDown) isAction()                {}
func (ScrollDownAt) isAction()              {}
func (ScrollToBottom) isAction()            {}
func (ScrollToTop) isAction()               {}
func (PageScrollUp) isAction()              {}
func (PageScrollDown) isAction()            {}
func (HalfPageScrollUp) isAction()          {}
func (HalfPageScrollDown) isAction()        {}
func (ToggleFocusFullscreen) isAction()     {}
func (TogglePaneFrames) isAction()          {}
func (ToggleActiveSyncTab) isAction()       {}
func (NewPane) isAction()                   {}
func (EditFile) isAction()                  {}
func (NewFloatingPane) isAction()           {}
func (NewTiledPane) isAction()              {}
func (TogglePaneEmbedOrFloating) isAction() {}
func (ToggleFloatingPanes) isAction()       {}
func (CloseFocus) isAction()                {}
func (PaneNameInput) isAction()             {}
func (UndoRenamePane) isAction()            {}
func (NewTab) isAction()                    {}
func (NoOp) isAction()                      {}
func (GoToNextTab) isAction()               {}
func (GoToPreviousTab) isAction()           {}
func (CloseTab) isAction()                  {}
func (GoToTab) isAction()                   {}
func (GoToTabName) isAction()               {}
func (ToggleTab) isAction()                 {}
func (TabNameInput) isAction()              {}
func (UndoRenameTab) isAction()             {}
func (Run) isAction()                       {}
func (Detach) isAction()                    {}
func (LeftClick) isAction()                 {}
func (RightClick) isAction()                {}
func (MiddleClick) isAction()               {}
func (LaunchOrFocusPlugin) isAction()       {}
func (LeftMouseRelease) isAction()          {}
func (RightMouseRelease) isAction()         {}
func (MiddleMouseRelease) isAction()        {}
func (MouseHoldLeft) isAction()             {}
func (MouseHoldRight) isAction()            {}
func (MouseHoldMiddle) isAction()           {}
func (Copy) isAction()                      {}
func (Confirm) isAction()                   {}
func (Deny) isAction()                      {}
func (SkipConfirm) isAction()               {}
func (SearchInput) isAction()               {}
func (Search) isAction()                    {}
func (SearchToggleOption) isAction()        {}
func (ToggleMouseMode) isAction()           {}
func (PreviousSwapLayout) isAction()        {}
func (NextSwapLayout) isAction()            {}
func (QueryTabNames) isAction()             {}
func (NewTiledPluginPane) isAction()        {}
func (NewFloatingPluginPane) isAction()     {}
func (StartOrReloadPlugin) isAction()       {}

// Equal reports full structural equality of two actions.
func Equal(a, b Action) bool {
	return reflect.DeepEqual(a, b)
}

// ShallowEq matches actions while ignoring their mutable payloads: any
// two NewTab actions are considered equal regardless of layout or
// name, so "a new-tab request was issued" can be recognized without
// caring which layout it carries. Every other pair falls back to full
// structural equality.
func ShallowEq(a, b Action) bool {
	if _, ok := a.(NewTab); ok {
		if _, ok := b.(NewTab); ok {
			return true
		}
	}
	return Equal(a, b)
}
