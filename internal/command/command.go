// Package command defines the closed set of externally-parsed CLI
// command values the resolver consumes. One struct per verb; optional
// values are pointers or empty strings.
package command

import "github.com/zynaxsoft/zellij/internal/data"

// Command is one fully-parsed CLI verb with its arguments. The set is
// closed; the resolver matches every shape.
type Command interface {
	isCommand()
}

// Write sends raw bytes to the focused pane.
type Write struct {
	Bytes []byte
}

// WriteChars sends a text string to the focused pane.
type WriteChars struct {
	Chars string
}

// Resize grows or shrinks the focused pane at an optional border.
type Resize struct {
	Resize    data.Resize
	Direction *data.Direction
}

type FocusNextPane struct{}

type FocusPreviousPane struct{}

// MoveFocus moves focus in a direction.
type MoveFocus struct {
	Direction data.Direction
}

// MoveFocusOrTab moves focus in a direction, crossing to the adjacent
// tab at the screen edge.
type MoveFocusOrTab struct {
	Direction data.Direction
}

// MovePane moves the focused pane in a direction, or to the largest
// space when no direction is given.
type MovePane struct {
	Direction *data.Direction
}

type MovePaneBackwards struct{}

// Clear clears the focused pane's buffers.
type Clear struct{}

// DumpScreen writes the focused pane's screen to a file.
type DumpScreen struct {
	Path string
	Full bool
}

type EditScrollback struct{}

type ScrollUp struct{}

type ScrollDown struct{}

type ScrollToBottom struct{}

type ScrollToTop struct{}

type PageScrollUp struct{}

type PageScrollDown struct{}

type HalfPageScrollUp struct{}

type HalfPageScrollDown struct{}

type ToggleFullscreen struct{}

type TogglePaneFrames struct{}

type ToggleActiveSyncTab struct{}

// NewPane opens a new pane. Exactly one of Plugin, a non-empty Command
// or neither decides what the pane hosts.
type NewPane struct {
	Direction      *data.Direction
	Command        []string
	Plugin         string
	Cwd            string
	Floating       bool
	Name           string
	CloseOnExit    bool
	StartSuspended bool
}

// Edit opens a file in a new editor pane.
type Edit struct {
	File       string
	Direction  *data.Direction
	LineNumber *int
	Floating   bool
	Cwd        string
}

// SwitchMode switches every connected client to an input mode.
type SwitchMode struct {
	InputMode data.InputMode
}

type TogglePaneEmbedOrFloating struct{}

type ToggleFloatingPanes struct{}

type ClosePane struct{}

// RenamePane renames the focused pane.
type RenamePane struct {
	Name string
}

type UndoRenamePane struct{}

type GoToNextTab struct{}

type GoToPreviousTab struct{}

type CloseTab struct{}

// GoToTab focuses a tab by index.
type GoToTab struct {
	Index uint32
}

// GoToTabName focuses a tab by name, optionally creating it.
type GoToTabName struct {
	Name   string
	Create bool
}

// RenameTab renames the focused tab.
type RenameTab struct {
	Name string
}

type UndoRenameTab struct{}

// NewTab creates a tab, optionally from a layout file.
type NewTab struct {
	Name      string
	Layout    string
	LayoutDir string
	Cwd       string
}

type PreviousSwapLayout struct{}

type NextSwapLayout struct{}

type QueryTabNames struct{}

// StartOrReloadPlugin starts a plugin or reloads it if already running.
type StartOrReloadPlugin struct {
	URL string
}

// LaunchOrFocusPlugin launches a plugin or focuses its existing pane.
type LaunchOrFocusPlugin struct {
	URL      string
	Floating bool
}

func (Write) isCommand()                     {}
func (WriteChars) isCommand()                {}
func (Resize) isCommand()                    {}
func (FocusNextPane) isCommand()             {}
func (FocusPreviousPane) isCommand()         {}
func (MoveFocus) isCommand()                 {}
func (MoveFocusOrTab) isCommand()            {}
func (MovePane) isCommand()                  {}
func (MovePaneBackwards) isCommand()         {}
func (Clear) isCommand()                     {}
func (DumpScreen) isCommand()                {}
func (EditScrollback) isCommand()            {}
func (ScrollUp) isCommand()                  {}
func (ScrollDown) isCommand()                {}
func (ScrollToBottom) isCommand()            {}
func (ScrollToTop) isCommand()               {}
func (PageScrollUp) isCommand()              {}
func (PageScrollDown) isCommand()            {}
func (HalfPageScrollUp) isCommand()          {}
func (HalfPageScrollDown) isCommand()        {}
func (ToggleFullscreen) isCommand()          {}
func (TogglePaneFrames) isCommand()          {}
func (ToggleActiveSyncTab) isCommand()       {}
func (NewPane) isCommand()                   {}
func (Edit) isCommand()                      {}
func (SwitchMode) isCommand()                {}
func (TogglePaneEmbedOrFloating) isCommand() {}
func (ToggleFloatingPanes) isCommand()       {}
func (ClosePane) isCommand()                 {}
func (RenamePane) isCommand()                {}
func (UndoRenamePane) isCommand()            {}
func (GoToNextTab) isCommand()               {}
func (GoToPreviousTab) isCommand()           {}
func (CloseTab) isCommand()                  {}
func (GoToTab) isCommand()                   {}
func (GoToTabName) isCommand()               {}
func (RenameTab) isCommand()                 {}
func (UndoRenameTab) isCommand()             {}
func (NewTab) isCommand()                    {}
func (PreviousSwapLayout) isCommand()        {}
func (NextSwapLayout) isCommand()            {}
func (QueryTabNames) isCommand()             {}
func (StartOrReloadPlugin) isCommand()       {}
func (LaunchOrFocusPlugin) isCommand()       {}
