package action

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/zynaxsoft/zellij/internal/command"
	"github.com/zynaxsoft/zellij/internal/config"
	"github.com/zynaxsoft/zellij/internal/layout"
)

// FromCLI resolves one externally-parsed CLI command into the ordered
// action sequence the execution layer must run. currentDir supplies
// the caller's working directory and is invoked at most once per call;
// cfg may be nil; defaultLayoutDir is the process-wide layout
// directory used when neither the command nor the config names one.
//
// Resolution is all-or-nothing: either the full sequence is returned
// or a single, fully rendered diagnostic error.
func FromCLI(c command.Command, currentDir func() string, cfg *config.Config, defaultLayoutDir string) ([]Action, error) {
	switch v := c.(type) {
	case command.Write:
		return []Action{Write{Bytes: v.Bytes}}, nil
	case command.WriteChars:
		return []Action{WriteChars{Chars: v.Chars}}, nil
	case command.Resize:
		return []Action{Resize{Resize: v.Resize, Direction: v.Direction}}, nil
	case command.FocusNextPane:
		return []Action{FocusNextPane{}}, nil
	case command.FocusPreviousPane:
		return []Action{FocusPreviousPane{}}, nil
	case command.MoveFocus:
		return []Action{MoveFocus{Direction: v.Direction}}, nil
	case command.MoveFocusOrTab:
		return []Action{MoveFocusOrTab{Direction: v.Direction}}, nil
	case command.MovePane:
		return []Action{MovePane{Direction: v.Direction}}, nil
	case command.MovePaneBackwards:
		return []Action{MovePaneBackwards{}}, nil
	case command.Clear:
		return []Action{ClearScreen{}}, nil
	case command.DumpScreen:
		return []Action{DumpScreen{Path: v.Path, Full: v.Full}}, nil
	case command.EditScrollback:
		return []Action{EditScrollback{}}, nil
	case command.ScrollUp:
		return []Action{ScrollUp{}}, nil
	case command.ScrollDown:
		return []Action{ScrollDown{}}, nil
	case command.ScrollToBottom:
		return []Action{ScrollToBottom{}}, nil
	case command.ScrollToTop:
		return []Action{ScrollToTop{}}, nil
	case command.PageScrollUp:
		return []Action{PageScrollUp{}}, nil
	case command.PageScrollDown:
		return []Action{PageScrollDown{}}, nil
	case command.HalfPageScrollUp:
		return []Action{HalfPageScrollUp{}}, nil
	case command.HalfPageScrollDown:
		return []Action{HalfPageScrollDown{}}, nil
	case command.ToggleFullscreen:
		return []Action{ToggleFocusFullscreen{}}, nil
	case command.TogglePaneFrames:
		return []Action{TogglePaneFrames{}}, nil
	case command.ToggleActiveSyncTab:
		return []Action{ToggleActiveSyncTab{}}, nil
	case command.NewPane:
		return resolveNewPane(v, currentDir())
	case command.Edit:
		return resolveEdit(v, currentDir()), nil
	case command.SwitchMode:
		return []Action{SwitchModeForAllClients{Mode: v.InputMode}}, nil
	case command.TogglePaneEmbedOrFloating:
		return []Action{TogglePaneEmbedOrFloating{}}, nil
	case command.ToggleFloatingPanes:
		return []Action{ToggleFloatingPanes{}}, nil
	case command.ClosePane:
		return []Action{CloseFocus{}}, nil
	case command.RenamePane:
		return []Action{
			UndoRenamePane{},
			PaneNameInput{Bytes: []byte(v.Name)},
		}, nil
	case command.UndoRenamePane:
		return []Action{UndoRenamePane{}}, nil
	case command.GoToNextTab:
		return []Action{GoToNextTab{}}, nil
	case command.GoToPreviousTab:
		return []Action{GoToPreviousTab{}}, nil
	case command.CloseTab:
		return []Action{CloseTab{}}, nil
	case command.GoToTab:
		return []Action{GoToTab{Index: v.Index}}, nil
	case command.GoToTabName:
		return []Action{GoToTabName{Name: v.Name, Create: v.Create}}, nil
	case command.RenameTab:
		return []Action{
			TabNameInput{Bytes: []byte{0}},
			TabNameInput{Bytes: []byte(v.Name)},
		}, nil
	case command.UndoRenameTab:
		return []Action{UndoRenameTab{}}, nil
	case command.NewTab:
		return resolveNewTab(v, currentDir, cfg, defaultLayoutDir)
	case command.PreviousSwapLayout:
		return []Action{PreviousSwapLayout{}}, nil
	case command.NextSwapLayout:
		return []Action{NextSwapLayout{}}, nil
	case command.QueryTabNames:
		return []Action{QueryTabNames{}}, nil
	case command.StartOrReloadPlugin:
		plugin, err := parsePlugin(v.URL, currentDir())
		if err != nil {
			return nil, err
		}
		return []Action{StartOrReloadPlugin{Plugin: plugin}}, nil
	case command.LaunchOrFocusPlugin:
		plugin, err := parsePlugin(v.URL, currentDir())
		if err != nil {
			return nil, err
		}
		return []Action{LaunchOrFocusPlugin{Plugin: plugin, Floating: v.Floating}}, nil
	default:
		return nil, fmt.Errorf("unsupported command: %T", c)
	}
}

// joinCwd anchors a relative override under base; an absolute override
// replaces the base outright.
func joinCwd(base, override string) string {
	if override == "" {
		return base
	}
	if filepath.IsAbs(override) {
		return override
	}
	return filepath.Join(base, override)
}

func resolveNewPane(v command.NewPane, currentDir string) ([]Action, error) {
	cwd := joinCwd(currentDir, v.Cwd)
	if v.Plugin != "" {
		location, err := layout.ParsePluginLocation(v.Plugin, cwd)
		if err != nil {
			return nil, fmt.Errorf("Failed to parse plugin location %s: %v", v.Plugin, err)
		}
		if v.Floating {
			return []Action{NewFloatingPluginPane{Location: location, Name: v.Name}}, nil
		}
		// A tiled plugin pane never takes a direction: the client
		// requesting it may not be the client whose focus would anchor
		// the placement, and the two can race while the plugin loads.
		// Terminal panes keep their direction for backward
		// compatibility with pre-auto-layout behavior.
		return []Action{NewTiledPluginPane{Location: location, Name: v.Name}}, nil
	}
	if len(v.Command) > 0 {
		run := &layout.RunCommand{
			Command:     v.Command[0],
			Args:        v.Command[1:],
			Cwd:         cwd,
			Direction:   v.Direction,
			HoldOnStart: v.StartSuspended,
			HoldOnClose: !v.CloseOnExit,
		}
		if v.Floating {
			return []Action{NewFloatingPane{Command: run, Name: v.Name}}, nil
		}
		return []Action{NewTiledPane{Direction: v.Direction, Command: run, Name: v.Name}}, nil
	}
	if v.Floating {
		return []Action{NewFloatingPane{Name: v.Name}}, nil
	}
	return []Action{NewTiledPane{Direction: v.Direction, Name: v.Name}}, nil
}

func resolveEdit(v command.Edit, currentDir string) []Action {
	cwd := joinCwd(currentDir, v.Cwd)
	file := v.File
	if !filepath.IsAbs(file) {
		file = filepath.Join(cwd, file)
	}
	return []Action{EditFile{
		Path:       file,
		LineNumber: v.LineNumber,
		Cwd:        cwd,
		Direction:  v.Direction,
		Floating:   v.Floating,
	}}
}

func resolveNewTab(v command.NewTab, currentDir func() string, cfg *config.Config, defaultLayoutDir string) ([]Action, error) {
	if v.Layout == "" {
		return []Action{NewTab{Name: v.Name}}, nil
	}

	cwd := joinCwd(currentDir(), v.Cwd)
	layoutDir := lookupLayoutDir(v.LayoutDir, cfg, defaultLayoutDir)
	sourcePath, raw, swap, err := layout.Stringified(v.Layout, layoutDir)
	if err != nil {
		return nil, fmt.Errorf("Failed to load layout: %v", err)
	}
	parsed, err := layout.Parse(raw, sourcePath, swap, cwd)
	if err != nil {
		return nil, err
	}

	tabs := parsed.Tabs()
	if len(tabs) > 1 {
		return nil, errors.New("Tab layout cannot itself have tabs")
	}
	if len(tabs) == 1 {
		// Freshly parsed and locally owned, so the non-empty check
		// above still holds at extraction time.
		tab := tabs[0]
		name := tab.Name
		if name == "" {
			name = v.Name
		}
		return []Action{NewTab{
			Layout:       tab.Root,
			Floating:     tab.Floating,
			SwapTiled:    parsed.SwapTiled,
			SwapFloating: parsed.SwapFloating,
			Name:         name,
		}}, nil
	}

	root, floating := parsed.NewTab()
	return []Action{NewTab{
		Layout:       root,
		Floating:     floating,
		SwapTiled:    parsed.SwapTiled,
		SwapFloating: parsed.SwapFloating,
		Name:         v.Name,
	}}, nil
}

// lookupLayoutDir is the ordered fallback chain for the layout-search
// directory: explicit argument, then config, then the process-wide
// default supplied by the caller.
func lookupLayoutDir(explicit string, cfg *config.Config, processDefault string) string {
	if explicit != "" {
		return explicit
	}
	if dir := cfg.LayoutDir(); dir != "" {
		return dir
	}
	return processDefault
}

func parsePlugin(url string, cwd string) (layout.RunPlugin, error) {
	location, err := layout.ParsePluginLocation(url, cwd)
	if err != nil {
		return layout.RunPlugin{}, fmt.Errorf("Failed to parse plugin location: %v", err)
	}
	return layout.RunPlugin{Location: location}, nil
}
