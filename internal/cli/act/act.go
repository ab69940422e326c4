// Package act implements the "action" CLI command family. Each
// handler parses one verb's flags and arguments into a command value,
// resolves it to the actions it stands for and prints them.
package act

import (
	"github.com/zynaxsoft/zellij/internal/cli/root"
)

// Register wires every action verb into the registry.
func Register(reg *root.Registry) {
	reg.Register("action.write", write)
	reg.Register("action.write-chars", writeChars)
	reg.Register("action.resize", resize)
	reg.Register("action.focus-next-pane", focusNextPane)
	reg.Register("action.focus-previous-pane", focusPreviousPane)
	reg.Register("action.move-focus", moveFocus)
	reg.Register("action.move-focus-or-tab", moveFocusOrTab)
	reg.Register("action.move-pane", movePane)
	reg.Register("action.move-pane-backwards", movePaneBackwards)
	reg.Register("action.clear", clear)
	reg.Register("action.dump-screen", dumpScreen)
	reg.Register("action.edit-scrollback", editScrollback)
	reg.Register("action.scroll-up", scrollUp)
	reg.Register("action.scroll-down", scrollDown)
	reg.Register("action.scroll-to-bottom", scrollToBottom)
	reg.Register("action.scroll-to-top", scrollToTop)
	reg.Register("action.page-scroll-up", pageScrollUp)
	reg.Register("action.page-scroll-down", pageScrollDown)
	reg.Register("action.half-page-scroll-up", halfPageScrollUp)
	reg.Register("action.half-page-scroll-down", halfPageScrollDown)
	reg.Register("action.toggle-fullscreen", toggleFullscreen)
	reg.Register("action.toggle-pane-frames", togglePaneFrames)
	reg.Register("action.toggle-active-sync-tab", toggleActiveSyncTab)
	reg.Register("action.new-pane", newPane)
	reg.Register("action.edit", edit)
	reg.Register("action.switch-mode", switchMode)
	reg.Register("action.toggle-pane-embed-or-floating", togglePaneEmbedOrFloating)
	reg.Register("action.toggle-floating-panes", toggleFloatingPanes)
	reg.Register("action.close-pane", closePane)
	reg.Register("action.rename-pane", renamePane)
	reg.Register("action.undo-rename-pane", undoRenamePane)
	reg.Register("action.go-to-next-tab", goToNextTab)
	reg.Register("action.go-to-previous-tab", goToPreviousTab)
	reg.Register("action.close-tab", closeTab)
	reg.Register("action.go-to-tab", goToTab)
	reg.Register("action.go-to-tab-name", goToTabName)
	reg.Register("action.rename-tab", renameTab)
	reg.Register("action.undo-rename-tab", undoRenameTab)
	reg.Register("action.new-tab", newTab)
	reg.Register("action.previous-swap-layout", previousSwapLayout)
	reg.Register("action.next-swap-layout", nextSwapLayout)
	reg.Register("action.query-tab-names", queryTabNames)
	reg.Register("action.start-or-reload-plugin", startOrReloadPlugin)
	reg.Register("action.launch-or-focus-plugin", launchOrFocusPlugin)
}
