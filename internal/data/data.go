// Package data holds the small shared vocabularies used by actions,
// CLI commands and layouts: directions, input modes, search options and
// screen positions.
package data

import (
	"encoding/json"
	"fmt"
)

// Direction is a 4-way compass direction used for focus movement and
// pane placement.
type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

// ParseDirection accepts both capitalized and lowercase spellings.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "Left", "left":
		return DirectionLeft, nil
	case "Right", "right":
		return DirectionRight, nil
	case "Up", "up":
		return DirectionUp, nil
	case "Down", "down":
		return DirectionDown, nil
	default:
		return 0, fmt.Errorf("unknown direction: %s", s)
	}
}

// MarshalJSON writes the name so rendered actions stay readable.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unknown"
	}
}

// Resize selects whether a resize grows or shrinks the focused pane.
type Resize uint8

const (
	ResizeIncrease Resize = iota
	ResizeDecrease
)

func ParseResize(s string) (Resize, error) {
	switch s {
	case "Increase", "increase", "+":
		return ResizeIncrease, nil
	case "Decrease", "decrease", "-":
		return ResizeDecrease, nil
	default:
		return 0, fmt.Errorf("unknown resize strategy: %s", s)
	}
}

func (r Resize) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r Resize) String() string {
	if r == ResizeDecrease {
		return "decrease"
	}
	return "increase"
}

// InputMode is the closed set of client input modes.
type InputMode uint8

const (
	ModeNormal InputMode = iota
	ModeLocked
	ModeResize
	ModePane
	ModeTab
	ModeScroll
	ModeEnterSearch
	ModeSearch
	ModeRenameTab
	ModeRenamePane
	ModeSession
	ModeMove
	ModePrompt
	ModeTmux
)

var inputModeNames = map[InputMode]string{
	ModeNormal:      "normal",
	ModeLocked:      "locked",
	ModeResize:      "resize",
	ModePane:        "pane",
	ModeTab:         "tab",
	ModeScroll:      "scroll",
	ModeEnterSearch: "entersearch",
	ModeSearch:      "search",
	ModeRenameTab:   "renametab",
	ModeRenamePane:  "renamepane",
	ModeSession:     "session",
	ModeMove:        "move",
	ModePrompt:      "prompt",
	ModeTmux:        "tmux",
}

func ParseInputMode(s string) (InputMode, error) {
	for mode, name := range inputModeNames {
		if s == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown input mode: %s", s)
}

func (m InputMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m InputMode) String() string {
	if name, ok := inputModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// SearchDirection selects where a search continues from the current match.
type SearchDirection uint8

const (
	SearchDown SearchDirection = iota
	SearchUp
)

func ParseSearchDirection(s string) (SearchDirection, error) {
	switch s {
	case "Down", "down":
		return SearchDown, nil
	case "Up", "up":
		return SearchUp, nil
	default:
		return 0, fmt.Errorf("unknown search direction: %s", s)
	}
}

func (d SearchDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d SearchDirection) String() string {
	if d == SearchUp {
		return "up"
	}
	return "down"
}

// SearchOption is a toggleable search behavior.
type SearchOption uint8

const (
	SearchCaseSensitivity SearchOption = iota
	SearchWholeWord
	SearchWrap
)

func ParseSearchOption(s string) (SearchOption, error) {
	switch s {
	case "CaseSensitivity", "casesensitivity", "Casesensitivity":
		return SearchCaseSensitivity, nil
	case "WholeWord", "wholeword", "Wholeword":
		return SearchWholeWord, nil
	case "Wrap", "wrap":
		return SearchWrap, nil
	default:
		return 0, fmt.Errorf("unknown search option: %s", s)
	}
}

func (o SearchOption) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o SearchOption) String() string {
	switch o {
	case SearchWholeWord:
		return "wholeword"
	case SearchWrap:
		return "wrap"
	default:
		return "casesensitivity"
	}
}

// Position is a screen coordinate carried by mouse and scroll-at actions.
type Position struct {
	Line   int
	Column int
}
