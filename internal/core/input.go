package core

import (
	"maps"
	"time"
)

// Action is a key-independent command. Each front end maps its own keys
// onto these.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, h - move piece left
	ActionRight           // Right arrow, l - move piece right
	ActionDown            // Down arrow, j - soft drop
	ActionDrop            // Space - hard drop
	ActionRotate          // Up arrow, z, k - rotate clockwise
	ActionConfirm         // Enter - acknowledge a dialog
	ActionBack            // Esc - close a dialog
	ActionRestart         // R - restart the game
	ActionQuit            // Q, Ctrl+C - exit
	ActionPause           // P - pause/unpause
	ActionHelp            // ? - toggle the help dialog
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionDown:    "Down",
	ActionDrop:    "Drop",
	ActionRotate:  "Rotate",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
	ActionHelp:    "Help",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions held during one tick. The zero value is
// an empty frame.
type InputFrame struct {
	Actions map[Action]bool
}

func NewInputFrame() InputFrame {
	return InputFrame{Actions: map[Action]bool{}}
}

// Set marks a as held.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = map[Action]bool{}
	}
	f.Actions[a] = true
}

func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear empties the frame for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns a frame with its own copy of the actions.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{Actions: maps.Clone(f.Actions)}
}

// PointerPhase identifies what happened to a pointer.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	PointerCancel
	PointerWheel
)

var phaseNames = [...]string{
	PointerDown:   "down",
	PointerMove:   "move",
	PointerUp:     "up",
	PointerCancel: "cancel",
	PointerWheel:  "wheel",
}

func (p PointerPhase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// PointerEvent is a raw mouse, touch or wheel sample in screen coordinates.
// Unlike actions, pointer events are delivered to games as they arrive.
type PointerEvent struct {
	Phase PointerPhase
	ID    int64     // Pointer identity; 0 for the mouse
	X, Y  int       // Screen position (terminal cells for the TUI)
	Wheel int       // Wheel direction for PointerWheel: -1 or +1
	Time  time.Time // When the sample was observed
}
