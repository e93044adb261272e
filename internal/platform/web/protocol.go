package web

import (
	"github.com/vovakirdan/cliotris/internal/core"
	"github.com/vovakirdan/cliotris/internal/games/cliotris"
)

// Client message types.
const (
	MsgLeft     = "left"
	MsgRight    = "right"
	MsgSoftDrop = "soft_drop"
	MsgHardDrop = "hard_drop"
	MsgRotate   = "rotate"
	MsgPause    = "pause"
	MsgRestart  = "restart"
	MsgClick    = "click"   // x, y are board cells
	MsgPointer  = "pointer" // x, y are canvas pixels
	MsgWheel    = "wheel"
)

// Server message types.
const (
	MsgHello    = "hello"
	MsgState    = "state"
	MsgGameOver = "game_over"
)

// ClientMessage is one command from the browser.
type ClientMessage struct {
	Type  string `json:"type"`
	X     int    `json:"x,omitempty"`
	Y     int    `json:"y,omitempty"`
	Phase string `json:"phase,omitempty"` // down, move, up or cancel
	ID    int64  `json:"id,omitempty"`
	Delta int    `json:"delta,omitempty"` // wheel direction
}

// ServerMessage is pushed to the browser.
type ServerMessage struct {
	Type    string             `json:"type"`
	State   *cliotris.Snapshot `json:"state,omitempty"`
	Score   int                `json:"score"` // final score of game_over, kept when 0
	Cols    int                `json:"cols,omitempty"`
	Rows    int                `json:"rows,omitempty"`
	CellPx  int                `json:"cellPx,omitempty"`
	Palette map[string]string  `json:"palette,omitempty"`
}

func helloMessage(cellPx int) ServerMessage {
	palette := make(map[string]string, int(cliotris.KindWipe))
	for k := cliotris.KindI; k <= cliotris.KindWipe; k++ {
		palette[k.String()] = k.Color().Hex()
	}
	return ServerMessage{
		Type:    MsgHello,
		Cols:    cliotris.Cols,
		Rows:    cliotris.Rows,
		CellPx:  cellPx,
		Palette: palette,
	}
}

func pointerPhase(s string) (core.PointerPhase, bool) {
	switch s {
	case "down":
		return core.PointerDown, true
	case "move":
		return core.PointerMove, true
	case "up":
		return core.PointerUp, true
	case "cancel":
		return core.PointerCancel, true
	default:
		return 0, false
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
