package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/cliotris/internal/core"
)

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"vim left", runes("h"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionDrop},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"z", runes("z"), core.ActionRotate},
		{"pause", runes("p"), core.ActionPause},
		{"restart", runes("r"), core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"help", runes("?"), core.ActionHelp},
		{"quit", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("m"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func TestPointerEventConversion(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.MouseMsg
		phase core.PointerPhase
		wheel int
		ok    bool
	}{
		{"press", tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, core.PointerDown, 0, true},
		{"drag", tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}, core.PointerMove, 0, true},
		{"release", tea.MouseMsg{Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}, core.PointerUp, 0, true},
		{"wheel up", tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}, core.PointerWheel, -1, true},
		{"wheel down", tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}, core.PointerWheel, 1, true},
		{"wheel left", tea.MouseMsg{Button: tea.MouseButtonWheelLeft, Action: tea.MouseActionPress}, core.PointerWheel, -1, true},
		{"wheel right", tea.MouseMsg{Button: tea.MouseButtonWheelRight, Action: tea.MouseActionPress}, core.PointerWheel, 1, true},
		{"right press", tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.msg.X, tt.msg.Y = 7, 9
			ev, ok := PointerEvent(tt.msg, core.PointerEvent{})
			assert.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.phase, ev.Phase)
			assert.Equal(t, tt.wheel, ev.Wheel)
			assert.Equal(t, 7, ev.X)
			assert.Equal(t, 9, ev.Y)
		})
	}
}
