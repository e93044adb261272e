package desktop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/cliotris/internal/core"
)

// Key auto-repeat, in ticks.
const (
	repeatDelay    = 12
	repeatInterval = 4
)

// mouseID keeps the mouse apart from touch IDs, which are never negative.
const mouseID int64 = -1

var keyActions = []struct {
	keys   []ebiten.Key
	action core.Action
	repeat bool
}{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft, true},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight, true},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionDown, true},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyZ}, core.ActionRotate, false},
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionDrop, false},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause, false},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart, false},
	{[]ebiten.Key{ebiten.KeyEnter}, core.ActionConfirm, false},
	{[]ebiten.Key{ebiten.KeyH}, core.ActionHelp, false},
	{[]ebiten.Key{ebiten.KeyEscape}, core.ActionBack, false},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit, false},
}

// repeats reports whether a key held for d ticks fires this tick.
func repeats(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// readKeys returns the actions triggered by the keyboard this tick.
func readKeys() core.InputFrame {
	in := core.NewInputFrame()
	for _, ka := range keyActions {
		for _, k := range ka.keys {
			d := inpututil.KeyPressDuration(k)
			if d == 1 || (ka.repeat && repeats(d)) {
				in.Set(ka.action)
				break
			}
		}
	}
	return in
}

// pointerReader turns ebiten mouse, touch and wheel state into pointer
// events in canvas pixels.
type pointerReader struct {
	last map[int64][2]int
}

func newPointerReader() *pointerReader {
	return &pointerReader{last: make(map[int64][2]int)}
}

func (r *pointerReader) read(now time.Time) []core.PointerEvent {
	var evs []core.PointerEvent

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		evs = append(evs, r.down(mouseID, x, y, now))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		evs = append(evs, r.up(mouseID, x, y, now))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if ev, ok := r.move(mouseID, x, y, now); ok {
			evs = append(evs, ev)
		}
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		evs = append(evs, r.down(int64(id), tx, ty, now))
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		if inpututil.IsTouchJustReleased(id) {
			continue
		}
		tx, ty := ebiten.TouchPosition(id)
		if ev, ok := r.move(int64(id), tx, ty, now); ok {
			evs = append(evs, ev)
		}
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		evs = append(evs, r.up(int64(id), tx, ty, now))
	}

	if w := wheelDirection(ebiten.Wheel()); w != 0 {
		evs = append(evs, core.PointerEvent{Phase: core.PointerWheel, X: x, Y: y, Wheel: w, Time: now})
	}
	return evs
}

// wheelDirection reduces a wheel delta to -1, 0 or +1. Vertical scrolling
// wins; horizontal trackpad swipes count when there is none.
func wheelDirection(wx, wy float64) int {
	d := wy
	if d == 0 {
		d = wx
	}
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}

func (r *pointerReader) down(id int64, x, y int, now time.Time) core.PointerEvent {
	r.last[id] = [2]int{x, y}
	return core.PointerEvent{Phase: core.PointerDown, ID: id, X: x, Y: y, Time: now}
}

// move reports a sample only when the pointer actually moved.
func (r *pointerReader) move(id int64, x, y int, now time.Time) (core.PointerEvent, bool) {
	pos := [2]int{x, y}
	if prev, ok := r.last[id]; ok && prev == pos {
		return core.PointerEvent{}, false
	}
	r.last[id] = pos
	return core.PointerEvent{Phase: core.PointerMove, ID: id, X: x, Y: y, Time: now}, true
}

func (r *pointerReader) up(id int64, x, y int, now time.Time) core.PointerEvent {
	delete(r.last, id)
	return core.PointerEvent{Phase: core.PointerUp, ID: id, X: x, Y: y, Time: now}
}
