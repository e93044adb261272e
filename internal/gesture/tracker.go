package gesture

import (
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/cliotris/internal/core"
)

// ResultKind tells a caller what a sample produced.
type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultRub             // a rub gesture was recognized
	ResultTap             // a press was released without moving
)

// Result is what Tracker.Handle returns for one pointer event.
type Result struct {
	Kind ResultKind
	X, Y int  // canvas-relative position of the rub or tap
	Axis Axis // set for rubs
}

// Tracker multiplexes the pure detectors over several pointers and the wheel.
// Each pointer ID (mouse, touch points, pens) gets its own PointerState.
// Tracker is not safe for concurrent use; callers serialize input the same
// way they serialize game commands.
type Tracker struct {
	cfg      Config
	width    int
	height   int
	pointers *intmap.Map[int64, PointerState]
	wheel    WheelState

	// Last known position of any pointer, used to place wheel rubs.
	lastX, lastY int
}

// NewTracker creates a tracker for a canvas of the given pixel size.
func NewTracker(cfg Config, width, height int) *Tracker {
	return &Tracker{
		cfg:      cfg,
		width:    width,
		height:   height,
		pointers: intmap.New[int64, PointerState](4),
	}
}

// Down starts tracking pointer id at (x, y).
func (t *Tracker) Down(id int64, x, y int, now time.Time) {
	t.hover(x, y)
	t.pointers.Put(id, t.cfg.Pointer.Press(x, y, now))
}

// Move feeds a motion sample for pointer id. Motion of an untracked pointer
// (hover) only updates the wheel anchor.
func (t *Tracker) Move(id int64, x, y int, now time.Time) (Rub, bool) {
	t.hover(x, y)
	s, ok := t.pointers.Get(id)
	if !ok {
		return Rub{}, false
	}
	next, rub, fired := t.cfg.Pointer.Move(s, x, y, now)
	t.pointers.Put(id, next)
	return rub, fired
}

// Up stops tracking pointer id and reports whether the press was a tap.
func (t *Tracker) Up(id int64, x, y int) bool {
	t.hover(x, y)
	s, ok := t.pointers.Get(id)
	if !ok {
		return false
	}
	t.pointers.Del(id)
	_, tap := t.cfg.Pointer.Release(s)
	return tap
}

// Cancel discards pointer id without emitting anything.
func (t *Tracker) Cancel(id int64) {
	t.pointers.Del(id)
}

// Wheel feeds one wheel tick. A recognized rub is placed at the last known
// pointer position clamped to the canvas.
func (t *Tracker) Wheel(sign int, now time.Time) (Rub, bool) {
	next, fired := t.cfg.Wheel.Step(t.wheel, sign, now)
	t.wheel = next
	if !fired {
		return Rub{}, false
	}
	return Rub{
		X:    clamp(t.lastX, 0, t.width-1),
		Y:    clamp(t.lastY, 0, t.height-1),
		Axis: AxisWheel,
	}, true
}

// Handle routes a platform pointer event to the matching detector.
// Event coordinates must already be canvas-relative pixels.
func (t *Tracker) Handle(ev core.PointerEvent) Result {
	switch ev.Phase {
	case core.PointerDown:
		t.Down(ev.ID, ev.X, ev.Y, ev.Time)
	case core.PointerMove:
		if rub, ok := t.Move(ev.ID, ev.X, ev.Y, ev.Time); ok {
			return Result{Kind: ResultRub, X: rub.X, Y: rub.Y, Axis: rub.Axis}
		}
	case core.PointerUp:
		if t.Up(ev.ID, ev.X, ev.Y) {
			return Result{Kind: ResultTap, X: ev.X, Y: ev.Y}
		}
	case core.PointerCancel:
		t.Cancel(ev.ID)
	case core.PointerWheel:
		t.hover(ev.X, ev.Y)
		if rub, ok := t.Wheel(ev.Wheel, ev.Time); ok {
			return Result{Kind: ResultRub, X: rub.X, Y: rub.Y, Axis: rub.Axis}
		}
	}
	return Result{}
}

// Tracking returns the number of pointers currently pressed.
func (t *Tracker) Tracking() int {
	return t.pointers.Len()
}

// Reset forgets every pointer and all wheel history.
func (t *Tracker) Reset() {
	t.pointers = intmap.New[int64, PointerState](4)
	t.wheel = WheelState{}
}

func (t *Tracker) hover(x, y int) {
	t.lastX, t.lastY = x, y
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
