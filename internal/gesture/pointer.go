package gesture

import (
	"time"

	"github.com/vovakirdan/cliotris/internal/core"
)

// PointerState is the tracking state of one pressed pointer.
// The zero value is an inactive pointer.
type PointerState struct {
	Active      bool
	WindowStart time.Time
	LastX       int
	LastY       int
	LastSign    int // -1, +1, or 0 before the first significant sample
	SignChanges int

	// Tap bookkeeping: where the press began and whether it ever moved
	// beyond the noise floor.
	StartX, StartY int
	Moved          bool
}

// Press starts tracking a pointer at (x, y).
func (c PointerConfig) Press(x, y int, now time.Time) PointerState {
	return PointerState{
		Active:      true,
		WindowStart: now,
		LastX:       x,
		LastY:       y,
		StartX:      x,
		StartY:      y,
	}
}

// Move feeds one motion sample. It returns the next state and, when the
// reversal threshold is reached inside the window, a Rub at (x, y). After a
// rub the pointer stops tracking until it is pressed again.
func (c PointerConfig) Move(s PointerState, x, y int, now time.Time) (PointerState, Rub, bool) {
	if !s.Active {
		return s, Rub{}, false
	}

	if now.Sub(s.WindowStart) > c.Window {
		s.WindowStart = now
		s.LastSign = 0
		s.SignChanges = 0
	}

	dx := x - s.LastX
	dy := y - s.LastY
	s.LastX = x
	s.LastY = y

	if core.Abs(x-s.StartX) >= c.MinMove || core.Abs(y-s.StartY) >= c.MinMove {
		s.Moved = true
	}

	axis, delta := AxisX, dx
	if core.Abs(dy) > core.Abs(dx) {
		axis, delta = AxisY, dy
	}
	if core.Abs(delta) < c.MinMove {
		return s, Rub{}, false
	}

	sign := 1
	if delta < 0 {
		sign = -1
	}
	if s.LastSign != 0 && sign != s.LastSign {
		s.SignChanges++
	}
	s.LastSign = sign

	if s.SignChanges >= c.SignChanges && now.Sub(s.WindowStart) <= c.Window {
		return PointerState{}, Rub{X: x, Y: y, Axis: axis}, true
	}
	return s, Rub{}, false
}

// Release ends tracking. It reports whether the press was a tap: still
// active and never moved past the noise floor from where it started.
func (c PointerConfig) Release(s PointerState) (PointerState, bool) {
	tap := s.Active && !s.Moved
	return PointerState{}, tap
}

// Cancel discards all tracking state without emitting anything.
func (c PointerConfig) Cancel(PointerState) PointerState {
	return PointerState{}
}
