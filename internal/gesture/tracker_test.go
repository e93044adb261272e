package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cliotris/internal/core"
)

func TestTrackerPointersAreIndependent(t *testing.T) {
	tr := NewTracker(DefaultConfig(), 240, 480)

	tr.Down(1, 50, 50, t0)
	tr.Down(2, 150, 50, t0)
	assert.Equal(t, 2, tr.Tracking())

	// Pointer 1 rubs, pointer 2 only drifts one way.
	x1, x2 := 50, 150
	var rubs []Rub
	for i, d := range []int{10, -10, 10, -10, 10} {
		now := t0.Add(time.Duration(i+1) * 30 * time.Millisecond)
		x1 += d
		x2 += 10
		if rub, ok := tr.Move(1, x1, 50, now); ok {
			rubs = append(rubs, rub)
		}
		_, ok := tr.Move(2, x2, 50, now)
		assert.False(t, ok)
	}

	require.Len(t, rubs, 1)
	assert.Equal(t, 60, rubs[0].X)
}

func TestTrackerWheelClampsToCanvas(t *testing.T) {
	tr := NewTracker(DefaultConfig(), 240, 480)
	tr.Move(0, 900, -20, t0) // hover far outside the canvas

	var rub Rub
	var ok bool
	for i, sign := range []int{1, -1, 1, -1, 1, -1} {
		rub, ok = tr.Wheel(sign, t0.Add(time.Duration(i)*20*time.Millisecond))
	}

	require.True(t, ok)
	assert.Equal(t, Rub{X: 239, Y: 0, Axis: AxisWheel}, rub)
}

func TestTrackerHandle(t *testing.T) {
	tr := NewTracker(DefaultConfig(), 240, 480)

	res := tr.Handle(core.PointerEvent{Phase: core.PointerDown, X: 10, Y: 10, Time: t0})
	assert.Equal(t, ResultNone, res.Kind)

	res = tr.Handle(core.PointerEvent{Phase: core.PointerUp, X: 11, Y: 10, Time: t0.Add(time.Millisecond)})
	assert.Equal(t, Result{Kind: ResultTap, X: 11, Y: 10}, res)
	assert.Equal(t, 0, tr.Tracking())

	tr.Handle(core.PointerEvent{Phase: core.PointerDown, X: 10, Y: 10, Time: t0})
	tr.Handle(core.PointerEvent{Phase: core.PointerCancel})
	assert.Equal(t, 0, tr.Tracking())

	res = tr.Handle(core.PointerEvent{Phase: core.PointerUp, X: 10, Y: 10})
	assert.Equal(t, ResultNone, res.Kind, "release after cancel is not a tap")
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(DefaultConfig(), 240, 480)
	tr.Down(3, 0, 0, t0)
	tr.Wheel(1, t0)

	tr.Reset()
	assert.Equal(t, 0, tr.Tracking())
	assert.Empty(t, tr.wheel.Samples)
}
