// Package gesture recognizes deliberate back-and-forth "rub" motions in raw
// pointer and wheel input.
//
// The detectors are pure state machines: every transition takes the previous
// state and one sample and returns the next state plus an optional event.
// Time is supplied by the caller with each sample, so a window only expires
// when a new sample arrives.
package gesture

import "time"

// Axis is the dominant direction of a recognized rub.
type Axis string

const (
	AxisX     Axis = "x"
	AxisY     Axis = "y"
	AxisWheel Axis = "wheel"
)

// Rub is emitted once an oscillation pattern has been recognized.
// X and Y are canvas-relative pixel coordinates.
type Rub struct {
	X, Y int
	Axis Axis
}

// PointerConfig holds thresholds for drag-based rubs.
type PointerConfig struct {
	SignChanges int           // direction reversals needed inside one window
	Window      time.Duration // window length measured from the first sample
	MinMove     int           // per-sample dominant-axis delta below this is noise
}

// WheelConfig holds thresholds for wheel-based rubs.
type WheelConfig struct {
	SignChanges int           // adjacent sign changes needed among kept samples
	Window      time.Duration // samples older than this are pruned
	MinSamples  int           // minimum kept samples before a rub can fire
}

// Config bundles both detectors' thresholds.
type Config struct {
	Pointer PointerConfig
	Wheel   WheelConfig
}

// DefaultConfig returns the stock thresholds: 4 reversals within 800ms
// ignoring moves under 6px, and 4 wheel reversals over 6 samples within 600ms.
func DefaultConfig() Config {
	return Config{
		Pointer: PointerConfig{
			SignChanges: 4,
			Window:      800 * time.Millisecond,
			MinMove:     6,
		},
		Wheel: WheelConfig{
			SignChanges: 4,
			Window:      600 * time.Millisecond,
			MinSamples:  6,
		},
	}
}
