package gesture

import "time"

// maxWheelSamples bounds the sample list even under a flood of events.
const maxWheelSamples = 64

// WheelSample is one wheel tick: the sign of its delta and when it arrived.
type WheelSample struct {
	Sign int
	At   time.Time
}

// WheelState holds recent wheel samples, oldest first.
type WheelState struct {
	Samples []WheelSample
}

// Step records a wheel sample with the given sign (-1, 0 or +1), prunes
// samples older than the window and reports whether the kept samples now
// form a rub. The sample list is cleared after a rub.
func (c WheelConfig) Step(s WheelState, sign int, now time.Time) (WheelState, bool) {
	samples := make([]WheelSample, 0, len(s.Samples)+1)
	for _, smp := range s.Samples {
		if now.Sub(smp.At) <= c.Window {
			samples = append(samples, smp)
		}
	}
	samples = append(samples, WheelSample{Sign: normalizeSign(sign), At: now})
	if len(samples) > maxWheelSamples {
		samples = samples[len(samples)-maxWheelSamples:]
	}

	changes := 0
	for i := 1; i < len(samples); i++ {
		if samples[i].Sign != samples[i-1].Sign {
			changes++
		}
	}

	if changes >= c.SignChanges && len(samples) >= c.MinSamples {
		return WheelState{}, true
	}
	return WheelState{Samples: samples}, false
}

func normalizeSign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
