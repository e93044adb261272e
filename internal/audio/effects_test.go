package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/cliotris/internal/core"
)

// drain streams s to completion and returns the sample count and peak.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestShapedLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 100 * time.Millisecond
	waves := map[string]wave{"sine": sine, "square": square, "saw": saw, "noise": noise}
	for name, w := range waves {
		s := shaped(440, d, 5*time.Millisecond, 20*time.Millisecond, w, rate)
		n, peak := drain(s)
		if n != rate.N(d) {
			t.Errorf("%s: streamed %d samples, want %d", name, n, rate.N(d))
		}
		if peak > 1 {
			t.Errorf("%s: peak %f out of range", name, peak)
		}
		if s.Err() != nil {
			t.Errorf("%s: unexpected error %v", name, s.Err())
		}
	}
}

func TestShapedStartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	s := shaped(0, d, 20*time.Millisecond, 20*time.Millisecond, square, rate)

	buf := make([][2]float64, 128)
	n, _ := s.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples, want 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample should be silent, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain should be full volume, got %f", buf[50][0])
	}
	if buf[99][0] > 0.1 {
		t.Errorf("last sample should be nearly silent, got %f", buf[99][0])
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("finished tone should be drained, got n=%d ok=%v", n, ok)
	}
}

func TestEffectPerCue(t *testing.T) {
	tests := []struct {
		cue  core.Cue
		want bool
	}{
		{core.CueNone, false},
		{core.CueLock, true},
		{core.CueLineClear, true},
		{core.CueWipe, true},
		{core.CueGameOver, true},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s := Effect(tt.cue, SampleRate, 0.5)
			if (s != nil) != tt.want {
				t.Fatalf("Effect returned %v, want sound=%v", s, tt.want)
			}
			if s == nil {
				return
			}
			n, peak := drain(s)
			if n == 0 || n > SampleRate.N(time.Second) {
				t.Errorf("unexpected length %d", n)
			}
			if peak == 0 {
				t.Errorf("effect is silent")
			}
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(Effect(core.CueLock, SampleRate, 0))
	if peak != 0 {
		t.Errorf("zero volume should be silent, peak %f", peak)
	}
}

func TestUninitializedPlayerDropsCues(t *testing.T) {
	p := NewPlayer(0.5)
	p.PlayCue(core.CueWipe) // must not block or panic
	if p.Enabled() {
		t.Errorf("player should report disabled before Init")
	}
	p.Close()
}
