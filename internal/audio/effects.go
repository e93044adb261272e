// Package audio renders game cues as short synthesized sounds using beep.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/cliotris/internal/core"
)

// wave maps a phase in [0, 1) to a sample in [-1, 1].
type wave func(phase float64) float64

func sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }
func saw(p float64) float64 { return 2*p - 1 }
func noise(float64) float64 { return rand.Float64()*2 - 1 }

func square(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

// gain is a linear attack/release envelope over total samples.
func gain(pos, total, attack, release int) float64 {
	switch {
	case attack > 0 && pos < attack:
		return float64(pos) / float64(attack)
	case release > 0 && pos >= total-release:
		return float64(total-pos) / float64(release)
	}
	return 1
}

// shaped plays w at freq for d, fading in over attack and out over release.
func shaped(freq float64, d, attack, release time.Duration, w wave, rate beep.SampleRate) beep.Streamer {
	total, a, r := rate.N(d), rate.N(attack), rate.N(release)
	pos, phase := 0, 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := min(len(samples), total-pos)
		for i := range n {
			v := w(phase) * gain(pos, total, a, r)
			samples[i] = [2]float64{v, v}
			phase += freq / float64(rate)
			phase -= math.Floor(phase)
			pos++
		}
		return n, true
	})
}

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a note with a click-free start and a long tail.
func tone(freq float64, d time.Duration, w wave, rate beep.SampleRate) beep.Streamer {
	return shaped(freq, d, 5*time.Millisecond, d/2, w, rate)
}

// lockSound is a short low thud.
func lockSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(110, 60*time.Millisecond, square, rate), 0.4)
}

// lineClearSound is a rising two-note chime.
func lineClearSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(1046.50, 80*time.Millisecond, sine, rate),  // C6
		tone(1318.51, 120*time.Millisecond, sine, rate), // E6
	)
}

// wipeSound is a noise swish with a bright sparkle on top.
func wipeSound(rate beep.SampleRate) beep.Streamer {
	d := 180 * time.Millisecond
	swish := shaped(0, d, 40*time.Millisecond, 120*time.Millisecond, noise, rate)
	return beep.Mix(
		newVolume(swish, 0.35),
		newVolume(tone(1760, d, sine, rate), 0.5),
	)
}

// gameOverSound is a falling three-note phrase.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	d := 150 * time.Millisecond
	return newVolume(beep.Seq(
		tone(392.00, d, saw, rate),   // G4
		tone(329.63, d, saw, rate),   // E4
		tone(261.63, 2*d, saw, rate), // C4
	), 0.6)
}

// Effect returns the sound for a cue at the given volume, or nil when the
// cue has no sound.
func Effect(c core.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case core.CueLock:
		s = lockSound(rate)
	case core.CueLineClear:
		s = lineClearSound(rate)
	case core.CueWipe:
		s = wipeSound(rate)
	case core.CueGameOver:
		s = gameOverSound(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
