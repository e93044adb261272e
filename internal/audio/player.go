package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cliotris/internal/core"
)

// SampleRate is the output rate used for every effect.
const SampleRate = beep.SampleRate(44100)

// Player mixes cue sounds into the speaker. A Player that was never
// initialized, or whose initialization failed, silently drops cues.
type Player struct {
	mu          sync.Mutex
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player with volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the audio device. It is safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether sounds reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayCue plays the sound for c.
func (p *Player) PlayCue(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Effect(c, SampleRate, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
