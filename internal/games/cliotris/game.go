package cliotris

import (
	"time"

	"github.com/vovakirdan/cliotris/internal/config"
	"github.com/vovakirdan/cliotris/internal/core"
	"github.com/vovakirdan/cliotris/internal/gesture"
	"github.com/vovakirdan/cliotris/internal/registry"
)

// Mode selects a rule variant.
type Mode string

const (
	ModeClassic Mode = "cliotris"        // cells locked above the top are discarded
	ModeStrict  Mode = "cliotris_strict" // locking above the top ends the game
)

// Game adapts a Session to the platform's fixed-tick Game interface.
// Terminal cells are two characters wide, so one terminal column maps to
// half a board cell when pointer input is converted to pixels.
type Game struct {
	mode    Mode
	cfg     config.Config
	session *Session
	tracker *gesture.Tracker

	tick        uint64
	dropTicks   int // platform ticks per gravity step
	dropCounter int
	cues        []core.Cue

	screenW  int
	screenH  int
	layout   layout
	tooSmall bool
}

// New creates a classic mode game.
func New(cfg config.Config) *Game {
	return &Game{mode: ModeClassic, cfg: cfg}
}

// NewStrict creates a game where locking above the top ends the game.
func NewStrict(cfg config.Config) *Game {
	return &Game{mode: ModeStrict, cfg: cfg}
}

func init() {
	registry.Register(string(ModeClassic), func(cfg config.Config) registry.Game {
		return New(cfg)
	})
	registry.Register(string(ModeStrict), func(cfg config.Config) registry.Game {
		return NewStrict(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeStrict {
		return "Cliotris (Strict)"
	}
	return "Cliotris"
}

// Reset starts a new session sized for the screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	g.tick = 0
	g.dropTicks = max(1, int(DropInterval*time.Duration(tickRate)/time.Second))
	g.dropCounter = 0
	g.cues = nil

	g.session = NewSession(Options{
		Seed:          seed,
		SpecialChance: g.cfg.Spawn.SpecialChance,
		Overflow:      g.overflowPolicy(),
		CellPx:        g.cfg.Render.CellPX,
		Listener:      g.onEvent,
	})
	cellPx := g.session.CellPx()
	g.tracker = gesture.NewTracker(g.cfg.Thresholds(), Cols*cellPx, Rows*cellPx)

	g.Resize(rc.ScreenW, rc.ScreenH)
}

func (g *Game) overflowPolicy() OverflowPolicy {
	if g.mode == ModeStrict {
		return OverflowGameOver
	}
	p, err := ParseOverflowPolicy(g.cfg.Rules.LockOverflow)
	if err != nil {
		return OverflowDiscard
	}
	return p
}

// Resize lays the board out for a new screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = computeLayout(w, h)
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// String returns the board as text, for screenshots.
func (g *Game) String() string {
	return g.session.Snapshot().String()
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Restart is accepted in every state; Confirm acknowledges the game over dialog.
	if in.Has(core.ActionRestart) || (in.Has(core.ActionConfirm) && g.session.Over()) {
		g.restart()
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}

	if g.tooSmall {
		return g.result()
	}

	switch {
	case in.Has(core.ActionLeft):
		g.session.MoveLeft()
	case in.Has(core.ActionRight):
		g.session.MoveRight()
	}
	if in.Has(core.ActionRotate) {
		g.session.Rotate()
	}
	if in.Has(core.ActionDown) {
		g.session.SoftDrop()
	}
	if in.Has(core.ActionDrop) {
		g.session.HardDrop()
	}

	g.dropCounter++
	if g.dropCounter >= g.dropTicks {
		g.dropCounter = 0
		g.session.Tick()
	}

	return g.result()
}

func (g *Game) restart() {
	g.session.Restart()
	g.tracker.Reset()
	g.dropCounter = 0
}

func (g *Game) result() core.StepResult {
	cues := g.cues
	g.cues = nil
	return core.StepResult{State: g.State(), Cues: cues}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Over(),
		Paused:   g.session.Paused(),
	}
}

// HandlePointer feeds a terminal mouse event to the gesture tracker.
// Taps click the cell under the pointer and rubs wipe it.
func (g *Game) HandlePointer(ev core.PointerEvent) {
	if g.tooSmall {
		return
	}
	ev.X, ev.Y = g.toCanvas(ev.X, ev.Y)
	g.session.ApplyGesture(g.tracker.Handle(ev))
}

// toCanvas converts a terminal position into board pixels, sampling the
// center of the half cell under the pointer.
func (g *Game) toCanvas(col, row int) (px, py int) {
	cellPx := g.session.CellPx()
	px = (col-g.layout.inner.X)*cellPx/cellChars + cellPx/(2*cellChars)
	py = (row-g.layout.inner.Y)*cellPx + cellPx/2
	return px, py
}

func (g *Game) onEvent(e Event) {
	if c := CueFor(e); c != core.CueNone {
		g.cues = append(g.cues, c)
	}
}

// CueFor maps a session event to the sound cue shells play for it.
func CueFor(e Event) core.Cue {
	switch e.Kind {
	case EventLocked:
		return core.CueLock
	case EventLinesCleared:
		return core.CueLineClear
	case EventWiped:
		return core.CueWipe
	case EventGameOver:
		return core.CueGameOver
	default:
		return core.CueNone
	}
}

