// Package desktop runs the game in a native window with ebiten. Mouse drags,
// touch and the scroll wheel all feed the rub detector.
package desktop

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/cliotris/internal/config"
	"github.com/vovakirdan/cliotris/internal/core"
	"github.com/vovakirdan/cliotris/internal/games/cliotris"
	"github.com/vovakirdan/cliotris/internal/gesture"
)

// TPS is the update rate of the window.
const TPS = 60

const (
	panelW       = 176
	statusTicks  = 2 * TPS
	minCellPx    = 4
	windowScale  = 1
	windowTitle  = "Cliotris"
	copiedStatus = "board copied"
)

// CuePlayer plays sound cues.
type CuePlayer interface {
	PlayCue(c core.Cue)
}

// Options configures a desktop game.
type Options struct {
	Config    config.Config
	Seed      int64
	Generator cliotris.Generator // overrides Seed when set
	Sounds    CuePlayer
	Logger    *log.Logger
	Clipboard func(string) error // clipboard.WriteAll when nil
	Now       func() time.Time
}

// Game implements ebiten.Game.
type Game struct {
	opts     Options
	session  *cliotris.Session
	tracker  *gesture.Tracker
	pointers *pointerReader
	logger   *log.Logger

	cellPx      int
	dropTicks   int
	dropCounter int
	help        bool
	status      string
	statusLeft  int
}

// New creates a desktop game.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	overflow, err := cliotris.ParseOverflowPolicy(opts.Config.Rules.LockOverflow)
	if err != nil {
		return nil, fmt.Errorf("desktop: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "cliotris-desktop",
		})
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	seed := opts.Seed
	if seed == 0 {
		seed = opts.Now().UnixNano()
	}

	g := &Game{
		opts:      opts,
		logger:    opts.Logger,
		pointers:  newPointerReader(),
		dropTicks: max(1, int(cliotris.DropInterval*TPS/time.Second)),
	}
	g.session = cliotris.NewSession(cliotris.Options{
		Seed:          seed,
		SpecialChance: opts.Config.Spawn.SpecialChance,
		Generator:     opts.Generator,
		Overflow:      overflow,
		CellPx:        max(minCellPx, opts.Config.Render.CellPX),
		Listener:      g.onEvent,
	})
	g.cellPx = g.session.CellPx()
	g.tracker = gesture.NewTracker(opts.Config.Thresholds(), g.boardW(), g.boardH())
	return g, nil
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(w*windowScale, h*windowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

// Update reads input and advances the game by one tick.
func (g *Game) Update() error {
	in := readKeys()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyBoard()
	}
	g.step(in, g.pointers.read(g.opts.Now()))
	return nil
}

// Layout returns the fixed logical size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.boardW() + panelW, g.boardH()
}

func (g *Game) boardW() int { return cliotris.Cols * g.cellPx }
func (g *Game) boardH() int { return cliotris.Rows * g.cellPx }

// Session exposes the underlying session.
func (g *Game) Session() *cliotris.Session {
	return g.session
}

// step applies one tick of input and gravity.
func (g *Game) step(in core.InputFrame, pointers []core.PointerEvent) {
	if g.statusLeft > 0 {
		g.statusLeft--
	}

	if in.Has(core.ActionHelp) {
		g.help = !g.help
	}
	if g.help {
		if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) {
			g.help = false
		}
		return
	}

	s := g.session
	if in.Has(core.ActionRestart) || (in.Has(core.ActionConfirm) && s.Over()) {
		g.restart()
		return
	}
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}

	switch {
	case in.Has(core.ActionLeft):
		s.MoveLeft()
	case in.Has(core.ActionRight):
		s.MoveRight()
	}
	if in.Has(core.ActionRotate) {
		s.Rotate()
	}
	if in.Has(core.ActionDown) {
		s.SoftDrop()
	}
	if in.Has(core.ActionDrop) {
		s.HardDrop()
	}

	for _, ev := range pointers {
		s.ApplyGesture(g.tracker.Handle(ev))
	}

	g.dropCounter++
	if g.dropCounter >= g.dropTicks {
		g.dropCounter = 0
		s.Tick()
	}
}

func (g *Game) restart() {
	g.session.Restart()
	g.tracker.Reset()
	g.dropCounter = 0
}

func (g *Game) copyBoard() {
	if err := g.opts.Clipboard(g.session.Snapshot().String()); err != nil {
		g.logger.Warn("clipboard copy failed", "err", err)
		g.setStatus("copy failed")
		return
	}
	g.setStatus(copiedStatus)
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusLeft = statusTicks
}

func (g *Game) onEvent(e cliotris.Event) {
	if e.Kind == cliotris.EventGameOver {
		g.logger.Info("game over", "score", e.Score)
	}
	if g.opts.Sounds == nil {
		return
	}
	if c := cliotris.CueFor(e); c != core.CueNone {
		g.opts.Sounds.PlayCue(c)
	}
}
