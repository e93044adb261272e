package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cliotris/internal/core"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets   int
	frames   []core.InputFrame
	pointers []core.PointerEvent
	resized  [2]int
	state    core.GameState
	cues     []core.Cue
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake board") }
func (g *fakeGame) HandlePointer(ev core.PointerEvent) { g.pointers = append(g.pointers, ev) }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	cues := g.cues
	g.cues = nil
	return core.StepResult{State: g.state, Cues: cues}
}

type cueRecorder []core.Cue

func (r *cueRecorder) PlayCue(c core.Cue) { *r = append(*r, c) }

func newTestModel(t *testing.T, g *fakeGame, opts Options) Model {
	t.Helper()
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = t.TempDir()
	}
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelReservesStatusLine(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 24, m.config.ScreenH)
	assert.Equal(t, 24, m.screen.Height())
}

func TestKeysReachGameOnTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))

	require.Len(t, g.frames, 2)
	assert.True(t, g.frames[0].Has(core.ActionLeft))
	assert.True(t, g.frames[0].Has(core.ActionDrop))
	assert.False(t, g.frames[1].Has(core.ActionLeft), "input must be cleared after a tick")
}

func TestHelpOverlayFreezesGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m = update(t, m, runes("?"))
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "How to play")

	m = update(t, m, runes("z"))
	m = update(t, m, TickMsg(time.Now()))
	assert.Empty(t, g.frames, "game must not step while help is open")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
	m = update(t, m, TickMsg(time.Now()))
	require.Len(t, g.frames, 1)
	assert.False(t, g.frames[0].Has(core.ActionRotate), "keys pressed under the overlay are dropped")
}

func TestCuesArePlayed(t *testing.T) {
	var rec cueRecorder
	g := &fakeGame{cues: []core.Cue{core.CueLock, core.CueLineClear}}
	m := newTestModel(t, g, Options{Sounds: &rec})

	update(t, m, TickMsg(time.Now()))

	assert.Equal(t, cueRecorder{core.CueLock, core.CueLineClear}, rec)
}

func TestGameOverReportedOnce(t *testing.T) {
	var reports []core.GameState
	g := &fakeGame{}
	m := newTestModel(t, g, Options{OnGameOver: func(st core.GameState) { reports = append(reports, st) }})

	g.state = core.GameState{Score: 450, GameOver: true}
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))
	require.Len(t, reports, 1)
	assert.Equal(t, 450, reports[0].Score)

	g.state = core.GameState{}
	m = update(t, m, TickMsg(time.Now()))
	g.state = core.GameState{Score: 100, GameOver: true}
	update(t, m, TickMsg(time.Now()))
	assert.Len(t, reports, 2)
}

func TestMouseForwardedAsPointer(t *testing.T) {
	at := time.Unix(100, 0)
	g := &fakeGame{}
	m := newTestModel(t, g, Options{Now: func() time.Time { return at }})

	m = update(t, m, tea.MouseMsg{X: 30, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = update(t, m, tea.MouseMsg{X: 31, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	update(t, m, tea.MouseMsg{X: 31, Y: 5, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})

	require.Len(t, g.pointers, 3)
	assert.Equal(t, core.PointerDown, g.pointers[0].Phase)
	assert.Equal(t, 30, g.pointers[0].X)
	assert.Equal(t, at, g.pointers[0].Time)
	assert.Equal(t, core.PointerMove, g.pointers[1].Phase)
	assert.Equal(t, core.PointerWheel, g.pointers[2].Phase)
	assert.Equal(t, 1, g.pointers[2].Wheel)
}

func TestResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 1, g.resets, "resizable games must not be reset")
	assert.Equal(t, [2]int{100, 39}, g.resized)
	assert.Equal(t, 100, m.screen.Width())
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := newTestModel(t, g, Options{ScreenshotDir: dir})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, m.status, entries[0].Name())
	assert.Contains(t, m.View(), "saved")
}

type textGame struct {
	*fakeGame
}

func (g textGame) String() string { return "..W..\nscore 150" }

func TestScreenshotPrefersGameText(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(textGame{&fakeGame{}}, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, Options{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "..W..\nscore 150", string(data))
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, Options{})
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}
