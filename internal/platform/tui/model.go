// Package tui runs games in a terminal with Bubble Tea, locally or over SSH.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cliotris/internal/core"
	"github.com/vovakirdan/cliotris/internal/registry"
)

// CuePlayer renders sound cues. The audio package implements it.
type CuePlayer interface {
	PlayCue(c core.Cue)
}

// Options holds optional model collaborators.
type Options struct {
	Sounds        CuePlayer            // nil disables sound
	ScreenshotDir string               // defaults to ~/.cliotris/screenshots
	OnGameOver    func(core.GameState) // called once per finished game
	Now           func() time.Time     // clock for pointer samples; time.Now when nil
}

// TickMsg drives one fixed simulation step.
type TickMsg time.Time

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	interval   time.Duration
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	opts       Options
	width      int
	height     int
	showHelp   bool
	status     string
	overSeen   bool // Whether OnGameOver has fired for the current game over
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom terminal row is reserved for the status line.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = defaultScreenshotDir()
	}

	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	width, height := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenH = max(0, height-1)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		interval:   time.Second / time.Duration(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		opts:       opts,
		width:      width,
		height:     height,
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.nextTick()
}

func (m Model) nextTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Screenshot) {
		m.status = m.saveScreenshot()
		return m, nil
	}

	if m.showHelp {
		if action == core.ActionHelp || action == core.ActionBack {
			m.showHelp = false
		}
		return m, nil
	}

	switch action {
	case core.ActionHelp:
		m.showHelp = true
	case core.ActionNone, core.ActionBack:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse forwards mouse input to games that accept pointer events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pg, ok := m.game.(registry.PointerGame)
	if !ok || m.showHelp {
		return m, nil
	}
	if ev, ok := PointerEvent(msg, core.PointerEvent{Time: m.opts.Now()}); ok {
		pg.HandlePointer(ev)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(0, msg.Height-1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.inputFrame.Clear()
		return m, m.nextTick()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.opts.Sounds != nil {
		for _, c := range result.Cues {
			m.opts.Sounds.PlayCue(c)
		}
	}

	switch {
	case m.gameState.GameOver && !m.overSeen:
		m.overSeen = true
		if m.opts.OnGameOver != nil {
			m.opts.OnGameOver(m.gameState)
		}
	case !m.gameState.GameOver:
		m.overSeen = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, m.nextTick()
}

// saveScreenshot saves the game as text and returns a status line. Games
// that describe themselves as text are saved that way, others as the
// rendered screen.
func (m *Model) saveScreenshot() string {
	text := ""
	if s, ok := m.game.(fmt.Stringer); ok {
		text = s.String()
	} else {
		m.game.Render(m.screen)
		text = m.screen.String()
	}

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}
	return "saved " + path
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cliotris", "screenshots")
	}
	return filepath.Join(home, ".cliotris", "screenshots")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.helpView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m Model) helpView() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("How to play"),
		"Fill a row to clear it. Pink pieces can be wiped:",
		"click one, or rub back and forth over it with the",
		"mouse or the wheel. A flat pink piece clears its row,",
		"an upright one its column.",
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBoxStyle.Render(body))
}

// Game returns the running game.
func (m Model) Game() registry.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks, drags and the wheel drive gestures
	)

	_, err := p.Run()
	return err
}
