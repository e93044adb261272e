package cliotris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/cliotris/internal/gesture"
)

// Gameplay constants.
const (
	DropInterval  = 600 * time.Millisecond // gravity period
	RowScore      = 100                    // per row removed by filling it
	WipeScore     = 150                    // per row or column removed by a gesture
	DefaultCellPx = 24                     // pixel size of a cell for gesture mapping
)

// OverflowPolicy decides what happens when a piece locks partly above row 0.
type OverflowPolicy int

const (
	OverflowDiscard  OverflowPolicy = iota // drop the cells above the top and play on
	OverflowGameOver                       // end the game
)

// String returns the config name of the policy.
func (p OverflowPolicy) String() string {
	if p == OverflowGameOver {
		return "game_over"
	}
	return "discard"
}

// ParseOverflowPolicy converts a config value into a policy.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch s {
	case "", "discard":
		return OverflowDiscard, nil
	case "game_over":
		return OverflowGameOver, nil
	default:
		return OverflowDiscard, fmt.Errorf("cliotris: unknown lock overflow policy %q", s)
	}
}

// EventKind names something that happened inside a session.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventLocked
	EventLinesCleared
	EventWiped
	EventGameOver
	EventRestarted
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "Spawned"
	case EventLocked:
		return "Locked"
	case EventLinesCleared:
		return "LinesCleared"
	case EventWiped:
		return "Wiped"
	case EventGameOver:
		return "GameOver"
	case EventRestarted:
		return "Restarted"
	default:
		return "Unknown"
	}
}

// Event is delivered to a session's listener as state changes.
type Event struct {
	Kind        EventKind
	Lines       int         // rows removed, for EventLinesCleared
	Orientation Orientation // for EventWiped
	Index       int         // row or column removed, for EventWiped
	Score       int         // score after the event
}

// Listener receives session events synchronously, in order.
type Listener func(Event)

// Options configures a new session.
type Options struct {
	Seed          int64
	SpecialChance float64
	Generator     Generator // overrides Seed and SpecialChance when set
	Overflow      OverflowPolicy
	CellPx        int // pixel size of a cell for Rub; DefaultCellPx when zero
	Listener      Listener
}

// DefaultOptions returns options with the stock special chance.
func DefaultOptions(seed int64) Options {
	return Options{
		Seed:          seed,
		SpecialChance: DefaultSpecialChance,
		CellPx:        DefaultCellPx,
	}
}

// Session is one game: the board, the falling piece and the score.
// It is not safe for concurrent use; see Loop.
type Session struct {
	grid     Grid
	piece    Piece
	hasPiece bool
	score    int
	lines    int
	wipes    int
	over     bool
	paused   bool

	gen      Generator
	overflow OverflowPolicy
	cellPx   int
	listener Listener
}

// NewSession creates a session and spawns its first piece.
func NewSession(opts Options) *Session {
	gen := opts.Generator
	if gen == nil {
		gen = NewRandomGenerator(opts.Seed, opts.SpecialChance)
	}
	cellPx := opts.CellPx
	if cellPx <= 0 {
		cellPx = DefaultCellPx
	}
	s := &Session{
		gen:      gen,
		overflow: opts.Overflow,
		cellPx:   cellPx,
		listener: opts.Listener,
	}
	s.Restart()
	return s
}

// Restart clears the board and score and spawns a fresh piece.
// It is accepted in every state.
func (s *Session) Restart() {
	s.grid = Grid{}
	s.hasPiece = false
	s.score = 0
	s.lines = 0
	s.wipes = 0
	s.over = false
	s.paused = false
	s.emit(Event{Kind: EventRestarted})
	s.spawn()
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.over }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Grid returns a copy of the settled board.
func (s *Session) Grid() Grid { return s.grid }

// Piece returns the falling piece, if any.
func (s *Session) Piece() (Piece, bool) { return s.piece, s.hasPiece }

// CellPx returns the pixel size used to map rub coordinates to cells.
func (s *Session) CellPx() int { return s.cellPx }

// SetPaused pauses or resumes the session. Ignored once the game is over.
func (s *Session) SetPaused(p bool) {
	if s.over {
		return
	}
	s.paused = p
}

// TogglePause flips the paused flag.
func (s *Session) TogglePause() {
	s.SetPaused(!s.paused)
}

func (s *Session) accepting() bool {
	return !s.over && !s.paused
}

// MoveLeft shifts the piece one column left if there is room.
func (s *Session) MoveLeft() bool { return s.shift(-1) }

// MoveRight shifts the piece one column right if there is room.
func (s *Session) MoveRight() bool { return s.shift(1) }

func (s *Session) shift(dx int) bool {
	if !s.accepting() || !s.hasPiece {
		return false
	}
	if s.grid.Collides(s.piece, s.piece.Shape(), dx, 0) {
		return false
	}
	s.piece.X += dx
	return true
}

// Rotate turns the piece clockwise, trying each kick offset in order.
func (s *Session) Rotate() bool {
	if !s.accepting() || !s.hasPiece {
		return false
	}
	p, ok := s.grid.Rotate(s.piece)
	if ok {
		s.piece = p
	}
	return ok
}

// SoftDrop moves the piece down one row, locking it if it cannot move.
func (s *Session) SoftDrop() {
	if !s.accepting() || !s.hasPiece {
		return
	}
	s.fall()
}

// HardDrop drops the piece as far as it goes and locks it.
func (s *Session) HardDrop() {
	if !s.accepting() || !s.hasPiece {
		return
	}
	s.piece.Y += s.grid.DropDistance(s.piece)
	s.lock()
}

// Tick performs one gravity step. It spawns a piece if none is falling.
// It reports false when the session is over or paused.
func (s *Session) Tick() bool {
	if !s.accepting() {
		return false
	}
	if !s.hasPiece {
		s.spawn()
		return true
	}
	s.fall()
	return true
}

func (s *Session) fall() {
	if s.grid.Collides(s.piece, s.piece.Shape(), 0, 1) {
		s.lock()
		return
	}
	s.piece.Y++
}

func (s *Session) lock() {
	overflow := s.grid.Place(s.piece)
	s.hasPiece = false
	s.emit(Event{Kind: EventLocked, Score: s.score})

	if overflow && s.overflow == OverflowGameOver {
		s.gameOver()
		return
	}

	if n := s.grid.ClearFullRows(); n > 0 {
		s.score += n * RowScore
		s.lines += n
		s.emit(Event{Kind: EventLinesCleared, Lines: n, Score: s.score})
	}
	s.spawn()
}

func (s *Session) spawn() {
	s.piece = s.gen.Next()
	s.hasPiece = true
	s.emit(Event{Kind: EventSpawned, Score: s.score})
	if !s.grid.Fits(s.piece) {
		s.gameOver()
	}
}

func (s *Session) gameOver() {
	s.over = true
	s.emit(Event{Kind: EventGameOver, Score: s.score})
}

// Click wipes the special block at board cell (x, y), if there is one.
// A horizontal special piece clears its row, a vertical one its column.
func (s *Session) Click(x, y int) bool {
	if !s.accepting() || !InBounds(x, y) {
		return false
	}
	var active *Piece
	if s.hasPiece {
		p := s.piece
		active = &p
	}
	return s.wipe(resolveWipe(&s.grid, active, x, y))
}

// Rub handles a recognized rub gesture at canvas pixel (px, py).
// The axis is informational; orientation comes from the block under the rub.
func (s *Session) Rub(px, py int, _ gesture.Axis) bool {
	if px < 0 || py < 0 {
		return false
	}
	return s.Click(px/s.cellPx, py/s.cellPx)
}

// ApplyGesture acts on a tracker result: a tap clicks the cell under it and
// a rub wipes there. It reports whether anything was wiped.
func (s *Session) ApplyGesture(r gesture.Result) bool {
	switch r.Kind {
	case gesture.ResultRub:
		return s.Rub(r.X, r.Y, r.Axis)
	case gesture.ResultTap:
		if x, y, ok := s.CellAt(r.X, r.Y); ok {
			return s.Click(x, y)
		}
	}
	return false
}

// CellAt converts canvas pixels into board coordinates.
func (s *Session) CellAt(px, py int) (x, y int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/s.cellPx, py/s.cellPx
	return x, y, InBounds(x, y)
}

func (s *Session) wipe(t Target) bool {
	index := 0
	switch t.Orientation {
	case OrientRow:
		s.grid.ClearRow(t.Y)
		index = t.Y
	case OrientColumn:
		s.grid.ClearColumn(t.X)
		index = t.X
	default:
		return false
	}
	s.score += WipeScore
	s.wipes++
	s.emit(Event{Kind: EventWiped, Orientation: t.Orientation, Index: index, Score: s.score})

	if t.Active {
		s.hasPiece = false
		s.spawn()
	}
	return true
}

func (s *Session) emit(e Event) {
	if s.listener != nil {
		s.listener(e)
	}
}
