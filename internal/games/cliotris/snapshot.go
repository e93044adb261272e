package cliotris

import (
	"strconv"
	"strings"
)

// PieceView is the observable part of the falling piece.
type PieceView struct {
	Kind  Kind      `json:"kind"`
	Cells [4]Offset `json:"cells"`
}

// Snapshot is a value copy of everything a shell needs to draw the game.
type Snapshot struct {
	Grid    Grid       `json:"grid"`
	Piece   *PieceView `json:"piece,omitempty"`
	Score   int        `json:"score"`
	Lines   int        `json:"lines"`
	Wipes   int        `json:"wipes"`
	Running bool       `json:"running"`
	Over    bool       `json:"over"`
	Paused  bool       `json:"paused"`
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:    s.grid,
		Score:   s.score,
		Lines:   s.lines,
		Wipes:   s.wipes,
		Running: !s.over,
		Over:    s.over,
		Paused:  s.paused,
	}
	if s.hasPiece {
		snap.Piece = &PieceView{Kind: s.piece.Kind, Cells: s.piece.Cells()}
	}
	return snap
}

// At returns what is drawn at (x, y): the falling piece over the board.
func (s Snapshot) At(x, y int) Kind {
	if s.Piece != nil {
		for _, c := range s.Piece.Cells {
			if c.X == x && c.Y == y {
				return s.Piece.Kind
			}
		}
	}
	return s.Grid.At(x, y)
}

// String renders the board as text, one letter per block and '.' for empty
// cells, followed by a status line.
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow((Cols + 1) * (Rows + 1))
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if k := s.At(x, y); k != KindNone {
				b.WriteString(k.String())
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("score ")
	b.WriteString(strconv.Itoa(s.Score))
	if s.Over {
		b.WriteString(" (game over)")
	}
	b.WriteByte('\n')
	return b.String()
}
