package cliotris

import (
	"fmt"

	"github.com/vovakirdan/cliotris/internal/core"
)

// Board dimensions in cells.
const (
	Cols = 10
	Rows = 20
)

// Kind identifies what occupies a cell or what a piece is made of.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
	KindWipe // the pink I-piece that is cleared by a gesture instead of by filling rows
)

var kindNames = [...]string{"", "I", "J", "L", "O", "S", "T", "Z", "W"}

// String returns the one-letter name used in snapshots.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// MarshalText encodes the kind as its letter; empty cells become "".
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("cliotris: unknown kind %q", b)
}

// Special reports whether cells of this kind respond to clicks and rubs.
func (k Kind) Special() bool {
	return k == KindWipe
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	case KindO:
		return core.ColorYellow
	case KindS:
		return core.ColorGreen
	case KindT:
		return core.ColorMagenta
	case KindZ:
		return core.ColorRed
	case KindWipe:
		return core.ColorPink
	default:
		return core.ColorDefault
	}
}

// Grid is the settled board, indexed [row][column] with row 0 at the top.
// A zero Kind is an empty cell.
type Grid [Rows][Cols]Kind

// InBounds reports whether (x, y) is a cell of the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// At returns the cell at (x, y), or KindNone outside the board.
func (g Grid) At(x, y int) Kind {
	if !InBounds(x, y) {
		return KindNone
	}
	return g[y][x]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, k Kind) {
	if InBounds(x, y) {
		g[y][x] = k
	}
}

// Occupied reports whether (x, y) holds a settled block.
func (g Grid) Occupied(x, y int) bool {
	return g.At(x, y) != KindNone
}

// RowFull reports whether every cell of row y is occupied.
func (g Grid) RowFull(y int) bool {
	for x := 0; x < Cols; x++ {
		if g[y][x] == KindNone {
			return false
		}
	}
	return true
}

// RowEmpty reports whether row y has no occupied cells.
func (g Grid) RowEmpty(y int) bool {
	for x := 0; x < Cols; x++ {
		if g[y][x] != KindNone {
			return false
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (g Grid) Count() int {
	n := 0
	for y := range g {
		for x := range g[y] {
			if g[y][x] != KindNone {
				n++
			}
		}
	}
	return n
}
