package cliotris

// Orientation says which line a wipe clears.
type Orientation int

const (
	OrientNone Orientation = iota
	OrientRow
	OrientColumn
)

// String returns "row", "column" or "none".
func (o Orientation) String() string {
	switch o {
	case OrientRow:
		return "row"
	case OrientColumn:
		return "column"
	default:
		return "none"
	}
}

// Target is a resolved wipe: which line to clear and whether the falling
// piece is the one being consumed.
type Target struct {
	Orientation Orientation
	X, Y        int
	Active      bool
}

// specialRowRun counts contiguous special cells along row y through x.
func (g *Grid) specialRowRun(x, y int) int {
	if !g.At(x, y).Special() {
		return 0
	}
	n := 1
	for i := x - 1; i >= 0 && g[y][i].Special(); i-- {
		n++
	}
	for i := x + 1; i < Cols && g[y][i].Special(); i++ {
		n++
	}
	return n
}

// resolveWipe decides what a gesture at cell (x, y) clears. The falling piece
// takes precedence over settled cells beneath it.
func resolveWipe(g *Grid, active *Piece, x, y int) Target {
	if active != nil && active.Special() && active.Covers(x, y) {
		o := OrientColumn
		if active.Horizontal() {
			o = OrientRow
		}
		return Target{Orientation: o, X: x, Y: y, Active: true}
	}
	if !g.At(x, y).Special() {
		return Target{}
	}
	o := OrientColumn
	if g.specialRowRun(x, y) >= PieceLength {
		o = OrientRow
	}
	return Target{Orientation: o, X: x, Y: y}
}
