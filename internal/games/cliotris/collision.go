package cliotris

// Kicks are the horizontal offsets tried, in order, when a rotation collides.
var Kicks = [...]int{0, -1, 1, -2, 2}

// Collides reports whether shape, placed at p's origin shifted by (dx, dy),
// leaves the sides or bottom of the board or overlaps a settled cell.
// Cells above the top edge are allowed.
func (g *Grid) Collides(p Piece, shape Shape, dx, dy int) bool {
	for _, c := range p.cellsFor(shape, dx, dy) {
		if c.X < 0 || c.X >= Cols || c.Y >= Rows {
			return true
		}
		if c.Y >= 0 && g[c.Y][c.X] != KindNone {
			return true
		}
	}
	return false
}

// Fits reports whether p can stand where it is.
func (g *Grid) Fits(p Piece) bool {
	return !g.Collides(p, p.Shape(), 0, 0)
}

// Rotate returns p turned to its next orientation, shifted by the first kick
// that fits. ok is false when every kick collides.
func (g *Grid) Rotate(p Piece) (Piece, bool) {
	rots := Rotations(p.Kind)
	next := (p.Rotation + 1) % len(rots)
	for _, k := range Kicks {
		if !g.Collides(p, rots[next], k, 0) {
			p.Rotation = next
			p.X += k
			return p, true
		}
	}
	return p, false
}

// DropDistance returns how many rows p can fall before it rests.
func (g *Grid) DropDistance(p Piece) int {
	d := 0
	for !g.Collides(p, p.Shape(), 0, d+1) {
		d++
	}
	return d
}
