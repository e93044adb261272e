package cliotris

// Place writes p's cells into the grid. Cells above the top edge are dropped;
// overflow reports whether any were.
func (g *Grid) Place(p Piece) (overflow bool) {
	for _, c := range p.Cells() {
		if c.Y < 0 {
			overflow = true
			continue
		}
		g.Set(c.X, c.Y, p.Kind)
	}
	return overflow
}

// ClearFullRows removes every full row, shifting the rows above down, and
// returns how many were removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for y := Rows - 1; y >= 0; {
		if g.RowFull(y) {
			g.removeRow(y)
			cleared++
			// Re-check the same index: a new row moved into it.
			continue
		}
		y--
	}
	return cleared
}

// ClearRow removes row y and shifts everything above it down by one.
func (g *Grid) ClearRow(y int) {
	if y < 0 || y >= Rows {
		return
	}
	g.removeRow(y)
}

// ClearColumn removes column x: in every row the cells right of x shift one
// step left and the rightmost column becomes empty.
func (g *Grid) ClearColumn(x int) {
	if x < 0 || x >= Cols {
		return
	}
	for y := 0; y < Rows; y++ {
		copy(g[y][x:], g[y][x+1:])
		g[y][Cols-1] = KindNone
	}
}

func (g *Grid) removeRow(y int) {
	for r := y; r > 0; r-- {
		g[r] = g[r-1]
	}
	g[0] = [Cols]Kind{}
}
