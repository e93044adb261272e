package cliotris

import (
	"math/rand"
	"testing"
)

func fillRow(g *Grid, y int, k Kind) {
	for x := 0; x < Cols; x++ {
		g[y][x] = k
	}
}

func TestClearFullRowsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		var g Grid
		var kept [][Cols]Kind
		full := 0
		for y := 0; y < Rows; y++ {
			if rng.Intn(3) == 0 {
				fillRow(&g, y, StandardKinds[rng.Intn(len(StandardKinds))])
				full++
				continue
			}
			for x := 0; x < Cols; x++ {
				if rng.Intn(2) == 0 {
					g[y][x] = KindT
				}
			}
			g[y][rng.Intn(Cols)] = KindNone // guarantee a hole
			kept = append(kept, g[y])
		}

		if got := g.ClearFullRows(); got != full {
			t.Fatalf("trial %d: cleared %d rows, want %d", trial, got, full)
		}
		for y := 0; y < full; y++ {
			if !g.RowEmpty(y) {
				t.Fatalf("trial %d: row %d should be empty after shifting", trial, y)
			}
		}
		for i, row := range kept {
			if g[full+i] != row {
				t.Fatalf("trial %d: row %d changed order or contents", trial, full+i)
			}
		}
	}
}

func TestClearFullRowsRechecksSameIndex(t *testing.T) {
	var g Grid
	fillRow(&g, 18, KindI)
	fillRow(&g, 19, KindJ)
	g[17][0] = KindT

	if n := g.ClearFullRows(); n != 2 {
		t.Fatalf("expected 2 rows cleared, got %d", n)
	}
	if g[19][0] != KindT {
		t.Errorf("block above cleared rows should fall to the bottom")
	}
	if g.Count() != 1 {
		t.Errorf("expected 1 block left, got %d", g.Count())
	}
}

func TestClearRow(t *testing.T) {
	var g Grid
	g[3][2] = KindS
	g[4][7] = KindWipe
	g[5][1] = KindZ

	g.ClearRow(4)

	if g[4][2] != KindS {
		t.Errorf("row above should shift down")
	}
	if g[5][1] != KindZ {
		t.Errorf("rows below should stay")
	}
	if !g.RowEmpty(0) {
		t.Errorf("top row should be empty")
	}

	before := g
	g.ClearRow(-1)
	g.ClearRow(Rows)
	if g != before {
		t.Errorf("out of range rows should be ignored")
	}
}

func TestClearColumnShiftsLeft(t *testing.T) {
	var g Grid
	for x := 0; x < Cols; x++ {
		g[19][x] = StandardKinds[x%len(StandardKinds)]
	}
	want := g[19][5]

	g.ClearColumn(4)

	if g[19][4] != want {
		t.Errorf("cell right of the cleared column should move left: got %v want %v", g[19][4], want)
	}
	if g[19][Cols-1] != KindNone {
		t.Errorf("rightmost column should be empty")
	}
}

func TestRepeatedClearColumnEmptiesRow(t *testing.T) {
	var g Grid
	fillRow(&g, 19, KindL)
	g[19][4] = KindWipe

	for i := 0; i < Cols; i++ {
		g.ClearColumn(0)
	}

	if !g.RowEmpty(19) {
		t.Errorf("row should be empty after %d column clears", Cols)
	}
}

func TestCollidesOutsideBoard(t *testing.T) {
	var g Grid
	kinds := append(StandardKinds[:], KindWipe)

	for _, k := range kinds {
		for r, shape := range Rotations(k) {
			minX, maxX, maxY := 99, -99, -99
			for _, o := range shape {
				minX = min(minX, o.X)
				maxX = max(maxX, o.X)
				maxY = max(maxY, o.Y)
			}
			p := Piece{Kind: k, Rotation: r}

			tests := []struct {
				name string
				x, y int
				want bool
			}{
				{"inside", -minX, 0, false},
				{"past left edge", -minX - 1, 0, true},
				{"past right edge", Cols - maxX, 0, true},
				{"past bottom", 0 - minX, Rows - maxY, true},
				{"resting on bottom", -minX, Rows - 1 - maxY, false},
				{"above the top", -minX, -10, false},
			}
			for _, tt := range tests {
				p.X, p.Y = tt.x, tt.y
				if got := g.Collides(p, shape, 0, 0); got != tt.want {
					t.Errorf("%v rot %d %s: collides=%v, want %v", k, r, tt.name, got, tt.want)
				}
			}
		}
	}
}

func TestCollidesWithSettledCells(t *testing.T) {
	var g Grid
	g[1][4] = KindT
	p := NewPiece(KindI, 0) // cells (3..6, 1)

	if !g.Collides(p, p.Shape(), 0, 0) {
		t.Errorf("expected overlap with settled cell")
	}
	if g.Collides(p, p.Shape(), 0, 1) {
		t.Errorf("row below is free")
	}
}

func TestRotateKickOrder(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Grid)
		piece Piece
		wantX int
		ok    bool
	}{
		{
			name:  "free rotation keeps position",
			setup: func(*Grid) {},
			piece: Piece{Kind: KindI, Rotation: 1, X: 3},
			wantX: 3,
			ok:    true,
		},
		{
			name:  "blocked by wall shifts left",
			setup: func(*Grid) {},
			piece: Piece{Kind: KindI, Rotation: 1, X: 7}, // column 9
			wantX: 6,
			ok:    true,
		},
		{
			name:  "blocked at 0 and -1 shifts right",
			setup: func(g *Grid) { g[1][2] = KindO },
			piece: Piece{Kind: KindI, Rotation: 1, X: 2}, // column 4
			wantX: 3,
			ok:    true,
		},
		{
			name: "every kick blocked",
			setup: func(g *Grid) {
				fillRow(g, 1, KindO)
				g[1][4] = KindNone
			},
			piece: Piece{Kind: KindI, Rotation: 1, X: 2},
			wantX: 2,
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Grid
			tt.setup(&g)
			got, ok := g.Rotate(tt.piece)
			if ok != tt.ok {
				t.Fatalf("ok=%v, want %v", ok, tt.ok)
			}
			if got.X != tt.wantX {
				t.Errorf("X=%d, want %d", got.X, tt.wantX)
			}
			if ok && got.Rotation != 0 {
				t.Errorf("rotation should wrap to 0, got %d", got.Rotation)
			}
			if !ok && got != tt.piece {
				t.Errorf("blocked rotation must not change the piece")
			}
		})
	}
}

func TestPlaceDropsCellsAboveTop(t *testing.T) {
	var g Grid
	p := Piece{Kind: KindO, X: 3, Y: -1} // cells rows -1 and 0

	if !g.Place(p) {
		t.Errorf("expected overflow")
	}
	if g.Count() != 2 || g[0][4] != KindO || g[0][5] != KindO {
		t.Errorf("only in-bounds cells should be written, got %d", g.Count())
	}
}

func TestSessionGridIsReadableCopy(t *testing.T) {
	s := newScripted(nil, NewPiece(KindO, 0), NewPiece(KindO, 0))
	s.HardDrop()

	if n := s.Grid().Count(); n != 4 {
		t.Fatalf("Count()=%d after one locked O, want 4", n)
	}
	if !s.Grid().RowEmpty(0) || s.Grid().RowFull(Rows-1) {
		t.Errorf("only part of the bottom row should be filled")
	}
	if !s.Grid().Occupied(4, Rows-1) || s.Grid().At(4, Rows-1) != KindO {
		t.Errorf("locked O should sit on the floor at column 4")
	}

	g := s.Grid()
	g.Set(0, 0, KindI)
	if s.Grid().Occupied(0, 0) {
		t.Errorf("writes to the returned grid must not reach the session")
	}
}
