package cliotris

import "math/rand"

// DefaultSpecialChance is the probability that a new piece is the special one.
const DefaultSpecialChance = 0.12

// Piece is the falling piece: a kind, its current orientation and its origin.
type Piece struct {
	Kind     Kind
	Rotation int // index into Rotations(Kind)
	X, Y     int // board position of the shape's origin
}

// NewPiece returns a piece of the given kind and orientation at the spawn point.
func NewPiece(k Kind, rotation int) Piece {
	n := len(Rotations(k))
	if n == 0 {
		n = 1
	}
	return Piece{
		Kind:     k,
		Rotation: ((rotation % n) + n) % n,
		X:        SpawnX,
		Y:        SpawnY,
	}
}

// Special reports whether the piece can be wiped by a gesture.
func (p Piece) Special() bool {
	return p.Kind.Special()
}

// Shape returns the piece's current orientation.
func (p Piece) Shape() Shape {
	return Rotations(p.Kind)[p.Rotation]
}

// Cells returns the absolute board coordinates the piece covers.
func (p Piece) Cells() [4]Offset {
	return p.cellsFor(p.Shape(), 0, 0)
}

func (p Piece) cellsFor(shape Shape, dx, dy int) [4]Offset {
	var out [4]Offset
	for i, o := range shape {
		out[i] = Offset{X: p.X + dx + o.X, Y: p.Y + dy + o.Y}
	}
	return out
}

// Covers reports whether the piece occupies board cell (x, y).
func (p Piece) Covers(x, y int) bool {
	for _, c := range p.Cells() {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// Horizontal reports whether all of the piece's cells share a row.
func (p Piece) Horizontal() bool {
	cells := p.Cells()
	for _, c := range cells[1:] {
		if c.Y != cells[0].Y {
			return false
		}
	}
	return true
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Generator supplies the sequence of pieces a session spawns.
type Generator interface {
	Next() Piece
}

// RandomGenerator draws uniformly among the seven kinds and swaps in the
// special piece with a fixed probability.
type RandomGenerator struct {
	rng           *rand.Rand
	specialChance float64
}

// NewRandomGenerator creates a generator seeded with seed.
func NewRandomGenerator(seed int64, specialChance float64) *RandomGenerator {
	return &RandomGenerator{
		rng:           rand.New(rand.NewSource(seed)),
		specialChance: specialChance,
	}
}

// Next returns a fresh piece at the spawn point.
func (g *RandomGenerator) Next() Piece {
	if g.rng.Float64() < g.specialChance {
		return NewPiece(KindWipe, g.rng.Intn(len(iRotations)))
	}
	return NewPiece(StandardKinds[g.rng.Intn(len(StandardKinds))], 0)
}

// Sequence replays a fixed list of pieces, then repeats the last one.
// It makes sessions scriptable in tests and demos.
type Sequence struct {
	pieces []Piece
	next   int
}

// NewSequence creates a generator over pieces. It panics if pieces is empty.
func NewSequence(pieces ...Piece) *Sequence {
	if len(pieces) == 0 {
		panic("cliotris: empty piece sequence")
	}
	return &Sequence{pieces: pieces}
}

// Next returns the next scripted piece.
func (s *Sequence) Next() Piece {
	p := s.pieces[s.next]
	if s.next < len(s.pieces)-1 {
		s.next++
	}
	return p
}
