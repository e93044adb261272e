package cliotris

// Offset is a cell position relative to a piece's origin.
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shape is one rotation of a tetromino: exactly four cells.
type Shape [4]Offset

// Spawn position of every new piece.
const (
	SpawnX = 3
	SpawnY = 0
)

// PieceLength is the number of cells in a piece; a special row run this long
// is treated as a horizontal piece.
const PieceLength = 4

// StandardKinds lists the seven tetromino kinds in draw order.
var StandardKinds = [...]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

var iRotations = []Shape{
	{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
}

// rotations holds every orientation per kind, in clockwise order.
// The special piece shares the I geometry.
var rotations = map[Kind][]Shape{
	KindI:    iRotations,
	KindWipe: iRotations,
	KindJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	KindL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	KindO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
	},
}

// Rotations returns the orientation list for a kind.
func Rotations(k Kind) []Shape {
	return rotations[k]
}
