// Package core holds the types shared by games and shells: the character
// screen, input actions, pointer events, colors and sound cues. It imports
// nothing outside the standard library.
package core

// Rect is a rectangle of screen cells. X and Y name the top-left cell.
type Rect struct {
	X, Y, W, H int
}

func NewRect(x, y, w, h int) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Right is the first column past r.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past r.
func (r Rect) Bottom() int { return r.Y + r.H }

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
