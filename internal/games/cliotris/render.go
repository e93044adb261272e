package cliotris

import (
	"fmt"

	"github.com/vovakirdan/cliotris/internal/core"
)

const (
	cellChars  = 2  // terminal columns per board cell
	panelW     = 20 // side panel width, shown when it fits
	minScreenW = Cols*cellChars + 2
	minScreenH = Rows + 3
)

// layout holds the screen positions of the board frame, its interior and the panel.
type layout struct {
	frame     core.Rect
	inner     core.Rect
	panelX    int
	showPanel bool
}

func computeLayout(w, h int) layout {
	frameW := Cols*cellChars + 2
	frameH := Rows + 2
	total := frameW
	showPanel := w >= frameW+panelW+2
	if showPanel {
		total += panelW + 2
	}

	x := max(0, (w-total)/2)
	y := 1
	if h > frameH+2 {
		y = (h - frameH) / 2
	}

	frame := core.NewRect(x, y, frameW, frameH)
	return layout{
		frame:     frame,
		inner:     core.NewRect(x+1, y+1, Cols*cellChars, Rows),
		panelX:    frame.Right() + 2,
		showPanel: showPanel,
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)
	g.renderBoard(dst, snap)
	if g.layout.showPanel {
		g.renderPanel(dst, snap)
	}
	g.renderOverlays(dst, snap)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	f := g.layout.frame
	dst.DrawTextColor(f.X, f.Y-1, g.Title(), core.ColorPink)
	score := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawText(f.Right()-len(score), f.Y-1, score)
}

func (g *Game) renderBoard(dst *core.Screen, snap Snapshot) {
	dst.DrawBox(g.layout.frame, core.ColorGray)

	in := g.layout.inner
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			sx := in.X + x*cellChars
			sy := in.Y + y
			k := snap.At(x, y)
			switch {
			case k == KindNone:
				dst.SetColor(sx, sy, ' ', core.ColorDefault)
				dst.SetColor(sx+1, sy, '·', core.ColorGray)
			case k.Special():
				dst.SetColor(sx, sy, '▓', k.Color())
				dst.SetColor(sx+1, sy, '▓', k.Color())
			default:
				dst.SetColor(sx, sy, '█', k.Color())
				dst.SetColor(sx+1, sy, '█', k.Color())
			}
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, snap Snapshot) {
	x := g.layout.panelX
	y := g.layout.frame.Y

	lines := []struct {
		text  string
		color core.Color
	}{
		{fmt.Sprintf("Score  %d", snap.Score), core.ColorWhite},
		{fmt.Sprintf("Lines  %d", snap.Lines), core.ColorDefault},
		{fmt.Sprintf("Wipes  %d", snap.Wipes), core.ColorPink},
		{"", core.ColorDefault},
		{"←/→   move", core.ColorGray},
		{"↑ z   rotate", core.ColorGray},
		{"↓     soft drop", core.ColorGray},
		{"space hard drop", core.ColorGray},
		{"p     pause", core.ColorGray},
		{"?     help", core.ColorGray},
		{"", core.ColorDefault},
		{"Pink blocks:", core.ColorPink},
		{" click or rub", core.ColorGray},
		{" to wipe a line", core.ColorGray},
	}
	for i, l := range lines {
		dst.DrawTextColor(x, y+i, l.text, l.color)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, snap Snapshot) {
	f := g.layout.frame
	centerX := f.X + f.W/2
	centerY := f.Y + f.H/2

	switch {
	case snap.Over:
		g.drawOverlay(dst, centerX, centerY, core.ColorRed,
			"GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "Enter/R to restart")
	case snap.Paused:
		g.drawOverlay(dst, centerX, centerY, core.ColorYellow, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, border core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, border)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
