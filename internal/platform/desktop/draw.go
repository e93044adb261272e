package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/cliotris/internal/core"
	"github.com/vovakirdan/cliotris/internal/games/cliotris"
)

var (
	bgColor     = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	gridColor   = color.RGBA{R: 28, G: 28, B: 36, A: 255}
	frameColor  = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	shadeColor  = color.RGBA{A: 170}
	accentColor = rgba(core.ColorPink)
)

// debug font cell size
const (
	lineH = 16
	charW = 6
)

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Draw renders the board, the side panel and any overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	snap := g.session.Snapshot()
	g.drawBoard(screen, snap)
	g.drawPanel(screen, snap)

	switch {
	case g.help:
		g.drawOverlay(screen, "HELP",
			"Arrows/WASD  move, rotate",
			"Space        hard drop",
			"Click pink   wipe its line",
			"Rub pink     wipe its line",
			"P pause  R restart",
			"C copy board  Q quit",
			"",
			"Esc/H close")
	case snap.Over:
		g.drawOverlay(screen, "GAME OVER", fmt.Sprintf("Score %d", snap.Score), "", "Enter/R play again")
	case snap.Paused:
		g.drawOverlay(screen, "PAUSED", "P resume")
	}
}

func (g *Game) drawBoard(screen *ebiten.Image, snap cliotris.Snapshot) {
	cs := float32(g.cellPx)
	for y := 0; y < cliotris.Rows; y++ {
		for x := 0; x < cliotris.Cols; x++ {
			x0, y0 := float32(x)*cs, float32(y)*cs
			k := snap.At(x, y)
			if k == cliotris.KindNone {
				vector.FillRect(screen, x0+cs/2-1, y0+cs/2-1, 2, 2, gridColor, false)
				continue
			}
			vector.FillRect(screen, x0+1, y0+1, cs-2, cs-2, rgba(k.Color()), false)
			if k.Special() {
				vector.StrokeRect(screen, x0+2, y0+2, cs-4, cs-4, 1, color.White, false)
			}
		}
	}
	vector.StrokeRect(screen, 0, 0, float32(g.boardW()), float32(g.boardH()), 1, frameColor, false)
}

func (g *Game) drawPanel(screen *ebiten.Image, snap cliotris.Snapshot) {
	x := g.boardW() + 12
	vector.FillRect(screen, float32(x), 12, 8, 8, accentColor, false)
	lines := []string{
		"  CLIOTRIS",
		"",
		fmt.Sprintf("Score %d", snap.Score),
		fmt.Sprintf("Lines %d", snap.Lines),
		fmt.Sprintf("Wipes %d", snap.Wipes),
		"",
		"H help  C copy",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, 8+i*lineH)
	}
	if g.statusLeft > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, x, g.boardH()-2*lineH)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, title string, lines ...string) {
	w, h := g.boardW(), g.boardH()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), shadeColor, false)

	top := h/2 - (len(lines)+2)*lineH/2
	ebitenutil.DebugPrintAt(screen, title, (w-len(title)*charW)/2, top)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, (w-len(line)*charW)/2, top+(i+2)*lineH)
	}
}
