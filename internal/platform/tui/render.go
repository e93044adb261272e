package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cliotris/internal/core"
)

// cellStyles holds one foreground style per core.Color. Colors are given as
// the same hex values the web and desktop shells use; lipgloss downsamples
// them for terminals without true color.
var cellStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, int(core.ColorPink)+1)
	for c := core.ColorDefault; c <= core.ColorPink; c++ {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	styles[core.ColorDefault] = lipgloss.NewStyle()
	styles[core.ColorPink] = styles[core.ColorPink].Bold(true)
	return styles
}()

var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(core.ColorPink.Hex())).
			Padding(1, 2)
	helpTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(core.ColorPink.Hex())).
			Bold(true).
			MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray.Hex()))
)

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := cellStyles[c]; ok {
		return s
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen to styled text, one escape sequence per run
// of same-colored cells.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			c := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == c; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(styleFor(c).Render(run.String()))
		}
	}
	return sb.String()
}
