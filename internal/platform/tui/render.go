package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-artillery/internal/core"
)

// foregrounds maps core.Color to terminal colors.
var foregrounds = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorBlack:         lipgloss.Color("233"),
	core.ColorSalmon:        lipgloss.Color("203"),
}

// Renderer converts screen buffers to styled strings over a background.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
	base   lipgloss.Style
}

// NewRenderer creates a renderer. background is a lipgloss color such as
// "#66B2FF"; empty keeps the terminal background.
func NewRenderer(background string) *Renderer {
	base := lipgloss.NewStyle()
	if background != "" {
		base = base.Background(lipgloss.Color(background))
	}

	styles := make(map[core.Color]lipgloss.Style, len(foregrounds)+1)
	styles[core.ColorDefault] = base
	for c, fg := range foregrounds {
		styles[c] = base.Foreground(fg)
	}
	return &Renderer{styles: styles, base: base}
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := r.styles[startColor]
			if !ok {
				style = r.base
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
