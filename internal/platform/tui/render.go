package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// sky is the playfield background; sprites keep it so they don't punch holes.
var sky = lipgloss.Color("24")

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorSky:     lipgloss.NewStyle().Background(sky),
	core.ColorPipe:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Background(sky),
	core.ColorPipeCap: lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Background(sky),
	core.ColorBird:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Background(sky),
	core.ColorBeak:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Background(sky).Bold(true),
	core.ColorGround:  lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorScore:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(sky).Bold(true),
	core.ColorLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(sky),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run to keep the
// number of ANSI sequences down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
