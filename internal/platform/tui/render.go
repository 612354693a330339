package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-stickhero/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Adaptive colors keep the
// black silhouettes of the scene readable on dark terminals.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorPlatform: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "252"}),
	core.ColorPerfect:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorStick:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "229"}),
	core.ColorHero:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "15"}),
	core.ColorBandana:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorHill:     lipgloss.NewStyle().Foreground(lipgloss.Color("#95C629")),
	core.ColorHUD:      lipgloss.NewStyle().Bold(true),
	core.ColorAlert:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
