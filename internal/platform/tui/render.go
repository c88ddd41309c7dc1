package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per foreground/background pair.
// Only the Bubble Tea goroutine renders, so no locking is needed.
var styleCache = map[colorPair]lipgloss.Style{}

func styleFor(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if style, ok := styleCache[key]; ok {
		return style
	}

	style := lipgloss.NewStyle()
	if code := fg.ANSI(); code != "" {
		style = style.Foreground(lipgloss.Color(code))
	}
	if code := bg.ANSI(); code != "" {
		style = style.Background(lipgloss.Color(code))
	}
	styleCache[key] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Background != start.Background {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Color == core.ColorDefault && start.Background == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start.Color, start.Background).Render(run.String()))
		}
	}
	return sb.String()
}
