package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// renderOptions alter how a buffer is displayed.
type renderOptions struct {
	Reverse bool          // Invert the whole screen (visual beep)
	Cursor  *core.Position // Cell drawn as a block cursor, nil for none
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c := core.ColorBlack; c <= core.ColorGray; c++ {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(c.ANSI())))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	style, ok := colorStyles[c]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, opts renderOptions) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			if opts.Cursor != nil && opts.Cursor.X == x && opts.Cursor.Y == y {
				cell := s.GetCell(x, y)
				sb.WriteString(styleFor(cell.Color).Reverse(!opts.Reverse).Render(string(cell.Rune)))
				x++
				continue
			}

			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				if opts.Cursor != nil && opts.Cursor.X == x && opts.Cursor.Y == y {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style := styleFor(startColor)
			if opts.Reverse {
				style = style.Reverse(true)
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
