package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/convertlength/convertlength/internal/tui/colors"
)

// Chip is one toggle in a single-select row
type Chip struct {
	Label   string
	Checked bool
}

// ChipStyles controls how chips render in each state
type ChipStyles struct {
	Normal        lipgloss.Style
	Checked       lipgloss.Style
	Cursor        lipgloss.Style
	CursorChecked lipgloss.Style
}

// DefaultChipStyles returns the neon chip theme
func DefaultChipStyles() ChipStyles {
	base := lipgloss.NewStyle().Padding(0, 1).MarginRight(1)
	return ChipStyles{
		Normal:        base.Foreground(colors.LightGray),
		Checked:       base.Foreground(colors.DarkGray).Background(colors.NeonPink).Bold(true),
		Cursor:        base.Foreground(colors.NeonCyan).Underline(true),
		CursorChecked: base.Foreground(colors.DarkGray).Background(colors.NeonCyan).Bold(true),
	}
}

// RenderChipRow renders chips left to right, wrapping onto a new line when
// the next chip would exceed maxWidth. cursor < 0 hides the cursor.
func RenderChipRow(chips []Chip, cursor int, maxWidth int, styles ChipStyles) string {
	var lines []string
	var current []string
	currentWidth := 0

	for i, c := range chips {
		var style lipgloss.Style
		switch {
		case i == cursor && c.Checked:
			style = styles.CursorChecked
		case i == cursor:
			style = styles.Cursor
		case c.Checked:
			style = styles.Checked
		default:
			style = styles.Normal
		}

		rendered := style.Render(c.Label)
		w := lipgloss.Width(rendered)
		if maxWidth > 0 && currentWidth > 0 && currentWidth+w > maxWidth {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
			currentWidth = 0
		}
		current = append(current, rendered)
		currentWidth += w
	}
	if len(current) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return strings.Join(lines, "\n")
}
