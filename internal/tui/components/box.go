package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox draws a rounded box with the title embedded in the top border.
// Height follows the content; lines wider than the box are cut.
// Example: ╭─ Convert Length ────────╮
func RenderBox(title, content string, width int, borderColor lipgloss.Color) string {
	const (
		topLeft     = "╭"
		topRight    = "╮"
		bottomLeft  = "╰"
		bottomRight = "╯"
		horizontal  = "─"
		vertical    = "│"
	)

	innerWidth := width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}
	border := lipgloss.NewStyle().Foreground(borderColor)

	var top string
	if title != "" {
		label := " " + title + " "
		rest := innerWidth - lipgloss.Width(label) - 1
		if rest < 0 {
			rest = 0
		}
		top = border.Render(topLeft+horizontal) +
			lipgloss.NewStyle().Foreground(borderColor).Bold(true).Render(label) +
			border.Render(strings.Repeat(horizontal, rest)+topRight)
	} else {
		top = border.Render(topLeft + strings.Repeat(horizontal, innerWidth) + topRight)
	}
	bottom := border.Render(bottomLeft + strings.Repeat(horizontal, innerWidth) + bottomRight)

	clip := lipgloss.NewStyle().MaxWidth(innerWidth)
	lines := strings.Split(content, "\n")
	rows := make([]string, 0, len(lines)+2)
	rows = append(rows, top)
	for _, line := range lines {
		line = clip.Render(line)
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		rows = append(rows, border.Render(vertical)+line+border.Render(vertical))
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}
