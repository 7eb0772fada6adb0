package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/convertlength/convertlength/internal/tui/colors"
	"github.com/convertlength/convertlength/internal/tui/components"
)

var (
	labelStyle       = lipgloss.NewStyle().Width(LabelWidth).Foreground(colors.LightGray)
	activeLabelStyle = lipgloss.NewStyle().Width(LabelWidth).Foreground(colors.NeonPink).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(colors.Error)
	resultStyle      = lipgloss.NewStyle().Foreground(colors.Result).Bold(true)
	placeholderStyle = lipgloss.NewStyle().Foreground(colors.Gray).Italic(true)
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	boxWidth := m.width - BoxMarginX
	if boxWidth > MaxBoxWidth {
		boxWidth = MaxBoxWidth
	}
	if boxWidth < MinBoxWidth {
		boxWidth = MinBoxWidth
	}
	// Border plus horizontal padding on both sides
	contentWidth := boxWidth - 2 - 2*DefaultPaddingX
	chipWidth := contentWidth - LabelWidth

	chipStyles := components.DefaultChipStyles()

	fromCursor, toCursor := -1, -1
	if m.focus == FocusFrom {
		fromCursor = m.fromCursor
	}
	if m.focus == FocusTo {
		toCursor = m.toCursor
	}

	inputLine := lipgloss.JoinHorizontal(lipgloss.Top, m.label("Value", FocusInput), m.input.View())
	errLine := ""
	if err := m.conv.InputError(); err != nil {
		errLine = lipgloss.NewStyle().MarginLeft(LabelWidth).Render(errorStyle.Render(errorText(err)))
	}

	fromRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.label("From", FocusFrom),
		components.RenderChipRow(m.chips(m.conv.State.From), fromCursor, chipWidth, chipStyles),
	)
	toRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.label("To", FocusTo),
		components.RenderChipRow(m.chips(m.conv.State.To), toCursor, chipWidth, chipStyles),
	)

	result := placeholderStyle.Render("Enter a value and press enter")
	if d := m.conv.Display(); d != "" {
		result = resultStyle.Render(d)
	}
	resultLine := lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Result"), result)

	content := lipgloss.JoinVertical(lipgloss.Left,
		"",
		inputLine,
		errLine,
		fromRow,
		"",
		toRow,
		"",
		resultLine,
		"",
	)
	padded := lipgloss.NewStyle().Padding(0, DefaultPaddingX).Render(content)
	box := components.RenderBox("Convert Length", padded, boxWidth, colors.NeonPink)

	var keys help.KeyMap = chipKeyMap{m.keys}
	if m.focus == FocusInput {
		keys = inputKeyMap{m.keys}
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		box,
		lipgloss.NewStyle().Height(1).Render(m.toast.Render()),
		m.help.View(keys),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screen)
}

func (m Model) label(text string, f Focus) string {
	if m.focus == f {
		return activeLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}
