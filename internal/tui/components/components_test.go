package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBox(t *testing.T) {
	out := RenderBox("Convert", "hello\nworld", 20, lipgloss.Color("#ffffff"))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	for _, l := range lines {
		assert.Equal(t, 20, lipgloss.Width(l), "line %q", l)
	}
	assert.Contains(t, lines[0], "Convert")
	assert.Contains(t, lines[1], "hello")
	assert.True(t, strings.HasPrefix(lines[3], "╰"))
}

func TestRenderBox_ClipsWideLines(t *testing.T) {
	out := RenderBox("", strings.Repeat("x", 50), 12, lipgloss.Color("#ffffff"))
	for _, l := range strings.Split(out, "\n") {
		assert.Equal(t, 12, lipgloss.Width(l))
	}
}

func TestRenderChipRow_Wraps(t *testing.T) {
	chips := []Chip{{Label: "Metre", Checked: true}, {Label: "Centimetre"}, {Label: "Millimetre"}}
	styles := DefaultChipStyles()

	wide := RenderChipRow(chips, -1, 0, styles)
	assert.Equal(t, 1, len(strings.Split(wide, "\n")))

	narrow := RenderChipRow(chips, 1, 16, styles)
	lines := strings.Split(narrow, "\n")
	assert.Len(t, lines, 3)
	for _, c := range chips {
		assert.Contains(t, narrow, c.Label)
	}
}

func TestToast(t *testing.T) {
	var empty Toast
	assert.False(t, empty.Visible())
	assert.Equal(t, "", empty.Render())

	ok := Toast{ID: 1, Text: "Units swapped!", Kind: ToastSuccess}
	assert.True(t, ok.Visible())
	assert.Contains(t, ok.Render(), "Units swapped!")
	assert.Contains(t, ok.Render(), "✔")

	unknown := Toast{Text: "x", Kind: ToastKind(99)}
	assert.Contains(t, unknown.Render(), "ℹ")
}
