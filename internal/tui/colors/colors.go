package colors

import "github.com/charmbracelet/lipgloss"

// === Color Palette ===
var (
	NeonPurple = lipgloss.Color("#bd93f9")
	NeonPink   = lipgloss.Color("#ff79c6")
	NeonCyan   = lipgloss.Color("#8be9fd")
	DarkGray   = lipgloss.Color("#282a36") // Background
	Gray       = lipgloss.Color("#44475a") // Borders
	LightGray  = lipgloss.Color("#a9b1d6")
	White      = lipgloss.Color("#f8f8f2")
)

// === Semantic Colors ===
var (
	Error   = lipgloss.Color("#ff5555")
	Success = lipgloss.Color("#50fa7b")
	Info    = lipgloss.Color("#8be9fd")
	Result  = lipgloss.Color("#bd93f9")
)
