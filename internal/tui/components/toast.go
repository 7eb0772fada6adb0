package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/convertlength/convertlength/internal/tui/colors"
)

// ToastKind selects the toast styling
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// toastInfo holds the display properties for each kind
type toastInfo struct {
	icon  string
	color lipgloss.Color
}

var toastMap = map[ToastKind]toastInfo{
	ToastInfo:    {"ℹ", colors.Info},
	ToastSuccess: {"✔", colors.Success},
	ToastError:   {"✖", colors.Error},
}

// Toast is a transient status message. ID distinguishes successive toasts
// so an expiry tick only clears the toast it was scheduled for.
type Toast struct {
	ID   int
	Text string
	Kind ToastKind
}

// Visible reports whether there is anything to show
func (t Toast) Visible() bool {
	return t.Text != ""
}

// Render returns the styled icon + text, or "" when empty
func (t Toast) Render() string {
	if !t.Visible() {
		return ""
	}
	info, ok := toastMap[t.Kind]
	if !ok {
		info = toastMap[ToastInfo]
	}
	return lipgloss.NewStyle().Foreground(info.color).Bold(true).Render(info.icon + " " + t.Text)
}
