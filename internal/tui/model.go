package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/convertlength/convertlength/internal/clipboard"
	"github.com/convertlength/convertlength/internal/tui/components"
	"github.com/convertlength/convertlength/internal/units"
)

// Focus is the screen element receiving keys
type Focus int

const (
	FocusInput Focus = iota // value field
	FocusFrom               // from unit row
	FocusTo                 // to unit row
	focusCount
)

// Options seeds the initial screen
type Options struct {
	From  int    // table index of the initial from unit
	To    int    // table index of the initial to unit
	Value string // initial input text
}

// toastExpiredMsg clears the toast with the matching ID
type toastExpiredMsg struct {
	ID int
}

// Model is the converter screen
type Model struct {
	conv  *units.Converter
	input textinput.Model
	focus Focus

	// Chip cursors per row
	fromCursor int
	toCursor   int

	keys     KeyMap
	help     help.Model
	toast    components.Toast
	toastSeq int

	width  int
	height int

	// Swappable for tests
	copyResult func(string) error
	pasteValue func() (string, bool)
}

// InitialModel builds the screen. A non-empty Options.Value is previewed immediately.
func InitialModel(opts Options) Model {
	state := units.NewConversionStateWith(opts.From, opts.To)

	input := textinput.New()
	input.Placeholder = "Enter a length"
	input.Prompt = ""
	input.Width = InputWidth
	input.CharLimit = InputLimit
	input.SetValue(opts.Value)
	input.Focus()

	m := Model{
		conv:       units.NewConverter(state),
		input:      input,
		focus:      FocusInput,
		fromCursor: state.From.Index(),
		toCursor:   state.To.Index(),
		keys:       Keys,
		help:       help.New(),
		copyResult: clipboard.WriteResult,
		pasteValue: clipboard.ReadValue,
	}
	m.conv.Preview(opts.Value)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State exposes the current selection
func (m Model) State() *units.ConversionState {
	return m.conv.State
}

// Display returns the result currently shown
func (m Model) Display() string {
	return m.conv.Display()
}

// InputError returns the error shown under the value field
func (m Model) InputError() error {
	return m.conv.InputError()
}

// Toast returns the current toast
func (m Model) Toast() components.Toast {
	return m.toast
}

// Focused returns the element receiving keys
func (m Model) Focused() Focus {
	return m.focus
}

func (m Model) chips(group units.SelectionGroup) []components.Chip {
	checked, ok := group.Checked()
	all := units.All()
	chips := make([]components.Chip, len(all))
	for i, u := range all {
		chips[i] = components.Chip{Label: u.Name, Checked: ok && checked == i}
	}
	return chips
}

// Value returns the input text
func (m Model) Value() string {
	return m.input.Value()
}
