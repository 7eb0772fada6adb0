package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/convertlength/convertlength/internal/tui/components"
	"github.com/convertlength/convertlength/internal/units"
	"github.com/convertlength/convertlength/internal/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastExpiredMsg:
		if msg.ID == m.toast.ID {
			m.toast = components.Toast{}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input internals
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Bindings live in every focus
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextField):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case key.Matches(msg, m.keys.SwapAny):
		return m.swap()
	case key.Matches(msg, m.keys.Paste):
		return m.paste()
	}

	if m.focus == FocusInput {
		return m.handleInputKey(msg)
	}
	return m.handleChipKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Convert) {
		if _, err := m.conv.Confirm(m.input.Value()); err != nil {
			utils.Debug("Confirm rejected %q: %v", m.input.Value(), err)
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.conv.Preview(m.input.Value())
	}
	return m, cmd
}

func (m Model) handleChipKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cursor := &m.fromCursor
	if m.focus == FocusTo {
		cursor = &m.toCursor
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Left):
		*cursor = (*cursor + units.Count - 1) % units.Count
		return m, nil
	case key.Matches(msg, m.keys.Right):
		*cursor = (*cursor + 1) % units.Count
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		m.toggle(*cursor)
		return m, nil
	case key.Matches(msg, m.keys.Swap):
		return m.swap()
	case key.Matches(msg, m.keys.Copy):
		return m.copy()
	}

	// 1-8 checks a chip directly
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if r := msg.Runes[0]; r >= '1' && r < '1'+rune(units.Count) {
			i := int(r - '1')
			*cursor = i
			m.selectUnit(i)
		}
	}
	return m, nil
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	if f == FocusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// toggle flips chip i in the focused row and refreshes the preview
func (m *Model) toggle(i int) {
	var checked bool
	var err error
	if m.focus == FocusFrom {
		checked, err = m.conv.State.ToggleFrom(i)
	} else {
		checked, err = m.conv.State.ToggleTo(i)
	}
	if err != nil {
		return
	}
	utils.Debug("Toggle %s chip %d checked=%t", m.rowName(), i, checked)
	m.conv.Preview(m.input.Value())
}

// selectUnit checks chip i in the focused row and refreshes the preview
func (m *Model) selectUnit(i int) {
	var err error
	if m.focus == FocusFrom {
		err = m.conv.State.SelectFrom(i)
	} else {
		err = m.conv.State.SelectTo(i)
	}
	if err != nil {
		return
	}
	utils.Debug("Select %s chip %d", m.rowName(), i)
	m.conv.Preview(m.input.Value())
}

func (m Model) rowName() string {
	if m.focus == FocusFrom {
		return "from"
	}
	return "to"
}

func (m Model) swap() (tea.Model, tea.Cmd) {
	if !m.conv.State.Swap() {
		return m, nil
	}
	s := m.conv.State
	m.fromCursor, m.toCursor = s.From.Index(), s.To.Index()
	utils.Debug("Swapped units: %s -> %s", s.From.Unit().Name, s.To.Unit().Name)

	// Both groups changed, so the live preview runs as for any selection change
	m.conv.Preview(m.input.Value())
	cmd := m.showToast(swappedText, components.ToastSuccess)
	return m, cmd
}

func (m Model) copy() (tea.Model, tea.Cmd) {
	result := m.conv.Display()
	if result == "" {
		return m, nil
	}
	if err := m.copyResult(result); err != nil {
		utils.Debug("Clipboard write failed: %v", err)
		cmd := m.showToast("Clipboard unavailable", components.ToastError)
		return m, cmd
	}
	cmd := m.showToast(copiedText, components.ToastInfo)
	return m, cmd
}

func (m Model) paste() (tea.Model, tea.Cmd) {
	value, ok := m.pasteValue()
	if !ok {
		return m, nil
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.conv.Preview(value)
	return m, nil
}

func (m *Model) showToast(text string, kind components.ToastKind) tea.Cmd {
	m.toastSeq++
	id := m.toastSeq
	m.toast = components.Toast{ID: id, Text: text, Kind: kind}
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: id}
	})
}

// errorText maps parse errors to the message under the value field
func errorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, units.ErrEmptyValue):
		return "Value required"
	case errors.Is(err, units.ErrInvalidNumber):
		return "Not a valid number"
	default:
		return err.Error()
	}
}
