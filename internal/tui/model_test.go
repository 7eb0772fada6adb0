package tui

import (
	"errors"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convertlength/convertlength/internal/units"
	"github.com/convertlength/convertlength/internal/utils"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "convertlength-tui-test-*")
	if err != nil {
		panic(err)
	}
	utils.ConfigureDebug(dir)
	code := m.Run()
	utils.ConfigureDebug("")
	os.RemoveAll(dir)
	os.Exit(code)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = send(t, m, runes(string(r)))
	}
	return m
}

func newModel(t *testing.T, opts Options) Model {
	t.Helper()
	m := InitialModel(opts)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestInitialModel(t *testing.T) {
	m := InitialModel(Options{From: units.Metre, To: units.Centimetre})
	assert.Equal(t, FocusInput, m.Focused())
	assert.Equal(t, "", m.Display())
	assert.Equal(t, "Loading...", m.View())

	m = InitialModel(Options{From: units.Mile, To: units.Kilometre, Value: "5"})
	assert.Equal(t, "8.046722 Kilometre (km)", m.Display())
}

func TestTyping_LivePreview(t *testing.T) {
	m := newModel(t, Options{From: units.Metre, To: units.Centimetre})

	m = typeText(t, m, "12")
	assert.Equal(t, "1200.000000 Centimetre (cm)", m.Display())

	// Invalid text keeps the last result and shows no error
	m = typeText(t, m, "x")
	assert.Equal(t, "1200.000000 Centimetre (cm)", m.Display())
	assert.NoError(t, m.InputError())
}

func TestConfirm_ReportsErrors(t *testing.T) {
	m := newModel(t, Options{From: units.Metre, To: units.Centimetre})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.ErrorIs(t, m.InputError(), units.ErrEmptyValue)
	assert.Contains(t, m.View(), "Value required")

	m = typeText(t, m, "abc")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.ErrorIs(t, m.InputError(), units.ErrInvalidNumber)
	assert.Contains(t, m.View(), "Not a valid number")
	assert.Equal(t, "", m.Display())

	for i := 0; i < 3; i++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = typeText(t, m, "3")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NoError(t, m.InputError())
	assert.Equal(t, "300.000000 Centimetre (cm)", m.Display())
	assert.Contains(t, m.View(), "300.000000 Centimetre (cm)")
	assert.NotContains(t, m.View(), "Not a valid number")
}

func TestFocusCycle(t *testing.T) {
	m := newModel(t, Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusFrom, m.Focused())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusTo, m.Focused())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusInput, m.Focused())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FocusTo, m.Focused())
}

func TestChipSelection_TriggersPreview(t *testing.T) {
	m := newModel(t, Options{From: units.Metre, To: units.Centimetre, Value: "1"})

	// From row: move to Centimetre and check it
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, units.Centimetre, m.State().From.Index())
	assert.Equal(t, units.Centimetre, m.State().To.Index(), "to row must be untouched")
	assert.Equal(t, "1.000000 Centimetre (cm)", m.Display())

	// To row: digit 3 checks Millimetre directly
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("3"))
	assert.Equal(t, units.Millimetre, m.State().To.Index())
	assert.Equal(t, "10.000000 Millimetre (mm)", m.Display())

	// Left wraps around to Yard
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, units.Yard, m.State().To.Index())
}

func TestSwap_ShowsToastAndPreviews(t *testing.T) {
	m := newModel(t, Options{From: units.Metre, To: units.Centimetre, Value: "100"})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Equal(t, units.Centimetre, m.State().From.Index())
	assert.Equal(t, units.Metre, m.State().To.Index())
	assert.Equal(t, "1.000000 Metre (m)", m.Display())
	assert.Equal(t, swappedText, m.Toast().Text)
	assert.Contains(t, m.View(), swappedText)

	// A stale expiry does not clear a newer toast
	first := m.Toast().ID
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("s"))
	require.Equal(t, units.Metre, m.State().From.Index())
	m, _ = send(t, m, toastExpiredMsg{ID: first})
	assert.True(t, m.Toast().Visible())

	m, _ = send(t, m, toastExpiredMsg{ID: m.Toast().ID})
	assert.False(t, m.Toast().Visible())
}

func TestSwap_WithoutSelectionIsNoop(t *testing.T) {
	m := newModel(t, Options{From: units.Metre, To: units.Centimetre, Value: "1"})

	// Uncheck the from chip under the cursor
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeySpace})
	_, ok := m.State().From.Checked()
	require.False(t, ok)

	before := *m.State()
	m, cmd := send(t, m, runes("s"))
	assert.Nil(t, cmd)
	assert.Equal(t, before, *m.State())
	assert.False(t, m.Toast().Visible())
	assert.Equal(t, "100.000000 Centimetre (cm)", m.Display())
}

func TestCopyResult(t *testing.T) {
	m := newModel(t, Options{From: units.Metre, To: units.Centimetre, Value: "2"})
	var copied string
	m.copyResult = func(s string) error {
		copied = s
		return nil
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("y"))
	assert.Equal(t, "200.000000 Centimetre (cm)", copied)
	assert.Equal(t, copiedText, m.Toast().Text)

	m.copyResult = func(string) error { return errors.New("no clipboard") }
	m, _ = send(t, m, runes("y"))
	assert.Equal(t, "Clipboard unavailable", m.Toast().Text)
}

func TestCopyResult_NothingToCopy(t *testing.T) {
	m := newModel(t, Options{})
	m.copyResult = func(string) error {
		t.Fatal("copy must not run without a result")
		return nil
	}
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("y"))
	assert.Nil(t, cmd)
}

func TestPasteValue(t *testing.T) {
	m := newModel(t, Options{From: units.Metre, To: units.Centimetre})
	m.pasteValue = func() (string, bool) { return "4.5", true }

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.Equal(t, "450.000000 Centimetre (cm)", m.Display())

	m.pasteValue = func() (string, bool) { return "", false }
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.Equal(t, "450.000000 Centimetre (cm)", m.Display())
}

func TestQuit(t *testing.T) {
	m := newModel(t, Options{})

	// q is plain text while typing
	m, _ = send(t, m, runes("q"))
	assert.Equal(t, FocusInput, m.Focused())
	assert.Equal(t, "q", m.Value())

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_ShowsUnits(t *testing.T) {
	m := newModel(t, Options{})
	view := m.View()
	for _, u := range units.All() {
		assert.Contains(t, view, u.Name)
	}
	assert.Contains(t, view, "Convert Length")
}
