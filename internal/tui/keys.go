package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the screen key bindings
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Convert   key.Binding
	Swap      key.Binding
	SwapAny   key.Binding
	Copy      key.Binding
	Paste     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// Keys is the default key map
var Keys = KeyMap{
	NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle unit")),
	Convert:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "convert")),
	Swap:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "swap")),
	SwapAny:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "swap")),
	Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy result")),
	Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste value")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// inputKeyMap is shown while the value field is focused
type inputKeyMap struct{ KeyMap }

func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Convert, k.NextField, k.SwapAny, k.Paste, k.ForceQuit}
}

func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Convert, k.SwapAny, k.Paste},
		{k.NextField, k.PrevField, k.ForceQuit},
	}
}

// chipKeyMap is shown while a unit row is focused
type chipKeyMap struct{ KeyMap }

func (k chipKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Toggle, k.Swap, k.Copy, k.Help, k.Quit}
}

func (k chipKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Toggle},
		{k.Swap, k.Copy, k.Paste},
		{k.NextField, k.PrevField, k.Help, k.Quit},
	}
}
