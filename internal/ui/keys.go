package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown in the footer and the full help
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	NextFile key.Binding
	PrevFile key.Binding
	Select   key.Binding
	Extend   key.Binding
	GotoLine key.Binding
	OpenLink key.Binding
	CopyLink key.Binding
	Pager    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		NextFile: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next file")),
		PrevFile: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev file")),
		Select:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "select line")),
		Extend:   key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s", "extend range")),
		GotoLine: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to line")),
		OpenLink: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link")),
		CopyLink: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		Pager:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "view selection")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Extend, k.NextFile, k.CopyLink, k.Pager, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.NextFile, k.PrevFile, k.GotoLine},
		{k.Select, k.Extend, k.OpenLink, k.CopyLink, k.Pager},
		{k.Help, k.Quit},
	}
}
