package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start   key.Binding
	Toggle  key.Binding
	Summary key.Binding
	Next    key.Binding
	Prev    key.Binding
	Theme   key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Start:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Toggle:  key.NewBinding(key.WithKeys("ctrl+p", " "), key.WithHelp("space", "stop/resume")),
		Summary: key.NewBinding(key.WithKeys("ctrl+o", "?"), key.WithHelp("?", "summary")),
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Theme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Close:   key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "close")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Toggle, k.Summary, k.Next, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Toggle, k.Summary},
		{k.Next, k.Prev, k.Theme, k.Quit},
	}
}
