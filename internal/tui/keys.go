package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Skip    key.Binding
	Select  key.Binding
	Restart key.Binding
	Jump    key.Binding
	Unmount key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→", "next")),
		Prev:    key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←", "prev")),
		Skip:    key.NewBinding(key.WithKeys("esc", "s"), key.WithHelp("esc", "skip")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Jump:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		Unmount: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unmount")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Skip, k.Select, k.Restart, k.Jump, k.Unmount, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Skip, k.Select},
		{k.Restart, k.Jump, k.Unmount, k.Quit},
	}
}
