package preview

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Clear key.Binding
	Dump  key.Binding
	Quit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Clear: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Dump:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dump")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
