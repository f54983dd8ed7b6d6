package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings shared by the router and the help line
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Accept   key.Binding
	Dismiss  key.Binding
	Next     key.Binding
	Prev     key.Binding
	SlotPrev key.Binding
	SlotNext key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

// Keys is the default key map
var Keys = KeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev suggestion")),
	Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next suggestion")),
	Accept:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose / submit")),
	Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close suggestions")),
	Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	SlotPrev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "time slot")),
	SlotNext: key.NewBinding(key.WithKeys("right", "l")),
	Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
	Cancel:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cancel looked-up booking")),
	Reload:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload municipalities")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Accept, k.Next, k.Submit, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Accept, k.Dismiss},
		{k.Next, k.Prev, k.SlotPrev},
		{k.Submit, k.Cancel, k.Reload, k.Quit},
	}
}
