package codeinput

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the code input key bindings.
//
// Printable runes are not bound: they are always routed to the focused box.
type KeyMap struct {
	Backspace, Delete key.Binding
	Paste             key.Binding

	// Native focus traversal between boxes.
	Next, Prev key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "clear box")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "clear box")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste code")),

		// Terminals without shift+tab support still get the arrows.
		Next: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab/→", "next box")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab/←", "previous box")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Backspace, km.Paste, km.Next, km.Prev}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Backspace, km.Delete, km.Paste}, {km.Next, km.Prev}}
}

func (km KeyMap) isZero() bool {
	return len(km.Backspace.Keys()) == 0 &&
		len(km.Delete.Keys()) == 0 &&
		len(km.Paste.Keys()) == 0 &&
		len(km.Next.Keys()) == 0 &&
		len(km.Prev.Keys()) == 0
}
