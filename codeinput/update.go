package codeinput

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// updateKey translates terminal key presses on the focused box into box
// events.
func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.cfg.Disabled {
		return m, nil
	}
	i := m.FocusedIndex()
	if i < 0 {
		return m, nil
	}

	// Bracketed paste always goes through paste distribution.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return m.handlePaste(PasteEvent{Box: i, Text: string(msg.Runes)})
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Backspace):
		return m.handleKeyDown(KeyEvent{Box: i, Key: "backspace", Code: KeyCodeBackspace})
	case key.Matches(msg, km.Delete):
		return m.handleKeyDown(KeyEvent{Box: i, Key: "delete", Code: KeyCodeDelete})
	case key.Matches(msg, km.Paste):
		return m.pasteClipboard(i)
	case key.Matches(msg, km.Next):
		if b, ok := m.reg.BoxAt(i + 1); ok {
			b.Focus()
		}
		return m, nil
	case key.Matches(msg, km.Prev):
		if b, ok := m.reg.BoxAt(i - 1); ok {
			b.Focus()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return m, nil
		}
		return m.handleTyping(InputEvent{Box: i, Data: string(msg.Runes)})
	case tea.KeySpace:
		return m.handleTyping(InputEvent{Box: i, Data: " "})
	}
	return m, nil
}

func (m Model) pasteClipboard(i int) (Model, tea.Cmd) {
	if m.cfg.Clipboard == nil {
		return m, nil
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Debug("codeinput: clipboard read", "err", err)
		return m, nil
	}
	return m.handlePaste(PasteEvent{Box: i, Text: s})
}
