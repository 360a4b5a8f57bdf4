package codeinput

import tea "github.com/charmbracelet/bubbletea"

// updateMouse focuses the pressed box, as a native click would, and then
// runs click handling.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.cfg.Disabled {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	i, ok := m.boxAt(msg.X-m.originX, msg.Y-m.originY)
	if !ok {
		return m, nil
	}
	if b, ok := m.reg.BoxAt(i); ok {
		b.Focus()
	}
	return m.handleClick(ClickEvent{Box: i})
}
