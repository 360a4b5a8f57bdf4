package codeinput

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codebox/boxes"
	graphemeutil "github.com/iw2rmb/codebox/internal/grapheme"
)

func (m Model) View() string {
	bs := m.reg.Boxes()
	if len(bs) == 0 {
		return ""
	}

	cw := m.contentWidth()
	gap := strings.Repeat(" ", maxInt(m.cfg.Style.Gap, 0))
	parts := make([]string, 0, 2*len(bs))
	for i, b := range bs {
		if i > 0 && gap != "" {
			parts = append(parts, gap)
		}
		parts = append(parts, m.renderBox(b, cw))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderBox(b boxes.Box, cw int) string {
	st := m.cfg.Style

	style := st.Box
	switch {
	case m.cfg.Disabled:
		style = st.Disabled
	case b.Focused():
		style = st.Focused
	case b.Filled():
		style = st.Filled
	}

	text := b.Value()
	switch {
	case text == "":
		text = placeholder(st)
		if b.Focused() {
			text = st.Cursor.Render(text)
		}
	case m.cfg.Hidden:
		text = mask(st)
	}

	return style.Width(cw + style.GetHorizontalPadding()).Render(text)
}

// contentWidth is the cell width of the widest value any box displays.
func (m Model) contentWidth() int {
	st := m.cfg.Style
	shown := []string{placeholder(st)}
	if m.cfg.Hidden {
		shown = append(shown, mask(st))
	} else {
		for _, b := range m.reg.Boxes() {
			shown = append(shown, b.Value())
		}
	}
	return graphemeutil.MaxWidth(shown, 1)
}

// boxSize measures one rendered box in terminal cells.
func (m Model) boxSize() (w, h int) {
	b, ok := m.reg.BoxAt(0)
	if !ok {
		return 0, 0
	}
	s := m.renderBox(b, m.contentWidth())
	return lipgloss.Width(s), lipgloss.Height(s)
}

func placeholder(st Style) string {
	if st.Placeholder == "" {
		return " "
	}
	return st.Placeholder
}

func mask(st Style) string {
	if st.Mask == "" {
		return "*"
	}
	return st.Mask
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
