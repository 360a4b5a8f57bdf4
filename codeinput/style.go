package codeinput

import "github.com/charmbracelet/lipgloss"

// Style controls how boxes are rendered.
//
// Box, Focused, Filled and Disabled should share frame sizes: mouse hit
// testing measures the layout with Box.
type Style struct {
	Box      lipgloss.Style
	Focused  lipgloss.Style
	Filled   lipgloss.Style
	Disabled lipgloss.Style

	// Cursor styles the placeholder of the focused empty box.
	Cursor lipgloss.Style

	// Placeholder is shown in empty boxes.
	Placeholder string
	// Mask replaces filled values when the input is hidden.
	Mask string
	// Gap is the number of blank cells between boxes.
	Gap int
}

func DefaultStyle() Style {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Align(lipgloss.Center)
	return Style{
		Box:         box,
		Focused:     box.BorderForeground(lipgloss.Color("212")),
		Filled:      box.BorderForeground(lipgloss.Color("250")).Bold(true),
		Disabled:    box.Faint(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Placeholder: " ",
		Mask:        "•",
		Gap:         1,
	}
}
