package boxes

import graphemeutil "github.com/iw2rmb/codebox/internal/grapheme"

// Box is the handle of one rendered character slot.
//
// It exposes only what the code input needs from the render layer.
type Box interface {
	Value() string
	SetValue(v string)

	// Filled reports the visual "has value" marker.
	Filled() bool
	SetFilled(filled bool)

	Focus()
	Blur()
	Focused() bool

	// Select selects the whole content, moving the caret to offset 0.
	Select()
	// Caret returns the selection start offset in characters.
	Caret() int
}

// Focus tracks the box that currently owns keyboard input.
//
// It plays the role of a document's active element: at most one box is
// focused, and focusing a box implicitly blurs the previous one.
type Focus struct {
	active Box
}

func NewFocus() *Focus { return &Focus{} }

// Active returns the focused box, or nil.
func (f *Focus) Active() Box {
	if f == nil {
		return nil
	}
	return f.active
}

// Clear drops focus from whatever box holds it.
func (f *Focus) Clear() {
	if f != nil {
		f.active = nil
	}
}

// Cell is the terminal implementation of Box.
type Cell struct {
	focus *Focus

	value    string
	filled   bool
	caret    int
	disabled bool
}

var _ Box = (*Cell)(nil)

// NewCell returns an empty cell sharing the given focus tracker.
func NewCell(focus *Focus) *Cell {
	return &Cell{focus: focus}
}

func (c *Cell) Value() string { return c.value }

// SetValue replaces the content and places the caret after it.
func (c *Cell) SetValue(v string) {
	c.value = v
	c.caret = graphemeutil.Count(v)
}

func (c *Cell) Filled() bool { return c.filled }

func (c *Cell) SetFilled(filled bool) { c.filled = filled }

// Focus makes c the active box. Disabled cells cannot take focus.
func (c *Cell) Focus() {
	if c.focus == nil || c.disabled {
		return
	}
	c.focus.active = c
}

func (c *Cell) Blur() {
	if c.focus == nil || c.focus.active != Box(c) {
		return
	}
	c.focus.active = nil
}

func (c *Cell) Focused() bool {
	return c.focus != nil && c.focus.active == Box(c)
}

func (c *Cell) Select() { c.caret = 0 }

func (c *Cell) Caret() int { return c.caret }

// SetCaret moves the caret, clamped to the content. Platform bridges use it
// to report the caret position after a keystroke they handled natively.
func (c *Cell) SetCaret(offset int) {
	n := graphemeutil.Count(c.value)
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	c.caret = offset
}

// SetDisabled toggles whether the cell accepts focus. Disabling a focused
// cell blurs it.
func (c *Cell) SetDisabled(disabled bool) {
	c.disabled = disabled
	if disabled {
		c.Blur()
	}
}

func (c *Cell) Disabled() bool { return c.disabled }
