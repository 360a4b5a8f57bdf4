package boxes

import "testing"

func TestCell_FocusIsExclusive(t *testing.T) {
	f := NewFocus()
	a, b := NewCell(f), NewCell(f)

	a.Focus()
	if !a.Focused() || f.Active() != Box(a) {
		t.Fatalf("a must be focused")
	}
	b.Focus()
	if a.Focused() || !b.Focused() {
		t.Fatalf("focusing b must blur a")
	}

	a.Blur()
	if !b.Focused() {
		t.Fatalf("blurring an unfocused cell must not steal focus")
	}
	b.Blur()
	if f.Active() != nil {
		t.Fatalf("active after blur: got %v, want nil", f.Active())
	}
}

func TestCell_DisabledRefusesFocus(t *testing.T) {
	f := NewFocus()
	c := NewCell(f)
	c.Focus()
	c.SetDisabled(true)
	if c.Focused() {
		t.Fatalf("disabling must blur the cell")
	}
	c.Focus()
	if c.Focused() {
		t.Fatalf("disabled cell must refuse focus")
	}
}

func TestCell_Caret(t *testing.T) {
	c := NewCell(NewFocus())
	c.SetValue("7")
	if got := c.Caret(); got != 1 {
		t.Fatalf("caret after SetValue: got %d, want 1", got)
	}
	c.Select()
	if got := c.Caret(); got != 0 {
		t.Fatalf("caret after Select: got %d, want 0", got)
	}
	c.SetCaret(5)
	if got := c.Caret(); got != 1 {
		t.Fatalf("caret clamp: got %d, want 1", got)
	}
	c.SetCaret(-1)
	if got := c.Caret(); got != 0 {
		t.Fatalf("caret clamp low: got %d, want 0", got)
	}
}
