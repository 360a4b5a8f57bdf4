package codeinput

// boxAt maps widget-local cell coordinates to a box index.
//
// (0,0) is the top-left cell of the first box. Gaps between boxes and cells
// outside the row map to no box.
func (m Model) boxAt(x, y int) (int, bool) {
	n := m.reg.Len()
	if n == 0 || x < 0 || y < 0 {
		return -1, false
	}
	w, h := m.boxSize()
	if w <= 0 || y >= h {
		return -1, false
	}

	stride := w + maxInt(m.cfg.Style.Gap, 0)
	i := x / stride
	if i >= n || x-i*stride >= w {
		return -1, false
	}
	return i, true
}
