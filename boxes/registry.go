package boxes

// slot pairs a box with its transient flag so that both always resize
// together.
type slot struct {
	box  Box
	flag Flag
}

// Registry is the ordered collection of live boxes.
type Registry struct {
	slots    []slot
	closed   bool
	onResize func()
}

func NewRegistry() *Registry { return &Registry{} }

// OnResize registers the hook run after every Resize. The code input uses it
// to re-synchronize displayed values from the external code.
func (r *Registry) OnResize(fn func()) { r.onResize = fn }

// Resize matches the registry to the live list of rendered boxes.
//
// Growing appends the handles past the current length in FlagReady; boxes
// already registered keep their handle and flag. Shrinking truncates from the
// end. The resize hook always runs afterwards, so a repeated call with the
// same list only re-synchronizes values.
func (r *Registry) Resize(handles []Box) {
	if r.closed {
		return
	}
	switch n := len(handles); {
	case n > len(r.slots):
		for _, b := range handles[len(r.slots):] {
			r.slots = append(r.slots, slot{box: b, flag: FlagReady})
		}
	case n < len(r.slots):
		for i := n; i < len(r.slots); i++ {
			r.slots[i] = slot{}
		}
		r.slots = r.slots[:n]
	}
	if r.onResize != nil {
		r.onResize()
	}
}

// Len returns the number of registered boxes.
func (r *Registry) Len() int { return len(r.slots) }

// BoxAt returns the box at index i, or false when i is out of range.
func (r *Registry) BoxAt(i int) (Box, bool) {
	if i < 0 || i >= len(r.slots) {
		return nil, false
	}
	return r.slots[i].box, true
}

// IndexOf returns the index of b, or -1 if b is not registered.
func (r *Registry) IndexOf(b Box) int {
	if b == nil {
		return -1
	}
	for i, s := range r.slots {
		if s.box == b {
			return i
		}
	}
	return -1
}

// Boxes returns the registered boxes in index order.
func (r *Registry) Boxes() []Box {
	out := make([]Box, len(r.slots))
	for i, s := range r.slots {
		out[i] = s.box
	}
	return out
}

// SetFlag sets the transient flag of b. Unknown boxes are ignored.
func (r *Registry) SetFlag(b Box, f Flag) {
	if i := r.IndexOf(b); i >= 0 {
		r.slots[i].flag = f
	}
}

// Flag returns the transient flag of b, or false when b is not registered.
func (r *Registry) Flag(b Box) (Flag, bool) {
	i := r.IndexOf(b)
	if i < 0 {
		return FlagReady, false
	}
	return r.slots[i].flag, true
}

// Close drops every box. A closed registry ignores further resizes, so work
// deferred before teardown finds nothing to act on.
func (r *Registry) Close() {
	r.slots = nil
	r.closed = true
}

func (r *Registry) Closed() bool { return r.closed }
