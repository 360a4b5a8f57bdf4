package codeinput

import (
	"strings"
	"sync/atomic"

	"github.com/iw2rmb/codebox/boxes"
)

// Key codes understood by KeyEvent.
const (
	KeyCodeBackspace = 8
	KeyCodeDelete    = 46
	// KeyCodeComposition is the generic code IME environments report for many
	// keys, backspace included. It is resolved by a deferred caret probe.
	KeyCodeComposition = 229
)

// InputEvent delivers text typed into a box. An empty Data means the text
// must be read from the box's live value.
type InputEvent struct {
	Box  int
	Data string
}

// PasteEvent delivers clipboard text pasted into a box.
type PasteEvent struct {
	Box  int
	Text string
}

// KeyEvent delivers a key press on a box, identified by name and/or code.
type KeyEvent struct {
	Box  int
	Key  string
	Code int
}

// ClickEvent delivers a click on a box.
type ClickEvent struct {
	Box int
}

func (e KeyEvent) isBackspace() bool {
	return strings.EqualFold(e.Key, "backspace") || e.Code == KeyCodeBackspace
}

func (e KeyEvent) isDelete() bool {
	return strings.EqualFold(e.Key, "delete") || e.Code == KeyCodeDelete
}

// CodeChangedMsg is returned after every emission.
type CodeChangedMsg struct {
	ID   int
	Code string
}

// CodeCompletedMsg is returned after an emission where every box is filled.
type CodeCompletedMsg struct {
	ID   int
	Code string
}

// emitMsg fires a scheduled emission.
type emitMsg struct {
	id int
}

// probeMsg resolves a deferred composition-key backspace probe.
type probeMsg struct {
	id       int
	box      boxes.Box
	index    int
	wasEmpty bool
	isDelete bool
}

// refocusMsg moves focus to the last box after a click.
type refocusMsg struct {
	id    int
	box   boxes.Box
	index int
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}
