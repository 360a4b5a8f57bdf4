package codeinput

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codebox/boxes"
	graphemeutil "github.com/iw2rmb/codebox/internal/grapheme"
)

// handleTyping writes typed text into the box at ev.Box and the boxes after
// it, then moves focus past the last written box.
func (m Model) handleTyping(ev InputEvent) (Model, tea.Cmd) {
	if m.cfg.Disabled {
		return m, nil
	}
	target, ok := m.reg.BoxAt(ev.Box)
	if !ok {
		return m, nil
	}

	value := ev.Data
	if value == "" {
		value = target.Value()
	}
	if value == "" {
		return m, nil
	}

	if !m.sync.CanAccept(value) {
		m.sync.WriteValue(target, "")
		m.reg.SetFlag(target, boxes.FlagReset)
		m.cfg.Logger.Debug("codeinput: rejected input", "box", ev.Box, "policy", m.sync.Policy())
		return m, nil
	}

	chars := graphemeutil.Split(strings.TrimSpace(value))
	last := m.reg.Len() - 1
	for j, ch := range chars {
		b, ok := m.reg.BoxAt(ev.Box + j)
		if !ok {
			break
		}
		m.sync.WriteValue(b, ch)
	}
	m.reg.SetFlag(target, boxes.FlagReady)
	cmd := m.scheduleEmission()

	next := ev.Box + len(chars)
	if next > last {
		target.Blur()
		return m, cmd
	}
	if b, ok := m.reg.BoxAt(next); ok {
		b.Focus()
	}
	return m, cmd
}

// handlePaste distributes pasted text one character per box starting at
// ev.Box. It stops at the first character the policy rejects, clearing that
// box; the prefix written so far is kept and emitted.
func (m Model) handlePaste(ev PasteEvent) (Model, tea.Cmd) {
	if m.cfg.Disabled {
		return m, nil
	}
	origin, ok := m.reg.BoxAt(ev.Box)
	if !ok {
		return m, nil
	}

	text := strings.TrimSpace(ev.Text)
	if text == "" {
		return m, nil
	}

	chars := graphemeutil.Split(text)
	k := 0
	for j := ev.Box; j < m.reg.Len() && k < len(chars); j++ {
		b, _ := m.reg.BoxAt(j)
		if !m.sync.CanAccept(chars[k]) {
			m.sync.WriteValue(b, "")
			m.reg.SetFlag(b, boxes.FlagReset)
			m.cfg.Logger.Debug("codeinput: paste stopped", "box", j, "written", k)
			break
		}
		m.sync.WriteValue(b, chars[k])
		k++
	}

	origin.Blur()
	return m, m.scheduleEmission()
}

// handleKeyDown clears the box on backspace or delete. Backspace on an empty
// box, or on any box when PrevFocusableAfterClear is set, also moves focus to
// the previous box.
func (m Model) handleKeyDown(ev KeyEvent) (Model, tea.Cmd) {
	if m.cfg.Disabled {
		return m, nil
	}
	b, ok := m.reg.BoxAt(ev.Box)
	if !ok {
		return m, nil
	}
	wasEmpty := b.Value() == ""
	isDelete := ev.isDelete()

	switch {
	case ev.isBackspace():
		return m.clearBox(ev.Box, b, wasEmpty, isDelete)
	case ev.Code == KeyCodeComposition:
		// Let the platform apply the keystroke before reading the caret.
		msg := probeMsg{id: m.id, box: b, index: ev.Box, wasEmpty: wasEmpty, isDelete: isDelete}
		return m, func() tea.Msg { return msg }
	case isDelete:
		return m.clearBox(ev.Box, b, wasEmpty, true)
	}
	return m, nil
}

// resolveProbe finishes a composition-key probe one loop iteration after the
// key press. The key counts as backspace only when the box was not just
// reset by a rejected input and the caret sits at offset 0.
func (m Model) resolveProbe(msg probeMsg) (Model, tea.Cmd) {
	if !m.owns(msg.id, msg.box, msg.index) {
		return m, nil
	}

	flag, _ := m.reg.Flag(msg.box)
	isReset := flag == boxes.FlagReset
	if isReset {
		m.reg.SetFlag(msg.box, boxes.FlagReady)
	}
	isBackspace := !isReset && msg.box.Caret() == 0
	m.cfg.Logger.Debug("codeinput: composition probe", "box", msg.index, "reset", isReset, "backspace", isBackspace)

	if !isBackspace && !msg.isDelete {
		return m, nil
	}
	return m.clearBox(msg.index, msg.box, msg.wasEmpty, msg.isDelete)
}

func (m Model) clearBox(i int, b boxes.Box, wasEmpty, isDelete bool) (Model, tea.Cmd) {
	m.sync.WriteValue(b, "")

	var cmd tea.Cmd
	if !wasEmpty {
		cmd = m.scheduleEmission()
	}

	prev, ok := m.reg.BoxAt(i - 1)
	if !ok || isDelete {
		return m, cmd
	}
	if wasEmpty || m.cfg.PrevFocusableAfterClear {
		prev.Focus()
	}
	return m, cmd
}

// handleClick focuses the last box on the next loop iteration when the code
// is complete and FocusLastOnClickIfFilled is set.
func (m Model) handleClick(ev ClickEvent) (Model, tea.Cmd) {
	if !m.cfg.FocusLastOnClickIfFilled || m.cfg.Disabled {
		return m, nil
	}
	lastIdx := m.cfg.CodeLength - 1
	last, ok := m.reg.BoxAt(lastIdx)
	if !ok || ev.Box == lastIdx {
		return m, nil
	}
	if m.sync.FilledCount() < m.cfg.CodeLength {
		return m, nil
	}

	msg := refocusMsg{id: m.id, box: last, index: lastIdx}
	return m, func() tea.Msg { return msg }
}

func (m Model) refocusLast(msg refocusMsg) {
	if !m.owns(msg.id, msg.box, msg.index) {
		return
	}
	msg.box.Focus()
}

// scheduleEmission fires one emission after the configured delay. Calls are
// independent: every call produces its own emission.
func (m Model) scheduleEmission() tea.Cmd {
	id := m.id
	return tea.Tick(m.cfg.EmitDelay, func(time.Time) tea.Msg {
		return emitMsg{id: id}
	})
}

// emit reports the assembled code to the host. Completion is reported only
// when every box is filled.
func (m Model) emit(msg emitMsg) tea.Cmd {
	if msg.id != m.id || m.reg.Closed() {
		return nil
	}

	code := m.sync.CurrentFilledCode()
	complete := graphemeutil.Count(code) >= m.cfg.CodeLength
	m.cfg.Logger.Debug("codeinput: emit", "len", graphemeutil.Count(code), "complete", complete)

	if m.cfg.OnCodeChanged != nil {
		m.cfg.OnCodeChanged(code)
	}
	changed := msgCmd(CodeChangedMsg{ID: m.id, Code: code})
	if !complete {
		return changed
	}
	if m.cfg.OnCodeCompleted != nil {
		m.cfg.OnCodeCompleted(code)
	}
	// Hosts see the change before the completion.
	return tea.Sequence(changed, msgCmd(CodeCompletedMsg{ID: m.id, Code: code}))
}

// focusOnInitial focuses the initial box once. The latch closes only when the
// box actually took focus, so a box that cannot be focused yet is retried on
// the next update.
func (m *Model) focusOnInitial() {
	idx := m.cfg.InitialFocusIndex
	if idx == nil || m.sess.initialFocusDone {
		return
	}
	if err := m.FocusOnField(*idx); err != nil {
		m.cfg.Logger.Debug("codeinput: initial focus", "err", err)
		return
	}
	b, _ := m.reg.BoxAt(*idx)
	m.sess.initialFocusDone = b != nil && m.focus.Active() == b
}

// owns reports whether deferred work still targets a live box of m.
func (m Model) owns(id int, b boxes.Box, index int) bool {
	if id != m.id || m.reg.Closed() {
		return false
	}
	return m.reg.IndexOf(b) == index
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
