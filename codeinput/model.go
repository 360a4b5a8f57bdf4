package codeinput

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codebox/boxes"
)

// session holds state shared by every copy of a Model.
type session struct {
	// Last externally assigned code.
	code string
	// One-shot latch for the initial focus.
	initialFocusDone bool
}

// Model is a Bubble Tea component rendering a row of code boxes.
type Model struct {
	cfg Config
	id  int

	focus *boxes.Focus
	cells []*boxes.Cell
	reg   *boxes.Registry
	sync  *boxes.Synchronizer
	sess  *session

	// Screen position of the top-left corner, for mouse hit testing.
	originX, originY int
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:   cfg,
		id:    nextID(),
		focus: boxes.NewFocus(),
		reg:   boxes.NewRegistry(),
		sess:  &session{code: cfg.Code},
	}
	m.sync = boxes.NewSynchronizer(m.reg, cfg.Policy)

	reg, sync, sess, log := m.reg, m.sync, m.sess, cfg.Logger
	reg.OnResize(func() {
		applied := sync.ApplyExternalCode(sess.code)
		log.Debug("codeinput: boxes resized", "boxes", reg.Len(), "synced", applied)
	})

	m.renderCells()
	m.focusOnInitial()
	return m
}

// ID identifies the model in the messages it returns.
func (m Model) ID() int { return m.id }

// Config returns the effective configuration.
func (m Model) Config() Config {
	cfg := m.cfg
	cfg.Code = m.sess.code
	return cfg
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case InputEvent:
		m, cmd = m.handleTyping(msg)
	case PasteEvent:
		m, cmd = m.handlePaste(msg)
	case KeyEvent:
		m, cmd = m.handleKeyDown(msg)
	case ClickEvent:
		m, cmd = m.handleClick(msg)
	case probeMsg:
		m, cmd = m.resolveProbe(msg)
	case refocusMsg:
		m.refocusLast(msg)
	case emitMsg:
		cmd = m.emit(msg)
	}
	m.focusOnInitial()
	return m, cmd
}

// Code returns the code currently assembled from the boxes.
func (m Model) Code() string { return m.sync.CurrentFilledCode() }

// Len returns the number of rendered boxes.
func (m Model) Len() int { return m.reg.Len() }

// Value returns the value displayed in box i.
func (m Model) Value(i int) string {
	b, ok := m.reg.BoxAt(i)
	if !ok {
		return ""
	}
	return b.Value()
}

// Flag returns the transient flag of box i.
func (m Model) Flag(i int) (boxes.Flag, bool) {
	b, ok := m.reg.BoxAt(i)
	if !ok {
		return boxes.FlagReady, false
	}
	return m.reg.Flag(b)
}

// FocusedIndex returns the focused box index, or -1.
func (m Model) FocusedIndex() int { return m.reg.IndexOf(m.focus.Active()) }

// Focused reports whether any box has focus.
func (m Model) Focused() bool { return m.FocusedIndex() >= 0 }

// Cell returns the handle of box i for platform bridges that report caret
// positions.
func (m Model) Cell(i int) (*boxes.Cell, bool) {
	if i < 0 || i >= len(m.cells) || i >= m.reg.Len() {
		return nil, false
	}
	return m.cells[i], true
}

// Focus focuses the configured initial box, or the first empty box.
func (m Model) Focus() Model {
	if m.Focused() {
		return m
	}
	if idx := m.cfg.InitialFocusIndex; idx != nil {
		if err := m.FocusOnField(*idx); err == nil {
			return m
		}
	}
	target := m.reg.Len() - 1
	for i, b := range m.reg.Boxes() {
		if b.Value() == "" {
			target = i
			break
		}
	}
	if b, ok := m.reg.BoxAt(target); ok {
		b.Focus()
	}
	return m
}

func (m Model) Blur() Model {
	m.focus.Clear()
	return m
}

// FocusOnField focuses box i. It fails for indices outside the code length.
func (m Model) FocusOnField(i int) error {
	if i < 0 || i >= m.cfg.CodeLength {
		return fmt.Errorf("%w: index %d, code length %d", ErrFieldOutOfRange, i, m.cfg.CodeLength)
	}
	b, ok := m.reg.BoxAt(i)
	if !ok {
		return fmt.Errorf("%w: box %d is not rendered", ErrFieldOutOfRange, i)
	}
	b.Focus()
	return nil
}

// IsInputElementEmptyAt reports whether box i is empty or not rendered.
func (m Model) IsInputElementEmptyAt(i int) bool {
	b, ok := m.reg.BoxAt(i)
	if !ok {
		return true
	}
	return b.Value() == ""
}

// Reset re-applies the configured code, refocuses the initial box and, when
// emit is set, schedules an emission.
func (m Model) Reset(emit bool) (Model, tea.Cmd) {
	m.sync.ApplyExternalCode(m.sess.code)
	if idx := m.cfg.InitialFocusIndex; idx != nil {
		if err := m.FocusOnField(*idx); err != nil {
			m.cfg.Logger.Debug("codeinput: reset focus", "err", err)
		}
	}
	if !emit {
		return m, nil
	}
	return m, m.scheduleEmission()
}

// Close tears the input down. Deferred work still in flight finds no boxes
// and does nothing.
func (m Model) Close() Model {
	m.focus.Clear()
	m.reg.Close()
	m.cells = nil
	return m
}

// SetOrigin records where the host draws the input so that absolute mouse
// coordinates can be mapped to boxes.
func (m Model) SetOrigin(x, y int) Model {
	m.originX, m.originY = x, y
	return m
}

// SetCode assigns the external code and re-synchronizes the boxes.
func (m Model) SetCode(code string) Model {
	m.sess.code = code
	m.cfg.Code = code
	applied := m.sync.ApplyExternalCode(code)
	m.cfg.Logger.Debug("codeinput: external code", "len", len(code), "applied", applied)
	return m
}

// SetCodeLength changes the number of boxes. Non-positive lengths are
// ignored.
func (m Model) SetCodeLength(n int) Model {
	if n <= 0 || n == m.cfg.CodeLength && len(m.cells) == n {
		return m
	}
	m.cfg.CodeLength = n
	m.renderCells()
	return m
}

// SetPolicy changes the accepted characters. Boxes holding values the new
// policy rejects are cleared.
func (m Model) SetPolicy(p boxes.Policy) Model {
	m.cfg.Policy = p
	if n := m.sync.SetPolicy(p); n > 0 {
		m.cfg.Logger.Debug("codeinput: policy change cleared boxes", "policy", m.sync.Policy(), "cleared", n)
	}
	return m
}

func (m Model) SetHidden(hidden bool) Model {
	m.cfg.Hidden = hidden
	return m
}

func (m Model) SetPrevFocusableAfterClear(v bool) Model {
	m.cfg.PrevFocusableAfterClear = v
	return m
}

func (m Model) SetFocusLastOnClickIfFilled(v bool) Model {
	m.cfg.FocusLastOnClickIfFilled = v
	return m
}

// SetInitialFocusIndex changes the initial focus box. Pass nil to disable.
// An initial focus that already happened is not repeated.
func (m Model) SetInitialFocusIndex(i *int) Model {
	if i != nil {
		i = FocusIndex(*i)
	}
	m.cfg.InitialFocusIndex = i
	return m
}

func (m Model) SetDisabled(disabled bool) Model {
	m.cfg.Disabled = disabled
	for _, c := range m.cells {
		c.SetDisabled(disabled)
	}
	return m
}

func (m Model) SetInputMode(mode string) Model {
	m.cfg.InputMode = mode
	return m
}

func (m Model) SetAutocapitalize(v string) Model {
	m.cfg.Autocapitalize = v
	return m
}

// Apply applies every field set in o through the matching setter, so code and
// length changes re-synchronize the boxes.
func (m Model) Apply(o Overrides) Model {
	if o.Policy != nil {
		m = m.SetPolicy(*o.Policy)
	}
	if o.CodeLength != nil {
		m = m.SetCodeLength(*o.CodeLength)
	}
	if o.Code != nil {
		m = m.SetCode(*o.Code)
	}
	if o.Hidden != nil {
		m = m.SetHidden(*o.Hidden)
	}
	if o.PrevFocusableAfterClear != nil {
		m = m.SetPrevFocusableAfterClear(*o.PrevFocusableAfterClear)
	}
	if o.FocusLastOnClickIfFilled != nil {
		m = m.SetFocusLastOnClickIfFilled(*o.FocusLastOnClickIfFilled)
	}
	if o.InitialFocusIndex != nil {
		m = m.SetInitialFocusIndex(o.InitialFocusIndex)
	}
	if o.Disabled != nil {
		m = m.SetDisabled(*o.Disabled)
	}
	if o.InputMode != nil {
		m = m.SetInputMode(*o.InputMode)
	}
	if o.Autocapitalize != nil {
		m = m.SetAutocapitalize(*o.Autocapitalize)
	}
	if o.EmitDelay != nil && *o.EmitDelay > 0 {
		m.cfg.EmitDelay = *o.EmitDelay
	}
	return m
}

// renderCells mounts or unmounts cells to match the code length and hands
// the live list to the registry.
func (m *Model) renderCells() {
	if m.reg.Closed() {
		return
	}
	n := m.cfg.CodeLength
	for len(m.cells) < n {
		c := boxes.NewCell(m.focus)
		c.SetDisabled(m.cfg.Disabled)
		m.cells = append(m.cells, c)
	}
	if len(m.cells) > n {
		for _, c := range m.cells[n:] {
			c.Blur()
		}
		m.cells = m.cells[:n:n]
	}

	handles := make([]boxes.Box, len(m.cells))
	for i, c := range m.cells {
		handles[i] = c
	}
	m.reg.Resize(handles)
}
