package codeinput

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type recorder struct {
	changed   []string
	completed []string
}

func (r *recorder) config(cfg Config) Config {
	cfg.OnCodeChanged = func(code string) { r.changed = append(r.changed, code) }
	cfg.OnCodeCompleted = func(code string) { r.completed = append(r.completed, code) }
	return cfg
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.EmitDelay = time.Millisecond
	cfg.Style = Style{}
	return cfg
}

// run executes cmd and feeds every resulting message back into m until no
// work is left.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if cmds, ok := expand(msg); ok {
			queue = append(queue, cmds...)
			continue
		}
		var next tea.Cmd
		m, next = m.Update(msg)
		queue = append(queue, next)
	}
	return m
}

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// expand unwraps tea.Batch and tea.Sequence results into their commands,
// keeping their order. The sequence message type is unexported, so it is
// recognized by shape.
func expand(msg tea.Msg) ([]tea.Cmd, bool) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch, true
	}
	v := reflect.ValueOf(msg)
	if !v.IsValid() || v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i], _ = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}

// send delivers msg and runs all resulting work.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	m, cmd := m.Update(msg)
	return run(t, m, cmd)
}

func typeRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func values(m Model) []string {
	out := make([]string, m.Len())
	for i := range out {
		out[i] = m.Value(i)
	}
	return out
}

func mustFocus(t *testing.T, m Model, i int) Model {
	t.Helper()
	if err := m.FocusOnField(i); err != nil {
		t.Fatalf("focus %d: %v", i, err)
	}
	return m
}

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
