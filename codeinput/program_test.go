package codeinput

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// orderHost embeds the input in a real program and records outbound messages.
type orderHost struct {
	input Model
	order []string
}

func (h orderHost) Init() tea.Cmd {
	return func() tea.Msg { return PasteEvent{Box: 0, Text: "1234"} }
}

func (h orderHost) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CodeChangedMsg:
		h.order = append(h.order, "changed:"+msg.Code)
	case CodeCompletedMsg:
		h.order = append(h.order, "completed:"+msg.Code)
	}
	if len(h.order) == 2 {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

func (h orderHost) View() string { return "" }

func TestProgram_ChangedArrivesBeforeCompleted(t *testing.T) {
	for i := 0; i < 20; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		p := tea.NewProgram(orderHost{input: New(testConfig())},
			tea.WithContext(ctx),
			tea.WithInput(nil),
			tea.WithOutput(io.Discard),
			tea.WithoutRenderer(),
		)
		final, err := p.Run()
		cancel()
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		got := fmt.Sprint(final.(orderHost).order)
		if want := "[changed:1234 completed:1234]"; got != want {
			t.Fatalf("run %d: delivery order: got %s, want %s", i, got, want)
		}
	}
}
