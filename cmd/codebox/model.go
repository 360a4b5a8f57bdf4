package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codebox/codeinput"
)

// Rows above the input: title and a blank line.
const inputRow = 2

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

type reloadMsg struct {
	overrides codeinput.Overrides
}

type reloadErrMsg struct {
	err error
}

type model struct {
	input codeinput.Model
	help  help.Model

	code      string
	complete  bool
	submitted bool
	status    string
}

func newModel(cfg codeinput.Config) model {
	return model{
		input: codeinput.New(cfg).SetOrigin(0, inputRow),
		help:  help.New(),
	}
}

func (m model) Init() tea.Cmd { return m.input.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.complete {
				m.submitted = true
				return m, tea.Quit
			}
			return m, nil
		case "ctrl+r":
			var cmd tea.Cmd
			m.input, cmd = m.input.Reset(true)
			m.status = "reset"
			return m, cmd
		case "?":
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case codeinput.CodeChangedMsg:
		m.code = msg.Code
		m.complete = false
		m.status = ""
		return m, nil
	case codeinput.CodeCompletedMsg:
		m.code = msg.Code
		m.complete = true
		return m, nil
	case reloadMsg:
		m.input = m.input.Apply(msg.overrides)
		m.status = "settings reloaded"
		return m, nil
	case reloadErrMsg:
		m.status = msg.err.Error()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Enter code"))
	b.WriteString(strings.Repeat("\n", inputRow))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.complete:
		b.WriteString(doneStyle.Render("complete: " + m.code + " (enter to submit)"))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	default:
		b.WriteString(statusStyle.Render("code: " + m.code))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.input.Config().KeyMap))
	return b.String()
}
