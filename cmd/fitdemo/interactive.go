package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/textfit/textfit/tui"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// chromeRows is the vertical space the header, status line, and help
// line take away from the fitted area.
const chromeRows = 4

type demoState int

const (
	stateView demoState = iota
	stateEdit
)

type demoModel struct {
	fitted *tui.Model
	input  textinput.Model
	state  demoState
	width  int
	height int
}

func newDemoModel(cfg config) *demoModel {
	opts := []tui.Option{
		tui.WithMode(cfg.fitMode()),
		tui.WithMinSize(cfg.MinSize),
		tui.WithMaxSize(cfg.MaxSize),
		tui.WithStyle(lipgloss.NewStyle().Padding(cfg.Padding)),
	}
	if cfg.CheckHeight {
		opts = append(opts, tui.WithHeightCheck())
	}

	ti := textinput.New()
	ti.Prompt = "text: "
	ti.Width = 60

	return &demoModel{
		fitted: tui.New(cfg.Text, opts...),
		input:  ti,
	}
}

func (m *demoModel) Init() tea.Cmd {
	return m.fitted.Init()
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		inner := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - chromeRows}
		_, cmd := m.fitted.Update(inner)
		return m, cmd

	case tea.KeyMsg:
		if m.state == stateEdit {
			switch msg.String() {
			case "enter":
				m.state = stateView
				m.input.Blur()
				return m, m.fitted.SetContent(m.input.Value())
			case "esc":
				m.state = stateView
				m.input.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.fitted.Close()
			return m, tea.Quit
		case "e":
			m.state = stateEdit
			m.input.SetValue(m.fitted.Content())
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil
	}

	_, cmd := m.fitted.Update(msg)
	return m, cmd
}

func (m *demoModel) View() string {
	if m.width <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("textfit demo"))
	b.WriteString("\n")
	b.WriteString(m.fitted.View())
	b.WriteString("\n")

	if size, ready := m.fitted.Size(); ready {
		b.WriteString(statusStyle.Render(fmt.Sprintf("scale %d", size)))
	} else {
		b.WriteString(statusStyle.Render("fitting..."))
	}
	b.WriteString("\n")

	if m.state == stateEdit {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(helpStyle.Render("e edit text • resize to refit • q quit"))
	}
	return b.String()
}

func runInteractive(cfg config) error {
	p := tea.NewProgram(newDemoModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
