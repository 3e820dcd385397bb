package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Styles ---
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

const chromeHeight = 2 // title line + footer line

// Model is a scrollable pager over a rendered report.
type Model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func New(title, content string) Model {
	return Model{title: title, content: content}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		height := msg.Height - chromeHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	footer := faintStyle.Render(fmt.Sprintf("%3.f%%  q to quit", m.viewport.ScrollPercent()*100))
	return fmt.Sprintf("%s\n%s\n%s", titleStyle.Render(m.title), m.viewport.View(), footer)
}

// Run shows content in the pager until the user quits.
func Run(title, content string) error {
	p := tea.NewProgram(New(title, content), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running pager: %w", err)
	}
	return nil
}
