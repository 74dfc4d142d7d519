package loader

import (
	"strings"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultLabel = "Running your screening..."

var stepNames = []string{"pre-processing", "inference", "interpretation"}

type phaseMsg struct {
	marker domain.LoaderMarker
}

type messageMsg struct {
	text string
}

type hideMessageMsg struct{}

type stopMsg struct{}

type model struct {
	spinner     spinner.Model
	marker      domain.LoaderMarker
	message     string
	hideMessage bool
	done        bool

	active lipgloss.Style
	idle   lipgloss.Style
	text   lipgloss.Style
}

func newModel() model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return model{
		spinner: s,
		marker:  domain.LoaderMarkerHidden,
		message: defaultLabel,
		active:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		idle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		text:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case phaseMsg:
		m.marker = msg.marker
		return m, nil
	case messageMsg:
		m.message = msg.text
		m.hideMessage = false
		return m, nil
	case hideMessageMsg:
		m.hideMessage = true
		return m, nil
	case stopMsg:
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	if m.done {
		return ""
	}

	line := m.spinner.View() + " " + m.steps()
	if !m.hideMessage && m.message != "" {
		line += " " + m.text.Render(m.message)
	}

	return line
}

// steps highlights at most one marker; hidden highlights none.
func (m model) steps() string {
	current := m.marker.Step()
	parts := make([]string, 0, len(stepNames))
	for i, name := range stepNames {
		if i+1 == current {
			parts = append(parts, m.active.Render("["+name+"]"))
			continue
		}
		parts = append(parts, m.idle.Render(name))
	}

	return strings.Join(parts, m.idle.Render(" > "))
}
