package result

import (
	"errors"
	"io"

	"github.com/bnema/mindscreen-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	panel  Panel
	styles styles
	output string
}

func newModel(panel Panel) model {
	return model{
		panel:  panel,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderPanel(m.panel, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out the result panel once and returns it as a string.
func Render(panel Panel) (string, error) {
	p := tea.NewProgram(
		newModel(panel),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// RenderResult is Render for a screening result that has not been split into
// narrative and interpretation yet.
func RenderResult(username string, result domain.ScreeningResult) (string, error) {
	return Render(Panel{
		Username:       username,
		Narrative:      result.Narrative(),
		Interpretation: result.Interpretation,
	})
}
