package result

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const panelWidth = 72

type Panel struct {
	Username       string
	Narrative      string
	Interpretation string
}

func renderPanel(panel Panel, s styles) string {
	lines := []string{s.title.Render("Screening result")}
	if panel.Username != "" {
		lines = append(lines, s.header.Render(fmt.Sprintf("for: %s", panel.Username)))
	}

	body := []string{s.narrative.Width(panelWidth).Render(panel.Narrative)}

	interpretation := strings.TrimSpace(panel.Interpretation)
	if interpretation == "" {
		body = append(body, s.section.Render(s.empty.Render("No interpretation was returned.")))
	} else {
		body = append(body, s.section.Render(s.interpretation.Width(panelWidth).Render(interpretation)))
	}

	lines = append(lines,
		s.panel.Render(lipgloss.JoinVertical(lipgloss.Left, body...)),
		s.footer.Render("This screening is not a diagnosis."),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
