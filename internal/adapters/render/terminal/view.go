package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/mindscreen-cli/internal/adapters/render/loader"
	"github.com/bnema/mindscreen-cli/internal/adapters/render/result"
	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/bnema/mindscreen-cli/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

const loginWarning = "ID or name is wrong."

var navigationHints = map[domain.Destination]string{
	domain.DestinationHome:    "Run `ms home` to continue.",
	domain.DestinationLogin:   "Please log in: `ms login --id <id> --name <name>` or `ms register --name <name>`.",
	domain.DestinationAccount: "You are signed in. Start with `ms survey`, then `ms pipeline`.",
}

type Options struct {
	Out    io.Writer
	ErrOut io.Writer
	// SuppressResult leaves result output to the caller, e.g. for JSON.
	SuppressResult bool
	// Animate runs a bubbletea loader on ErrOut instead of printing phase lines.
	Animate bool
}

// View renders application feedback as terminal lines. It is safe for
// concurrent use; the login warning is hidden from a timer goroutine.
type View struct {
	mu sync.Mutex

	out            io.Writer
	errOut         io.Writer
	suppressResult bool
	animate        bool

	form        *domain.Form
	username    string
	warning     bool
	alerts      []string
	destination domain.Destination
	loader      *loader.Loader
	panelShown  bool
	rendered    string

	alertStyle   lipgloss.Style
	warningStyle lipgloss.Style
	hintStyle    lipgloss.Style
	pageStyle    lipgloss.Style
	phaseStyle   lipgloss.Style
}

var (
	_ ports.AuthView     = (*View)(nil)
	_ ports.SurveyView   = (*View)(nil)
	_ ports.PipelineView = (*View)(nil)
)

func New(opts Options) *View {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = out
	}

	return &View{
		out:            out,
		errOut:         errOut,
		suppressResult: opts.SuppressResult,
		animate:        opts.Animate,
		alertStyle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warningStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		hintStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		pageStyle:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		phaseStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// AttachForm lets ShowPage print page titles and positions.
func (v *View) AttachForm(form domain.Form) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form = &form
}

func (v *View) Alert(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.alerts = append(v.alerts, message)
	v.println(v.errOut, v.alertStyle.Render("! "+message))
}

func (v *View) Navigate(destination domain.Destination) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.destination = destination
	if hint, ok := navigationHints[destination]; ok {
		v.println(v.errOut, v.hintStyle.Render(hint))
	}
}

func (v *View) SetUsername(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.username = name
}

func (v *View) ShowWarning() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.warning = true
	v.println(v.errOut, v.warningStyle.Render(loginWarning))
}

func (v *View) HideWarning() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.warning = false
}

func (v *View) ShowPage(index int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.form == nil || !v.form.HasPage(index) {
		v.println(v.errOut, v.pageStyle.Render(fmt.Sprintf("Page %d", index+1)))
		return
	}

	title := fmt.Sprintf("Page %d of %d", index+1, len(v.form.Pages))
	if name := v.form.Pages[index].Title; name != "" {
		title += ": " + name
	}
	v.println(v.errOut, v.pageStyle.Render(title))
}

// StartLoader begins the animated loader when animation is enabled. StopLoader
// or ShowImagePanel ends it.
func (v *View) StartLoader(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.animate && v.loader == nil {
		v.loader = loader.Start(ctx, v.errOut)
	}
}

func (v *View) StopLoader() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stopLoader()
}

func (v *View) SetLoaderPhase(marker domain.LoaderMarker) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.loader != nil {
		v.loader.SetPhase(marker)
	}
}

func (v *View) SetLoadingMessage(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.loader != nil {
		v.loader.SetMessage(message)
		return
	}
	v.println(v.errOut, v.phaseStyle.Render(message))
}

func (v *View) HideLoadingMessage() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.loader != nil {
		v.loader.HideMessage()
	}
}

func (v *View) ShowImagePanel() {
	v.mu.Lock()
	defer v.mu.Unlock()

	_ = v.stopLoader()
	v.panelShown = true
}

func (v *View) ShowResult(narrative string, interpretation string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	rendered, err := result.Render(result.Panel{
		Username:       v.username,
		Narrative:      narrative,
		Interpretation: interpretation,
	})
	if err != nil {
		rendered = narrative + "\n\n" + interpretation
	}
	v.rendered = rendered

	if !v.suppressResult {
		v.println(v.out, rendered)
	}
}

func (v *View) Username() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.username
}

func (v *View) WarningVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.warning
}

func (v *View) Alerts() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.alerts...)
}

func (v *View) Destination() domain.Destination {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.destination
}

func (v *View) PanelShown() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.panelShown
}

// Rendered is the last result panel, kept even when output was suppressed.
func (v *View) Rendered() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rendered
}

func (v *View) stopLoader() error {
	if v.loader == nil {
		return nil
	}
	err := v.loader.Stop()
	v.loader = nil
	return err
}

func (v *View) println(w io.Writer, line string) {
	_, _ = fmt.Fprintln(w, line)
}
