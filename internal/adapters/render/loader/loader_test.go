package loader

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()

	next, _ := m.Update(msg)
	updated, ok := next.(model)
	require.True(t, ok)
	return updated
}

func TestModelHighlightsCurrentPhase(t *testing.T) {
	m := newModel()
	assert.Contains(t, m.View(), defaultLabel)

	m = update(t, m, phaseMsg{marker: domain.LoaderMarkerInference})
	m = update(t, m, messageMsg{text: "Inferencing on your data."})

	view := m.View()
	assert.Contains(t, view, "[inference]")
	assert.NotContains(t, view, "[pre-processing]")
	assert.Contains(t, view, "Inferencing on your data.")
}

func TestModelHiddenMarkerHighlightsNothing(t *testing.T) {
	m := update(t, newModel(), phaseMsg{marker: domain.LoaderMarkerInterpretation})
	m = update(t, m, phaseMsg{marker: domain.LoaderMarkerHidden})

	assert.NotContains(t, m.View(), "[")
}

func TestModelHideMessage(t *testing.T) {
	m := update(t, newModel(), messageMsg{text: "All done."})
	m = update(t, m, hideMessageMsg{})

	assert.NotContains(t, m.View(), "All done.")
}

func TestModelStopQuits(t *testing.T) {
	m := newModel()
	next, cmd := m.Update(stopMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}

func TestModelAdvancesSpinner(t *testing.T) {
	m := newModel()
	_, cmd := m.Update(spinner.TickMsg{ID: m.spinner.ID()})
	assert.NotNil(t, cmd)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestLoaderRunsUntilStopped(t *testing.T) {
	out := &syncBuffer{}
	l := Start(context.Background(), out)

	l.SetPhase(domain.LoaderMarkerPreprocessing)
	l.SetMessage("Pre-Processing your data.")
	require.NoError(t, l.Stop())
	require.NoError(t, l.Stop())

	l.SetMessage("ignored after stop")
	assert.NotContains(t, out.String(), "ignored after stop")
}
