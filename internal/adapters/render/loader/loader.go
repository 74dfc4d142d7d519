package loader

import (
	"context"
	"io"
	"sync"

	"github.com/bnema/mindscreen-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Loader animates the screening run phases on a terminal. Its methods are safe
// to call from any goroutine; calls after Stop are ignored.
type Loader struct {
	program *tea.Program
	done    chan struct{}

	stopOnce sync.Once
	err      error
}

func Start(ctx context.Context, output io.Writer) *Loader {
	l := &Loader{
		program: tea.NewProgram(
			newModel(),
			tea.WithInput(nil),
			tea.WithOutput(output),
			tea.WithContext(ctx),
			tea.WithoutSignalHandler(),
		),
		done: make(chan struct{}),
	}

	go func() {
		defer close(l.done)
		_, err := l.program.Run()
		if err != nil && ctx.Err() == nil {
			l.err = err
		}
	}()

	return l
}

func (l *Loader) SetPhase(marker domain.LoaderMarker) {
	l.send(phaseMsg{marker: marker})
}

func (l *Loader) SetMessage(text string) {
	l.send(messageMsg{text: text})
}

func (l *Loader) HideMessage() {
	l.send(hideMessageMsg{})
}

// Stop clears the loader line and waits for the program to exit.
func (l *Loader) Stop() error {
	l.stopOnce.Do(func() {
		l.send(stopMsg{})
		<-l.done
	})
	return l.err
}

func (l *Loader) send(msg tea.Msg) {
	select {
	case <-l.done:
	default:
		l.program.Send(msg)
	}
}
