package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/bnema/mindscreen-cli/internal/ports"
	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

type recordingView struct {
	mu             sync.Mutex
	alerts         []string
	destinations   []domain.Destination
	username       string
	warningVisible bool
	warningShown   int
	pages          []int
	markers        []domain.LoaderMarker
	messages       []string
	loadingHidden  bool
	imageShown     bool
	resultPanel    string
}

var (
	_ ports.AuthView     = (*recordingView)(nil)
	_ ports.SurveyView   = (*recordingView)(nil)
	_ ports.PipelineView = (*recordingView)(nil)
)

func (v *recordingView) Alert(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.alerts = append(v.alerts, message)
}

func (v *recordingView) Navigate(destination domain.Destination) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.destinations = append(v.destinations, destination)
}

func (v *recordingView) SetUsername(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.username = name
}

func (v *recordingView) ShowWarning() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.warningVisible = true
	v.warningShown++
}

func (v *recordingView) HideWarning() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.warningVisible = false
}

func (v *recordingView) ShowPage(index int) {
	v.pages = append(v.pages, index)
}

func (v *recordingView) SetLoaderPhase(marker domain.LoaderMarker) {
	v.markers = append(v.markers, marker)
}

func (v *recordingView) SetLoadingMessage(message string) {
	v.messages = append(v.messages, message)
}

func (v *recordingView) HideLoadingMessage() {
	v.loadingHidden = true
}

func (v *recordingView) ShowImagePanel() {
	v.imageShown = true
}

func (v *recordingView) ShowResult(narrative string, interpretation string) {
	v.resultPanel = narrative + interpretation
}

func (v *recordingView) visiblePage() int {
	if len(v.pages) == 0 {
		return -1
	}
	return v.pages[len(v.pages)-1]
}

type fakeTimer struct {
	fireAt  time.Time
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

type fakeClock struct {
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) ports.Timer {
	timer := &fakeTimer{fireAt: c.now.Add(d), fn: f}
	c.timers = append(c.timers, timer)
	return timer
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
	for _, timer := range c.timers {
		if timer.stopped || timer.fired || timer.fireAt.After(c.now) {
			continue
		}
		timer.fired = true
		timer.fn()
	}
}
