package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/bnema/mindscreen-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultDrainWindow = 2 * time.Second

type PipelineService struct {
	api         ports.ScreeningAPI
	stream      ports.StatusStream
	log         *zap.Logger
	drainWindow time.Duration
	newRunID    func() string
}

type PipelineOption func(*PipelineService)

// WithDrainWindow bounds how long status events are still applied after the
// pipeline response has arrived.
func WithDrainWindow(d time.Duration) PipelineOption {
	return func(s *PipelineService) {
		if d >= 0 {
			s.drainWindow = d
		}
	}
}

func WithRunIDGenerator(next func() string) PipelineOption {
	return func(s *PipelineService) {
		if next != nil {
			s.newRunID = next
		}
	}
}

func NewPipelineService(api ports.ScreeningAPI, stream ports.StatusStream, log *zap.Logger, opts ...PipelineOption) *PipelineService {
	s := &PipelineService{
		api:         api,
		stream:      stream,
		log:         loggerOrNop(log),
		drainWindow: DefaultDrainWindow,
		newRunID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type pipelineOutcome struct {
	reply ports.PipelineReply
	err   error
}

// Run starts a screening job and mirrors its status events on the view until
// the result is available. Every view call happens on the calling goroutine.
func (s *PipelineService) Run(ctx context.Context, view ports.PipelineView, identity domain.Identity) (domain.ScreeningResult, error) {
	runID := s.newRunID()
	log := s.log.With(zap.String("run_id", runID))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := s.stream.Subscribe(runCtx, runID)
	if err != nil {
		log.Warn("status channel unavailable", zap.Error(err))
		events = nil
	}

	outcomes := make(chan pipelineOutcome, 1)
	go func() {
		reply, err := s.api.RunPipeline(runCtx, ports.PipelineRequest{Identity: identity, RunID: runID})
		outcomes <- pipelineOutcome{reply: reply, err: err}
	}()

	done := false
	var outcome pipelineOutcome
	for waiting := true; waiting; {
		select {
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			done = s.apply(log, view, runID, event) || done
		case outcome = <-outcomes:
			waiting = false
		case <-ctx.Done():
			return domain.ScreeningResult{}, ctx.Err()
		}
	}

	if !done && events != nil {
		s.drain(ctx, log, view, runID, events)
	}

	return s.finish(log, view, outcome)
}

func (s *PipelineService) drain(ctx context.Context, log *zap.Logger, view ports.PipelineView, runID string, events <-chan domain.StatusEvent) {
	timer := time.NewTimer(s.drainWindow)
	defer timer.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if s.apply(log, view, runID, event) {
				return
			}
		case <-timer.C:
			log.Debug("stopped waiting for status events")
			return
		case <-ctx.Done():
			return
		}
	}
}

// apply mirrors one status event on the loader and reports whether it was
// the final one. Order is not enforced.
func (s *PipelineService) apply(log *zap.Logger, view ports.PipelineView, runID string, event domain.StatusEvent) bool {
	if !event.BelongsTo(runID) {
		log.Debug("dropping status event from another run",
			zap.String("event", event.Phase.EventName()),
			zap.String("event_run_id", event.RunID),
		)
		return false
	}

	if !event.Success {
		log.Warn(event.Phase.FailureDiagnostic(), zap.String("event", event.Phase.EventName()))
		return false
	}

	view.SetLoaderPhase(event.Phase.Marker())
	view.SetLoadingMessage(event.Phase.Message())
	return event.Phase == domain.PhaseDone
}

func (s *PipelineService) finish(log *zap.Logger, view ports.PipelineView, outcome pipelineOutcome) (domain.ScreeningResult, error) {
	if outcome.err != nil {
		return domain.ScreeningResult{}, reportRequestFailure(view, log, "run pipeline", outcome.err)
	}

	if !outcome.reply.Success {
		view.Alert(messageOrDefault(outcome.reply.Message, msgPipelineFailed))
		return domain.ScreeningResult{}, fmt.Errorf("run pipeline: %w", domain.ErrPipelineRejected)
	}

	result := outcome.reply.Result
	view.HideLoadingMessage()
	view.ShowImagePanel()
	view.ShowResult(result.Narrative(), result.Interpretation)

	return result, nil
}
