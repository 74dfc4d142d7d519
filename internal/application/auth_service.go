package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/bnema/mindscreen-cli/internal/ports"
	"go.uber.org/zap"
)

const LoginWarningDuration = 3 * time.Second

type AuthService struct {
	api   ports.ScreeningAPI
	store ports.SessionStore
	clock ports.Clock
	log   *zap.Logger

	mu           sync.Mutex
	warningTimer ports.Timer
}

func NewAuthService(api ports.ScreeningAPI, store ports.SessionStore, clock ports.Clock, log *zap.Logger) *AuthService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &AuthService{
		api:   api,
		store: store,
		clock: clock,
		log:   loggerOrNop(log),
	}
}

func (s *AuthService) Login(ctx context.Context, view ports.AuthView, id domain.UserID, name string) error {
	reply, err := s.api.Login(ctx, id, name)
	if err != nil {
		return reportRequestFailure(view, s.log, "login", err)
	}

	if !reply.Success {
		s.flashWarning(view)
		return fmt.Errorf("login as %q: %w", name, domain.ErrLoginRejected)
	}

	return s.startSession(ctx, view, reply)
}

func (s *AuthService) Register(ctx context.Context, view ports.View, name string) error {
	reply, err := s.api.Register(ctx, name)
	if err != nil {
		return reportRequestFailure(view, s.log, "register", err)
	}

	if !reply.Success {
		view.Alert(messageOrDefault(reply.Message, msgRegistrationFailed))
		return fmt.Errorf("register %q: %w", name, domain.ErrRegistrationRejected)
	}

	return s.startSession(ctx, view, reply)
}

func (s *AuthService) startSession(ctx context.Context, view ports.View, reply ports.AuthReply) error {
	if err := s.store.Set(ctx, domain.SessionKeyUsername, reply.Name); err != nil {
		view.Alert(msgUnexpectedError)
		return fmt.Errorf("store session %s: %w", domain.SessionKeyUsername, err)
	}
	if err := s.store.Set(ctx, domain.SessionKeyID, reply.ID.String()); err != nil {
		view.Alert(msgUnexpectedError)
		return fmt.Errorf("store session %s: %w", domain.SessionKeyID, err)
	}

	s.log.Info("session started", zap.String("name", reply.Name), zap.Int64("id", int64(reply.ID)))
	view.Navigate(domain.DestinationAccount)
	return nil
}

// flashWarning shows the inline warning and hides it once the window elapses.
// A new failure restarts the window.
func (s *AuthService) flashWarning(view ports.AuthView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.warningTimer != nil {
		s.warningTimer.Stop()
	}

	view.ShowWarning()
	s.warningTimer = s.clock.AfterFunc(LoginWarningDuration, view.HideWarning)
}
