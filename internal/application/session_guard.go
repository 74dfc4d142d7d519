package application

import (
	"context"
	"fmt"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/bnema/mindscreen-cli/internal/ports"
	"go.uber.org/zap"
)

type SessionGuard struct {
	store ports.SessionStore
	log   *zap.Logger
}

func NewSessionGuard(store ports.SessionStore, log *zap.Logger) *SessionGuard {
	return &SessionGuard{store: store, log: loggerOrNop(log)}
}

// Guard loads the session identity for a protected screen. When either value
// is missing the session is wiped and the user is sent to the login screen.
func (g *SessionGuard) Guard(ctx context.Context, view ports.AccountView) (domain.Identity, error) {
	identity, present, err := g.load(ctx)
	if err != nil {
		return domain.Identity{}, err
	}

	if !present {
		g.log.Debug("session identity missing, redirecting to login")
		if err := g.store.Clear(ctx); err != nil {
			return domain.Identity{}, fmt.Errorf("clear session: %w", err)
		}
		view.Navigate(domain.DestinationLogin)
		return domain.Identity{}, domain.ErrSessionMissing
	}

	view.SetUsername(identity.Name)
	return identity, nil
}

// Home routes the entry screen: straight to the account when signed in.
func (g *SessionGuard) Home(ctx context.Context, view ports.View) error {
	_, present, err := g.load(ctx)
	if err != nil {
		return err
	}

	if present {
		view.Navigate(domain.DestinationAccount)
		return nil
	}

	view.Navigate(domain.DestinationLogin)
	return nil
}

func (g *SessionGuard) Logout(ctx context.Context, view ports.View) error {
	if err := g.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	view.Navigate(domain.DestinationHome)
	return nil
}

func (g *SessionGuard) load(ctx context.Context) (domain.Identity, bool, error) {
	name, nameOK, err := g.store.Get(ctx, domain.SessionKeyUsername)
	if err != nil {
		return domain.Identity{}, false, fmt.Errorf("read session %s: %w", domain.SessionKeyUsername, err)
	}

	rawID, idOK, err := g.store.Get(ctx, domain.SessionKeyID)
	if err != nil {
		return domain.Identity{}, false, fmt.Errorf("read session %s: %w", domain.SessionKeyID, err)
	}

	if domain.IsMissingSessionValue(name, nameOK) || domain.IsMissingSessionValue(rawID, idOK) {
		return domain.Identity{}, false, nil
	}

	id, err := domain.ParseUserID(rawID)
	if err != nil {
		g.log.Warn("stored session id is not numeric", zap.String("id", rawID))
		return domain.Identity{}, false, nil
	}

	return domain.Identity{Name: name, ID: id}, true, nil
}
