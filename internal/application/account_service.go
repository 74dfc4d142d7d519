package application

import (
	"context"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/bnema/mindscreen-cli/internal/ports"
	"go.uber.org/zap"
)

type AccountService struct {
	api ports.ScreeningAPI
	log *zap.Logger
}

func NewAccountService(api ports.ScreeningAPI, log *zap.Logger) *AccountService {
	return &AccountService{api: api, log: loggerOrNop(log)}
}

// Erase asks the server to delete everything stored for the user. The reply
// body is not inspected.
func (s *AccountService) Erase(ctx context.Context, view ports.View, identity domain.Identity) error {
	if err := s.api.RightToErase(ctx, identity.ID); err != nil {
		return reportRequestFailure(view, s.log, "right to erase", err)
	}

	s.log.Info("erase requested", zap.Int64("id", int64(identity.ID)))
	view.Alert(msgEraseRequested)
	return nil
}
