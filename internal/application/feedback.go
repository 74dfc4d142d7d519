package application

import (
	"errors"
	"fmt"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/bnema/mindscreen-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	msgUnexpectedError    = "An unexpected error occurred. Please try again later."
	msgServerError        = "Server error. Please try again later."
	msgRegistrationFailed = "Registration failed. Please try again."
	msgSubmissionFailed   = "Survey submission failed. Please try again."
	msgPipelineFailed     = "Screening run failed. Please try again."
	msgEraseRequested     = "Your data deletion request has been sent."
)

// reportRequestFailure tells the user a request did not go through and
// returns the error annotated with the operation name.
func reportRequestFailure(view ports.View, log *zap.Logger, operation string, err error) error {
	var statusErr *domain.HTTPStatusError
	if errors.As(err, &statusErr) {
		log.Warn("server answered with error status",
			zap.String("operation", operation),
			zap.Int("status", statusErr.StatusCode),
		)
		view.Alert(msgServerError)
		return fmt.Errorf("%s: %w", operation, err)
	}

	log.Error("request failed", zap.String("operation", operation), zap.Error(err))
	view.Alert(msgUnexpectedError)
	return fmt.Errorf("%s: %w", operation, err)
}

func messageOrDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

func loggerOrNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
