package ports

import (
	"context"

	"github.com/bnema/mindscreen-cli/internal/domain"
)

type AuthReply struct {
	Success bool
	Name    string
	ID      domain.UserID
	Message string
}

type SubmitReply struct {
	Success bool
	Message string
}

type PipelineReply struct {
	Success bool
	Result  domain.ScreeningResult
	Message string
}

type PipelineRequest struct {
	Identity domain.Identity
	RunID    string
}

// ScreeningAPI is the remote screening server. Transport failures wrap
// domain.ErrTransport and non-2xx answers return *domain.HTTPStatusError.
type ScreeningAPI interface {
	Login(ctx context.Context, id domain.UserID, name string) (AuthReply, error)
	Register(ctx context.Context, name string) (AuthReply, error)
	SubmitSurvey(ctx context.Context, response domain.SurveyResponse) (SubmitReply, error)
	RunPipeline(ctx context.Context, req PipelineRequest) (PipelineReply, error)
	RightToErase(ctx context.Context, id domain.UserID) error
}
