package ports

import (
	"context"

	"github.com/bnema/mindscreen-cli/internal/domain"
)

// StatusStream delivers job status events pushed by the server. The returned
// channel is closed when ctx ends or the connection goes away.
type StatusStream interface {
	Subscribe(ctx context.Context, runID string) (<-chan domain.StatusEvent, error)
}
