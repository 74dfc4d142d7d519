package ports

import "context"

// SessionStore is client-local key-value storage scoped to one user session.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Clear(ctx context.Context) error
}
