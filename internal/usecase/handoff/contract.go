package handoff

import "context"

// Repository stores one pending query per key.
type Repository interface {
	PutHandoff(ctx context.Context, key, query string) error
	TakeHandoff(ctx context.Context, key string) (string, bool, error)
}
