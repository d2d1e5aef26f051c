// Package handoff passes a pending search query from one page to another.
// A value is read at most once.
package handoff

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/finsite/internal/domain"
)

// Service is the one-shot pending query handoff.
type Service struct {
	repo Repository
}

// New creates a handoff service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Put stores query under key, replacing any pending value.
func (s *Service) Put(ctx context.Context, key, query string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: handoff key is required", domain.ErrValidation)
	}
	return s.repo.PutHandoff(ctx, key, query)
}

// Take returns the pending query and clears it. ok is false when nothing was pending.
func (s *Service) Take(ctx context.Context, key string) (query string, ok bool, err error) {
	if strings.TrimSpace(key) == "" {
		return "", false, fmt.Errorf("%w: handoff key is required", domain.ErrValidation)
	}
	return s.repo.TakeHandoff(ctx, key)
}
