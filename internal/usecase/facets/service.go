package facets

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/finsite/internal/domain"
	"github.com/kailas-cloud/finsite/internal/domain/facet"
	"github.com/kailas-cloud/finsite/internal/keylock"
	"github.com/kailas-cloud/finsite/internal/logger"
)

// Summary is the state of one view as rendered by the host.
type Summary struct {
	ID           string
	Selected     map[facet.Dimension][]string
	ActiveCount  int
	ActiveLabels []string
}

// Service manages one facet selection per search-results view.
// Selections are tracked and reported; they do not filter search results.
type Service struct {
	repo   Repository
	tables Tables
	newID  func() string
	locks  keylock.Locks
}

// New creates a facets service.
func New(repo Repository, tables Tables) *Service {
	return &Service{repo: repo, tables: tables, newID: uuid.NewString}
}

// WithIDGenerator overrides view id generation.
func (s *Service) WithIDGenerator(fn func() string) *Service {
	s.newID = fn
	return s
}

// Table returns the static dimension tables.
func (s *Service) Table() facet.Table {
	return s.tables.Facets()
}

// Open creates a view with an empty selection.
func (s *Service) Open(ctx context.Context) (Summary, error) {
	id := s.newID()
	sel := facet.NewSelection()
	if err := s.repo.SaveView(ctx, id, sel); err != nil {
		return Summary{}, fmt.Errorf("open facet view: %w", err)
	}
	logger.FromContext(ctx).Debug("Facet view opened", zap.String("view_id", id))
	return s.summarize(id, sel), nil
}

// Get returns the current state of a view.
func (s *Service) Get(ctx context.Context, id string) (Summary, error) {
	sel, err := s.repo.GetView(ctx, id)
	if err != nil {
		return Summary{}, err
	}
	return s.summarize(id, sel), nil
}

// Toggle adds the facet id to the dimension's set if absent, removes it otherwise.
func (s *Service) Toggle(ctx context.Context, id string, d facet.Dimension, facetID string) (Summary, error) {
	if !d.IsValid() {
		return Summary{}, fmt.Errorf("%w: %q", domain.ErrUnknownDimension, d)
	}
	if strings.TrimSpace(facetID) == "" {
		return Summary{}, fmt.Errorf("%w: facet id is required", domain.ErrValidation)
	}

	var selected bool
	sel, err := s.mutate(ctx, id, func(sel *facet.Selection) {
		selected = sel.Toggle(d, facetID)
	})
	if err != nil {
		return Summary{}, err
	}

	logger.FromContext(ctx).Debug("Facet toggled",
		zap.String("view_id", id),
		zap.String("dimension", string(d)),
		zap.String("facet_id", facetID),
		zap.Bool("selected", selected),
	)
	return s.summarize(id, sel), nil
}

// Clear empties every dimension of a view.
func (s *Service) Clear(ctx context.Context, id string) (Summary, error) {
	sel, err := s.mutate(ctx, id, func(sel *facet.Selection) { sel.Clear() })
	if err != nil {
		return Summary{}, err
	}
	return s.summarize(id, sel), nil
}

// Close destroys a view.
func (s *Service) Close(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	if _, err := s.repo.GetView(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteView(ctx, id); err != nil {
		return fmt.Errorf("close facet view: %w", err)
	}
	return nil
}

// mutate loads a view, applies fn and saves it while holding the view's lock.
func (s *Service) mutate(ctx context.Context, id string, fn func(*facet.Selection)) (facet.Selection, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	sel, err := s.repo.GetView(ctx, id)
	if err != nil {
		return facet.Selection{}, err
	}
	fn(&sel)
	if err := s.repo.SaveView(ctx, id, sel); err != nil {
		return facet.Selection{}, fmt.Errorf("save facet view: %w", err)
	}
	return sel, nil
}

func (s *Service) summarize(id string, sel facet.Selection) Summary {
	return Summary{
		ID:           id,
		Selected:     sel.Snapshot(),
		ActiveCount:  sel.ActiveCount(),
		ActiveLabels: sel.ActiveLabels(s.tables.Facets()),
	}
}
