package finsite

import (
	"context"
	"fmt"
)

// FacetService manages per-visitor facet views.
type FacetService struct {
	svc facetUseCase
	obs *observer
}

// Table returns the facet table with every dimension in display order.
func (s *FacetService) Table() FacetTable {
	return s.svc.Table()
}

// Open starts a facet view with nothing selected.
func (s *FacetService) Open(ctx context.Context) (v FacetView, err error) {
	done := s.obs.track("facets_open")
	defer func() { done(err) }()

	v, err = s.svc.Open(ctx)
	if err != nil {
		return FacetView{}, fmt.Errorf("open facet view: %w", err)
	}
	return v, nil
}

// Get returns the current selection of a view.
func (s *FacetService) Get(ctx context.Context, id string) (v FacetView, err error) {
	done := s.obs.track("facets_get")
	defer func() { done(err) }()

	v, err = s.svc.Get(ctx, id)
	if err != nil {
		return FacetView{}, fmt.Errorf("get facet view %q: %w", id, err)
	}
	return v, nil
}

// Toggle flips one facet in a dimension.
func (s *FacetService) Toggle(ctx context.Context, id string, d FacetDimension, facetID string) (v FacetView, err error) {
	done := s.obs.track("facets_toggle")
	defer func() { done(err) }()

	v, err = s.svc.Toggle(ctx, id, d, facetID)
	if err != nil {
		return FacetView{}, fmt.Errorf("toggle facet %s/%s: %w", d, facetID, err)
	}
	return v, nil
}

// Clear drops every selection in the view.
func (s *FacetService) Clear(ctx context.Context, id string) (v FacetView, err error) {
	done := s.obs.track("facets_clear")
	defer func() { done(err) }()

	v, err = s.svc.Clear(ctx, id)
	if err != nil {
		return FacetView{}, fmt.Errorf("clear facet view %q: %w", id, err)
	}
	return v, nil
}

// Close discards the view.
func (s *FacetService) Close(ctx context.Context, id string) (err error) {
	done := s.obs.track("facets_close")
	defer func() { done(err) }()

	if err = s.svc.Close(ctx, id); err != nil {
		return fmt.Errorf("close facet view %q: %w", id, err)
	}
	return nil
}
