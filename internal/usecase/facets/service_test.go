package facets

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/kailas-cloud/finsite/internal/domain"
	"github.com/kailas-cloud/finsite/internal/domain/facet"
)

// --- Mocks ---

type mockRepo struct {
	mu      sync.Mutex
	views   map[string]facet.Selection
	saveErr error
	delErr  error
}

func newMockRepo() *mockRepo {
	return &mockRepo{views: map[string]facet.Selection{}}
}

func (m *mockRepo) GetView(_ context.Context, id string) (facet.Selection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sel, ok := m.views[id]
	if !ok {
		return facet.Selection{}, domain.ErrSessionNotFound
	}
	// copy, like a real store round trip
	return facet.Reconstruct(sel.Snapshot()), nil
}

func (m *mockRepo) SaveView(_ context.Context, id string, sel facet.Selection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.views[id] = facet.Reconstruct(sel.Snapshot())
	return nil
}

func (m *mockRepo) DeleteView(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.views, id)
	return nil
}

type mockTables struct{}

func (mockTables) Facets() facet.Table {
	return facet.Table{
		facet.Industries:   {{ID: "banking", Name: "Banking"}, {ID: "insurance", Name: "Insurance"}},
		facet.ProblemAreas: {{ID: "risk", Name: "Risk Management"}},
	}
}

// --- Tests ---

func newService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return New(repo, mockTables{}).WithIDGenerator(func() string { return "view-1" }), repo
}

func TestOpen(t *testing.T) {
	svc, repo := newService()
	sum, err := svc.Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if sum.ID != "view-1" || sum.ActiveCount != 0 || len(sum.ActiveLabels) != 0 {
		t.Errorf("Open = %+v", sum)
	}
	if _, ok := repo.views["view-1"]; !ok {
		t.Error("view not stored")
	}
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	_, _ = svc.Open(ctx)

	sum, err := svc.Toggle(ctx, "view-1", facet.ProblemAreas, "risk")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	sum, _ = svc.Toggle(ctx, "view-1", facet.Industries, "banking")
	sum, _ = svc.Toggle(ctx, "view-1", facet.Industries, "not-in-table")

	if sum.ActiveCount != 3 {
		t.Errorf("ActiveCount = %d, want 3", sum.ActiveCount)
	}
	want := []string{"Banking", "Risk Management"}
	if !reflect.DeepEqual(sum.ActiveLabels, want) {
		t.Errorf("ActiveLabels = %v, want %v", sum.ActiveLabels, want)
	}

	sum, _ = svc.Toggle(ctx, "view-1", facet.Industries, "banking")
	if sum.ActiveCount != 2 {
		t.Errorf("after second toggle ActiveCount = %d", sum.ActiveCount)
	}
}

func TestToggle_Errors(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService()
	_, _ = svc.Open(ctx)

	if _, err := svc.Toggle(ctx, "view-1", "colors", "red"); !errors.Is(err, domain.ErrUnknownDimension) {
		t.Errorf("unknown dimension = %v", err)
	}
	if _, err := svc.Toggle(ctx, "view-1", facet.Industries, " "); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("blank id = %v", err)
	}
	if _, err := svc.Toggle(ctx, "missing", facet.Industries, "banking"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("missing view = %v", err)
	}

	repo.saveErr = errors.New("store down")
	if _, err := svc.Toggle(ctx, "view-1", facet.Industries, "banking"); err == nil {
		t.Error("expected save error")
	}
}

func TestToggle_ConcurrentOnOneView(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	if _, err := svc.Open(ctx); err != nil {
		t.Fatalf("Open: %v", err)
	}

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Toggle(ctx, "view-1", facet.Industries, fmt.Sprintf("f-%d", i)); err != nil {
				t.Errorf("Toggle: %v", err)
			}
		}()
	}
	wg.Wait()

	sum, err := svc.Get(ctx, "view-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sum.ActiveCount != n {
		t.Errorf("ActiveCount = %d, want %d (lost updates)", sum.ActiveCount, n)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	_, _ = svc.Open(ctx)
	_, _ = svc.Toggle(ctx, "view-1", facet.Industries, "banking")
	_, _ = svc.Toggle(ctx, "view-1", facet.ProblemAreas, "risk")

	sum, err := svc.Clear(ctx, "view-1")
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if sum.ActiveCount != 0 || len(sum.Selected) != 0 {
		t.Errorf("Clear = %+v", sum)
	}

	got, _ := svc.Get(ctx, "view-1")
	if got.ActiveCount != 0 {
		t.Errorf("Get after Clear = %+v", got)
	}
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	_, _ = svc.Open(ctx)

	if err := svc.Close(ctx, "view-1"); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := svc.Get(ctx, "view-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Get after Close = %v", err)
	}
	if err := svc.Close(ctx, "view-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("second Close = %v", err)
	}
}

func TestTable(t *testing.T) {
	svc, _ := newService()
	if len(svc.Table()[facet.Industries]) != 2 {
		t.Errorf("Table() = %v", svc.Table())
	}
}
