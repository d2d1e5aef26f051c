package chi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/finsite/internal/catalog"
	"github.com/kailas-cloud/finsite/internal/db/memory"
	sessionrepo "github.com/kailas-cloud/finsite/internal/repository/session"
	dialogueuc "github.com/kailas-cloud/finsite/internal/usecase/dialogue"
	facetsuc "github.com/kailas-cloud/finsite/internal/usecase/facets"
	handoffuc "github.com/kailas-cloud/finsite/internal/usecase/handoff"
	healthuc "github.com/kailas-cloud/finsite/internal/usecase/health"
	recommenduc "github.com/kailas-cloud/finsite/internal/usecase/recommend"
	searchuc "github.com/kailas-cloud/finsite/internal/usecase/search"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	store := memory.NewStore()
	repo := sessionrepo.New(store, "test", time.Hour)

	srv := NewServer(
		searchuc.New(c, nil, 0),
		facetsuc.New(repo, c),
		recommenduc.NewResolver(c.Taxonomy()),
		handoffuc.New(repo),
		dialogueuc.New(repo, c, nil, dialogueuc.Config{}),
		healthuc.New(store, c),
		zap.NewNop(),
	)
	r := chi.NewRouter()
	srv.Mount(r)
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader // nil => Body=http.NoBody, ContentLength=0 (http.NoBody yields -1 before Go 1.23)
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, rd))
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func TestHealthCheck(t *testing.T) {
	h := newTestRouter(t)
	rr := do(t, h, http.MethodGet, "/health", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	resp := decode[HealthResponse](t, rr)
	if resp.Status != "ok" || resp.Checks["session_store"] != "ok" || resp.Checks["catalog"] != "ok" {
		t.Errorf("health = %+v", resp)
	}
}

func TestSearch(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/api/v1/search?q=surveillance", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	resp := decode[SearchResponse](t, rr)
	if resp.ProductsFallback || len(resp.Products) == 0 {
		t.Errorf("expected matching products, got %+v", resp.Products)
	}

	rr = do(t, h, http.MethodGet, "/api/v1/search?q=zzzzqqq", nil)
	resp = decode[SearchResponse](t, rr)
	if !resp.ProductsFallback || len(resp.Products) != 6 {
		t.Errorf("expected fallback to all 6 products, got fallback=%v n=%d", resp.ProductsFallback, len(resp.Products))
	}
}

func TestSuggest(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/api/v1/suggest?q=surveillance&limit=1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if resp := decode[SuggestResponse](t, rr); len(resp.Suggestions) != 1 {
		t.Errorf("suggestions = %d, want 1", len(resp.Suggestions))
	}

	rr = do(t, h, http.MethodGet, "/api/v1/suggest?q=x&limit=abc", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad limit: status = %d", rr.Code)
	}
}

func TestDiscover(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/api/v1/discover?tab=market", nil)
	resp := decode[DiscoverResponse](t, rr)
	if len(resp.News) != 4 || len(resp.Tickers) != 6 {
		t.Errorf("market tab = %+v", resp)
	}

	if rr := do(t, h, http.MethodGet, "/api/v1/discover?tab=weather", nil); rr.Code != http.StatusBadRequest {
		t.Errorf("unknown tab: status = %d", rr.Code)
	}
	rr = do(t, h, http.MethodGet, "/api/v1/discover", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("missing tab: status = %d", rr.Code)
	}
	if resp := decode[DiscoverResponse](t, rr); resp.Tab != "solutions" || len(resp.Categories) != 4 {
		t.Errorf("default tab = %+v", resp)
	}
}

func TestFacetViews(t *testing.T) {
	h := newTestRouter(t)

	table := decode[FacetTableResponse](t, do(t, h, http.MethodGet, "/api/v1/facets", nil))
	if len(table.Dimensions) != 4 || table.Dimensions[0].Dimension != "industries" {
		t.Fatalf("facets = %+v", table)
	}
	entry := table.Dimensions[0].Entries[0]

	rr := do(t, h, http.MethodPost, "/api/v1/facet-views", nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("open: status = %d", rr.Code)
	}
	view := decode[FacetViewResponse](t, rr)

	base := "/api/v1/facet-views/" + view.ID
	view = decode[FacetViewResponse](t, do(t, h, http.MethodPost, base+"/toggle",
		ToggleFacetRequest{Dimension: "industries", ID: entry.ID}))
	if view.ActiveCount != 1 || view.ActiveLabels[0] != entry.Name {
		t.Errorf("after toggle = %+v", view)
	}

	rr = do(t, h, http.MethodPost, base+"/toggle", ToggleFacetRequest{Dimension: "colors", ID: "red"})
	if rr.Code != http.StatusBadRequest || decode[ErrorResponse](t, rr).Code != ErrorCodeUnknownDimension {
		t.Errorf("unknown dimension: status = %d", rr.Code)
	}

	view = decode[FacetViewResponse](t, do(t, h, http.MethodDelete, base+"/selections", nil))
	if view.ActiveCount != 0 {
		t.Errorf("after clear = %+v", view)
	}

	if rr := do(t, h, http.MethodDelete, base, nil); rr.Code != http.StatusNoContent {
		t.Errorf("close: status = %d", rr.Code)
	}
	if rr := do(t, h, http.MethodGet, base, nil); rr.Code != http.StatusNotFound {
		t.Errorf("get after close: status = %d", rr.Code)
	}
}

func TestRecommendations(t *testing.T) {
	h := newTestRouter(t)

	resp := decode[RecommendationsResponse](t, do(t, h, http.MethodGet, "/api/v1/recommendations?page=board-portal", nil))
	if resp.Fallback || len(resp.Related) != 6 || resp.Related[0].ID != "entity-management" {
		t.Errorf("board-portal = %+v", resp)
	}

	resp = decode[RecommendationsResponse](t, do(t, h, http.MethodGet, "/api/v1/recommendations?page=nowhere", nil))
	if !resp.Fallback {
		t.Error("unknown page must fall back")
	}
}

func TestDestination(t *testing.T) {
	h := newTestRouter(t)

	resp := decode[DestinationResponse](t, do(t, h, http.MethodGet,
		"/api/v1/destinations?href=%2Fsearch%3Fq%3Dboard%2520portal&id=x", nil))
	if resp.Kind != "search" || resp.Query != "board portal" {
		t.Errorf("search destination = %+v", resp)
	}
}

func TestHandoff(t *testing.T) {
	h := newTestRouter(t)

	if rr := do(t, h, http.MethodPut, "/api/v1/handoff/tab-1", HandoffRequest{Query: "esg"}); rr.Code != http.StatusNoContent {
		t.Fatalf("put: status = %d", rr.Code)
	}
	resp := decode[HandoffResponse](t, do(t, h, http.MethodDelete, "/api/v1/handoff/tab-1", nil))
	if !resp.Found || resp.Query != "esg" {
		t.Errorf("take = %+v", resp)
	}
	resp = decode[HandoffResponse](t, do(t, h, http.MethodDelete, "/api/v1/handoff/tab-1", nil))
	if resp.Found || resp.Query != "" {
		t.Errorf("second take = %+v", resp)
	}
}

func TestConversationFlow(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/api/v1/conversations", nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("open: status = %d", rr.Code)
	}
	conv := decode[ConversationResponse](t, rr)
	if conv.Stage != "welcome" || len(conv.Messages) != 1 {
		t.Fatalf("open = %+v", conv)
	}
	base := "/api/v1/conversations/" + conv.ID

	rr = do(t, h, http.MethodPost, base+"/role", RoleRequest{Role: "Astronaut"})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("unknown role: status = %d", rr.Code)
	}

	conv = decode[ConversationResponse](t, do(t, h, http.MethodPost, base+"/role", RoleRequest{Role: "Board Director"}))
	if conv.Stage != "problem_prompt" {
		t.Errorf("after role = %s", conv.Stage)
	}

	conv = decode[ConversationResponse](t, do(t, h, http.MethodPost, base+"/problem",
		ProblemRequest{Problem: "Board governance inefficiencies"}))
	if conv.Stage != "conversation" || conv.Recommended[0].ID != "boardvantage" {
		t.Errorf("after problem = %+v", conv)
	}

	rr = do(t, h, http.MethodPost, base+"/role", RoleRequest{Role: "Board Director"})
	if rr.Code != http.StatusConflict {
		t.Errorf("role after problem: status = %d", rr.Code)
	}

	conv = decode[ConversationResponse](t, do(t, h, http.MethodPost, base+"/messages", MessageRequest{Text: "pricing?"}))
	last := conv.Messages[len(conv.Messages)-1]
	if len(last.Actions) != 1 || last.Actions[0].ID != "contact-sales" {
		t.Errorf("pricing reply actions = %+v", last.Actions)
	}

	conv = decode[ConversationResponse](t, do(t, h, http.MethodPost, base+"/demo-form", nil))
	if conv.DemoForm == nil || conv.DemoForm.Step != 1 || conv.DemoForm.CanAdvance {
		t.Fatalf("demo form = %+v", conv.DemoForm)
	}

	rr = do(t, h, http.MethodPost, base+"/demo-form/next", nil)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("blocked next: status = %d", rr.Code)
	}
	if e := decode[ErrorResponse](t, rr); e.Code != ErrorCodeStepIncomplete || len(e.Fields) != 4 {
		t.Errorf("blocked next error = %+v", e)
	}

	do(t, h, http.MethodPatch, base+"/demo-form", DemoFormUpdateRequest{Fields: map[string]string{
		"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com", "company": "Acme",
	}})
	do(t, h, http.MethodPost, base+"/demo-form/next", nil)
	do(t, h, http.MethodPatch, base+"/demo-form", DemoFormUpdateRequest{Fields: map[string]string{
		"preferredDate": "2026-10-19", "preferredTime": "9:00 AM",
	}})
	conv = decode[ConversationResponse](t, do(t, h, http.MethodPost, base+"/demo-form/next", nil))
	if conv.DemoForm.Step != 3 {
		t.Fatalf("step = %d, want review", conv.DemoForm.Step)
	}

	conv = decode[ConversationResponse](t, do(t, h, http.MethodPost, base+"/demo-form/submit", nil))
	last = conv.Messages[len(conv.Messages)-1]
	if conv.DemoForm != nil || last.Kind != "confirmation" || last.Confirmation == nil {
		t.Errorf("after submit = %+v", conv)
	}

	if rr := do(t, h, http.MethodDelete, base, nil); rr.Code != http.StatusNoContent {
		t.Errorf("close: status = %d", rr.Code)
	}
	rr = do(t, h, http.MethodGet, base, nil)
	if rr.Code != http.StatusNotFound || decode[ErrorResponse](t, rr).Code != ErrorCodeSessionNotFound {
		t.Errorf("get after close: status = %d", rr.Code)
	}
}

func TestSubmitContact_Validation(t *testing.T) {
	h := newTestRouter(t)
	conv := decode[ConversationResponse](t, do(t, h, http.MethodPost, "/api/v1/conversations", nil))

	rr := do(t, h, http.MethodPost, "/api/v1/conversations/"+conv.ID+"/contact", ContactRequest{Name: "Ada"})
	if rr.Code != http.StatusBadRequest || decode[ErrorResponse](t, rr).Code != ErrorCodeValidationFailed {
		t.Errorf("status = %d", rr.Code)
	}
}

func TestInvalidBody(t *testing.T) {
	h := newTestRouter(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/v1/handoff/k", bytes.NewBufferString("{")))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rr.Code)
	}
}

func TestDemoOptions(t *testing.T) {
	h := newTestRouter(t)
	resp := decode[DemoOptionsResponse](t, do(t, h, http.MethodGet, "/api/v1/demo-options", nil))
	if len(resp.Dates) != 15 || len(resp.TimeSlots) != 17 || len(resp.Timezones) != 8 {
		t.Errorf("demo options = %d dates, %d slots, %d zones", len(resp.Dates), len(resp.TimeSlots), len(resp.Timezones))
	}
}
