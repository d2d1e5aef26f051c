package chi

import (
	"github.com/kailas-cloud/finsite/internal/catalog"
	domdlg "github.com/kailas-cloud/finsite/internal/domain/dialogue"
	"github.com/kailas-cloud/finsite/internal/domain/facet"
	"github.com/kailas-cloud/finsite/internal/domain/taxonomy"
)

// ErrorCode is the machine-readable error code of an ErrorResponse.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest        ErrorCode = "bad_request"
	ErrorCodeUnauthorized      ErrorCode = "unauthorized"
	ErrorCodeValidationFailed  ErrorCode = "validation_failed"
	ErrorCodeNotFound          ErrorCode = "not_found"
	ErrorCodeSessionNotFound   ErrorCode = "session_not_found"
	ErrorCodeInvalidTransition ErrorCode = "invalid_transition"
	ErrorCodeStepIncomplete    ErrorCode = "step_incomplete"
	ErrorCodeUnknownOption     ErrorCode = "unknown_option"
	ErrorCodeUnknownDimension  ErrorCode = "unknown_dimension"
	ErrorCodeCanceled          ErrorCode = "request_canceled"
	ErrorCodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Fields  []string  `json:"fields,omitempty"`
}

// --- Query parameters ---

// SearchParams are the query parameters of GET /search.
type SearchParams struct {
	Q *string
}

// SuggestParams are the query parameters of GET /suggest.
type SuggestParams struct {
	Q     *string
	Limit *int
}

// DiscoverParams are the query parameters of GET /discover.
type DiscoverParams struct {
	Tab *string
}

// RecommendationsParams are the query parameters of GET /recommendations.
type RecommendationsParams struct {
	Page string
}

// DestinationParams are the query parameters of GET /destinations.
type DestinationParams struct {
	Href string
	ID   *string
}

// --- Request bodies ---

// ToggleFacetRequest is the body of POST /facet-views/{id}/toggle.
type ToggleFacetRequest struct {
	Dimension string `json:"dimension"`
	ID        string `json:"id"`
}

// HandoffRequest is the body of PUT /handoff/{key}.
type HandoffRequest struct {
	Query string `json:"query"`
}

// RoleRequest is the body of POST /conversations/{id}/role.
type RoleRequest struct {
	Role string `json:"role"`
}

// ProblemRequest is the body of POST /conversations/{id}/problem.
type ProblemRequest struct {
	Problem string `json:"problem"`
}

// MessageRequest is the body of POST /conversations/{id}/messages.
type MessageRequest struct {
	Text string `json:"text"`
}

// DemoFormRequest is the body of POST /conversations/{id}/demo-form.
type DemoFormRequest struct {
	Product string `json:"product"`
}

// DemoFormUpdateRequest is the body of PATCH /conversations/{id}/demo-form.
type DemoFormUpdateRequest struct {
	Fields map[string]string `json:"fields"`
}

// ContactRequest is the body of POST /conversations/{id}/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// --- Responses ---

// SearchResponse is the search-results view.
type SearchResponse struct {
	Query             string                  `json:"query"`
	Answer            catalog.AnswerCard      `json:"answer"`
	Products          []catalog.Product       `json:"products"`
	ProductsFallback  bool                    `json:"products_fallback"`
	Resources         []catalog.Resource      `json:"resources"`
	ResourcesFallback bool                    `json:"resources_fallback"`
	ResourceGroups    []ResourceGroupResponse `json:"resource_groups"`
}

// ResourceGroupResponse is one resource type bucket.
type ResourceGroupResponse struct {
	Type      string             `json:"type"`
	Resources []catalog.Resource `json:"resources"`
}

// SuggestResponse lists keyword suggestions.
type SuggestResponse struct {
	Query       string                 `json:"query"`
	Suggestions []catalog.KeywordEntry `json:"suggestions"`
}

// DiscoverResponse is the empty-query drawer.
type DiscoverResponse struct {
	Tab             string             `json:"tab"`
	Categories      []catalog.Category `json:"categories,omitempty"`
	PopularSearches []string           `json:"popular_searches,omitempty"`
	News            []catalog.News     `json:"news,omitempty"`
	Tickers         []catalog.Ticker   `json:"tickers,omitempty"`
}

// FacetDimensionResponse is one dimension table.
type FacetDimensionResponse struct {
	Dimension string        `json:"dimension"`
	Entries   []facet.Entry `json:"entries"`
}

// FacetTableResponse lists every dimension in display order.
type FacetTableResponse struct {
	Dimensions []FacetDimensionResponse `json:"dimensions"`
}

// FacetViewResponse is the state of one facet view.
type FacetViewResponse struct {
	ID           string              `json:"id"`
	Selected     map[string][]string `json:"selected"`
	ActiveCount  int                 `json:"active_count"`
	ActiveLabels []string            `json:"active_labels"`
}

// RecommendationsResponse is the drawer content for one page.
type RecommendationsResponse struct {
	Page     string          `json:"page"`
	Related  []taxonomy.Item `json:"related"`
	FAQs     []taxonomy.FAQ  `json:"faqs"`
	Fallback bool            `json:"fallback"`
}

// DestinationResponse tells the host where a link leads.
type DestinationResponse struct {
	Kind  string `json:"kind"`
	Page  string `json:"page,omitempty"`
	Query string `json:"query,omitempty"`
}

// HandoffResponse is the result of a read-and-clear.
type HandoffResponse struct {
	Key   string `json:"key"`
	Query string `json:"query"`
	Found bool   `json:"found"`
}

// ConversationResponse is the full advisor session.
type ConversationResponse struct {
	ID            string            `json:"id"`
	Stage         string            `json:"stage"`
	Profile       domdlg.Profile    `json:"profile"`
	RolesExpanded bool              `json:"roles_expanded"`
	Messages      []domdlg.Message  `json:"messages"`
	Recommended   []domdlg.Item     `json:"recommended,omitempty"`
	DemoForm      *DemoFormResponse `json:"demo_form,omitempty"`
}

// DemoFormResponse is the open demo form.
type DemoFormResponse struct {
	Product    string            `json:"product"`
	Step       int               `json:"step"`
	Fields     domdlg.DemoFields `json:"fields"`
	Missing    []string          `json:"missing,omitempty"`
	CanAdvance bool              `json:"can_advance"`
}

// DemoOptionsResponse lists the selectable demo dates, slots and timezones.
type DemoOptionsResponse struct {
	Dates     []domdlg.DateOption `json:"dates"`
	TimeSlots []string            `json:"time_slots"`
	Timezones []string            `json:"timezones"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
