package chi

import (
	"net/http"

	"github.com/kailas-cloud/finsite/internal/catalog"
	searchuc "github.com/kailas-cloud/finsite/internal/usecase/search"
)

// Search handles GET /search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var params SearchParams
	if err := bindQuery(r, "q", false, &params.Q); err != nil {
		s.badRequest(w, r, err)
		return
	}
	res := s.search.Search(r.Context(), deref(params.Q))
	writeJSON(w, http.StatusOK, searchToAPI(res))
}

// Suggest handles GET /suggest.
func (s *Server) Suggest(w http.ResponseWriter, r *http.Request) {
	var params SuggestParams
	if err := bindQuery(r, "q", false, &params.Q); err != nil {
		s.badRequest(w, r, err)
		return
	}
	if err := bindQuery(r, "limit", false, &params.Limit); err != nil {
		s.badRequest(w, r, err)
		return
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}
	q := deref(params.Q)
	items := s.search.Suggest(r.Context(), q, limit)
	if items == nil {
		items = []catalog.KeywordEntry{}
	}
	writeJSON(w, http.StatusOK, SuggestResponse{Query: q, Suggestions: items})
}

// Discover handles GET /discover.
func (s *Server) Discover(w http.ResponseWriter, r *http.Request) {
	var params DiscoverParams
	if err := bindQuery(r, "tab", false, &params.Tab); err != nil {
		s.badRequest(w, r, err)
		return
	}
	d, err := s.search.Discover(r.Context(), searchuc.Tab(deref(params.Tab)))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, discoveryToAPI(d))
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
