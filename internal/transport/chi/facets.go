package chi

import (
	"net/http"

	"github.com/kailas-cloud/finsite/internal/domain/facet"
)

// FacetTable handles GET /facets.
func (s *Server) FacetTable(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, facetTableToAPI(s.facets.Table()))
}

// OpenFacetView handles POST /facet-views.
func (s *Server) OpenFacetView(w http.ResponseWriter, r *http.Request) {
	sum, err := s.facets.Open(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, facetViewToAPI(sum))
}

// GetFacetView handles GET /facet-views/{id}.
func (s *Server) GetFacetView(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	sum, err := s.facets.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, facetViewToAPI(sum))
}

// ToggleFacet handles POST /facet-views/{id}/toggle.
func (s *Server) ToggleFacet(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	var req ToggleFacetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sum, err := s.facets.Toggle(r.Context(), id, facet.Dimension(req.Dimension), req.ID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, facetViewToAPI(sum))
}

// ClearFacets handles DELETE /facet-views/{id}/selections.
func (s *Server) ClearFacets(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	sum, err := s.facets.Clear(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, facetViewToAPI(sum))
}

// CloseFacetView handles DELETE /facet-views/{id}.
func (s *Server) CloseFacetView(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	if err := s.facets.Close(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
