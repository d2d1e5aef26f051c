package chi

import "net/http"

// Recommendations handles GET /recommendations.
func (s *Server) Recommendations(w http.ResponseWriter, r *http.Request) {
	var params RecommendationsParams
	if err := bindQuery(r, "page", true, &params.Page); err != nil {
		s.badRequest(w, r, err)
		return
	}
	rec := s.recommend.Resolve(r.Context(), params.Page)
	writeJSON(w, http.StatusOK, recommendationsToAPI(params.Page, rec))
}

// Destination handles GET /destinations.
func (s *Server) Destination(w http.ResponseWriter, r *http.Request) {
	var params DestinationParams
	if err := bindQuery(r, "href", true, &params.Href); err != nil {
		s.badRequest(w, r, err)
		return
	}
	if err := bindQuery(r, "id", false, &params.ID); err != nil {
		s.badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, destinationToAPI(s.recommend.Destination(params.Href, deref(params.ID))))
}
