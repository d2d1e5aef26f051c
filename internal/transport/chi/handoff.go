package chi

import "net/http"

// PutHandoff handles PUT /handoff/{key}.
func (s *Server) PutHandoff(w http.ResponseWriter, r *http.Request) {
	key, err := pathParam(r, "key")
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	var req HandoffRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.handoff.Put(r.Context(), key, req.Query); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TakeHandoff handles DELETE /handoff/{key}: it returns the pending query and clears it.
func (s *Server) TakeHandoff(w http.ResponseWriter, r *http.Request) {
	key, err := pathParam(r, "key")
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	query, ok, err := s.handoff.Take(r.Context(), key)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, HandoffResponse{Key: key, Query: query, Found: ok})
}
