package chi

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	domdlg "github.com/kailas-cloud/finsite/internal/domain/dialogue"
	"github.com/kailas-cloud/finsite/internal/logger"
)

// DemoOptions handles GET /demo-options.
func (s *Server) DemoOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, DemoOptionsResponse{
		Dates:     s.dialogue.AvailableDates(),
		TimeSlots: domdlg.TimeSlots,
		Timezones: domdlg.Timezones,
	})
}

// OpenConversation handles POST /conversations.
func (s *Server) OpenConversation(w http.ResponseWriter, r *http.Request) {
	sess, err := s.dialogue.Open(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, conversationToAPI(sess))
}

// GetConversation handles GET /conversations/{id}.
func (s *Server) GetConversation(w http.ResponseWriter, r *http.Request) {
	s.conversation(w, r, s.dialogue.Get)
}

// CloseConversation handles DELETE /conversations/{id}.
func (s *Server) CloseConversation(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	if err := s.dialogue.Close(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ShowMoreRoles handles POST /conversations/{id}/roles/more.
func (s *Server) ShowMoreRoles(w http.ResponseWriter, r *http.Request) {
	s.conversation(w, r, s.dialogue.ShowMoreRoles)
}

// SelectRole handles POST /conversations/{id}/role.
func (s *Server) SelectRole(w http.ResponseWriter, r *http.Request) {
	var req RoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s.conversation(w, r, func(ctx context.Context, id string) (*domdlg.Session, error) {
		return s.dialogue.SelectRole(ctx, id, req.Role)
	})
}

// SelectProblem handles POST /conversations/{id}/problem.
func (s *Server) SelectProblem(w http.ResponseWriter, r *http.Request) {
	var req ProblemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s.conversation(w, r, func(ctx context.Context, id string) (*domdlg.Session, error) {
		return s.dialogue.SelectProblem(ctx, id, req.Problem)
	})
}

// SendMessage handles POST /conversations/{id}/messages.
func (s *Server) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s.conversation(w, r, func(ctx context.Context, id string) (*domdlg.Session, error) {
		return s.dialogue.Send(ctx, id, req.Text)
	})
}

// ShowDemoForm handles POST /conversations/{id}/demo-form.
func (s *Server) ShowDemoForm(w http.ResponseWriter, r *http.Request) {
	var req DemoFormRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	s.conversation(w, r, func(ctx context.Context, id string) (*domdlg.Session, error) {
		return s.dialogue.ShowDemoForm(ctx, id, req.Product)
	})
}

// UpdateDemoForm handles PATCH /conversations/{id}/demo-form.
func (s *Server) UpdateDemoForm(w http.ResponseWriter, r *http.Request) {
	var req DemoFormUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s.conversation(w, r, func(ctx context.Context, id string) (*domdlg.Session, error) {
		return s.dialogue.UpdateDemoForm(ctx, id, req.Fields)
	})
}

// NextStep handles POST /conversations/{id}/demo-form/next.
func (s *Server) NextStep(w http.ResponseWriter, r *http.Request) {
	s.conversation(w, r, s.dialogue.NextStep)
}

// BackStep handles POST /conversations/{id}/demo-form/back.
func (s *Server) BackStep(w http.ResponseWriter, r *http.Request) {
	s.conversation(w, r, s.dialogue.BackStep)
}

// SubmitDemo handles POST /conversations/{id}/demo-form/submit.
func (s *Server) SubmitDemo(w http.ResponseWriter, r *http.Request) {
	s.conversation(w, r, s.dialogue.SubmitDemo)
}

// CancelDemo handles DELETE /conversations/{id}/demo-form.
func (s *Server) CancelDemo(w http.ResponseWriter, r *http.Request) {
	s.conversation(w, r, s.dialogue.CancelDemo)
}

// SubmitContact handles POST /conversations/{id}/contact.
func (s *Server) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s.conversation(w, r, func(ctx context.Context, id string) (*domdlg.Session, error) {
		return s.dialogue.SubmitContact(ctx, id, domdlg.ContactRequest{
			Name:    req.Name,
			Email:   req.Email,
			Company: req.Company,
			Subject: req.Subject,
			Message: req.Message,
		})
	})
}

// conversation binds the session id, runs op and writes the resulting session.
func (s *Server) conversation(
	w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, id string) (*domdlg.Session, error),
) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	sess, err := op(logger.With(r.Context(), zap.String("session_id", id)), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversationToAPI(sess))
}
