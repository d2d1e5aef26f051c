// Package dialogue holds the conversation transcript, intake profile and demo form of one
// advisor session.
package dialogue

import (
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/finsite/internal/domain"
)

// Stage is the position of a session in the intake flow.
type Stage string

// Stages. Conversation is absorbing: once reached, a session never returns to the prompts.
const (
	StageWelcome       Stage = "welcome"
	StageProblemPrompt Stage = "problem_prompt"
	StageConversation  Stage = "conversation"
)

// IsValid checks if the stage is known.
func (s Stage) IsValid() bool {
	return s == StageWelcome || s == StageProblemPrompt || s == StageConversation
}

// Profile is the two-question intake profile.
type Profile struct {
	Role    string `json:"selectedRole"`
	Problem string `json:"selectedProblem"`
}

// ContactRequest is a sales contact submission.
type ContactRequest struct {
	Name    string
	Email   string
	Company string
	Subject string
	Message string
}

// Validate checks the required contact fields.
func (c ContactRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(c.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(c.Company) == "" {
		missing = append(missing, "company")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: contact requires %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// Session is the advisor session aggregate. Messages are append-only; the demo form is the
// trailing interactive element and lives outside the transcript until it is closed.
type Session struct {
	id            string
	stage         Stage
	profile       Profile
	messages      []Message
	rolesExpanded bool
	recommended   []Item
	form          *DemoForm
	createdAt     time.Time
}

// NewSession creates an empty session at the welcome stage.
func NewSession(id string, createdAt time.Time) *Session {
	return &Session{id: id, stage: StageWelcome, createdAt: createdAt}
}

// Reconstruct creates a Session without validation (storage hydration).
func Reconstruct(
	id string, stage Stage, profile Profile, messages []Message,
	rolesExpanded bool, recommended []Item, form *DemoForm, createdAt time.Time,
) *Session {
	if !stage.IsValid() {
		stage = StageWelcome
	}
	return &Session{
		id:            id,
		stage:         stage,
		profile:       profile,
		messages:      messages,
		rolesExpanded: rolesExpanded,
		recommended:   recommended,
		form:          form,
		createdAt:     createdAt,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Stage returns the current intake stage.
func (s *Session) Stage() Stage { return s.stage }

// Profile returns the intake profile.
func (s *Session) Profile() Profile { return s.profile }

// Messages returns the transcript.
func (s *Session) Messages() []Message { return s.messages }

// RolesExpanded reports whether "show more" was used on the role prompt.
func (s *Session) RolesExpanded() bool { return s.rolesExpanded }

// Recommended returns the items of the recommendation message, if any.
func (s *Session) Recommended() []Item { return s.recommended }

// Form returns the open demo form or nil.
func (s *Session) Form() *DemoForm { return s.form }

// CreatedAt returns the session creation time.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Append adds messages to the end of the transcript.
func (s *Session) Append(msgs ...Message) {
	s.messages = append(s.messages, msgs...)
}

// ExpandRoles reveals the full role list. Only valid while the role prompt is showing.
func (s *Session) ExpandRoles() error {
	if s.stage != StageWelcome {
		return fmt.Errorf("%w: roles can only be expanded at %s, session is at %s",
			domain.ErrInvalidTransition, StageWelcome, s.stage)
	}
	s.rolesExpanded = true
	return nil
}

// SelectRole stores the role and moves to the problem prompt.
func (s *Session) SelectRole(role string) error {
	if s.stage != StageWelcome {
		return fmt.Errorf("%w: role selection at %s", domain.ErrInvalidTransition, s.stage)
	}
	s.profile.Role = role
	s.stage = StageProblemPrompt
	return nil
}

// SelectProblem stores the problem and the recommended items, entering free conversation.
func (s *Session) SelectProblem(problem string, recommended []Item) error {
	if s.stage != StageProblemPrompt {
		return fmt.Errorf("%w: problem selection at %s", domain.ErrInvalidTransition, s.stage)
	}
	s.profile.Problem = problem
	s.recommended = recommended
	s.stage = StageConversation
	return nil
}

// OpenForm swaps the trailing interactive element for a fresh demo form.
func (s *Session) OpenForm(product string) *DemoForm {
	s.form = NewDemoForm(product)
	return s.form
}

// CloseForm removes the demo form and returns it.
func (s *Session) CloseForm() (*DemoForm, error) {
	if s.form == nil {
		return nil, fmt.Errorf("%w: no demo form is open", domain.ErrInvalidTransition)
	}
	f := s.form
	s.form = nil
	return f, nil
}

// ActiveForm returns the open form or an invalid-transition error.
func (s *Session) ActiveForm() (*DemoForm, error) {
	if s.form == nil {
		return nil, fmt.Errorf("%w: no demo form is open", domain.ErrInvalidTransition)
	}
	return s.form, nil
}
