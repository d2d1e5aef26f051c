package dialogue

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/finsite/internal/domain"
)

var created = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSession_IntakeFlow(t *testing.T) {
	s := NewSession("s1", created)
	if s.Stage() != StageWelcome {
		t.Fatalf("Stage() = %s", s.Stage())
	}

	if err := s.ExpandRoles(); err != nil {
		t.Fatalf("ExpandRoles: %v", err)
	}
	if !s.RolesExpanded() {
		t.Error("roles should be expanded")
	}

	if err := s.SelectProblem("x", nil); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("SelectProblem at welcome = %v", err)
	}

	if err := s.SelectRole("Board Director"); err != nil {
		t.Fatalf("SelectRole: %v", err)
	}
	if s.Stage() != StageProblemPrompt || s.Profile().Role != "Board Director" {
		t.Errorf("after SelectRole: %s %+v", s.Stage(), s.Profile())
	}
	if err := s.SelectRole("CFO"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("second SelectRole = %v", err)
	}
	if err := s.ExpandRoles(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("ExpandRoles after role = %v", err)
	}

	items := []Item{{ID: "boardvantage", Name: "Boardvantage"}}
	if err := s.SelectProblem("Board governance inefficiencies", items); err != nil {
		t.Fatalf("SelectProblem: %v", err)
	}
	if s.Stage() != StageConversation {
		t.Errorf("Stage() = %s", s.Stage())
	}
	if len(s.Recommended()) != 1 {
		t.Errorf("Recommended() = %v", s.Recommended())
	}
	if err := s.SelectProblem("again", nil); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("conversation must be absorbing, got %v", err)
	}
}

func TestSession_Append(t *testing.T) {
	s := NewSession("s1", created)
	s.Append(Message{ID: "m1"}, Message{ID: "m2"})
	s.Append(Message{ID: "m3"})

	msgs := s.Messages()
	if len(msgs) != 3 || msgs[0].ID != "m1" || msgs[2].ID != "m3" {
		t.Errorf("Messages() = %+v", msgs)
	}
}

func TestSession_Form(t *testing.T) {
	s := NewSession("s1", created)
	if _, err := s.ActiveForm(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("ActiveForm without form = %v", err)
	}
	if _, err := s.CloseForm(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("CloseForm without form = %v", err)
	}

	first := s.OpenForm("A")
	_ = first.Apply(map[string]string{"firstName": "Ada"})
	second := s.OpenForm("B")
	if second.Fields().FirstName != "" || s.Form().Product() != "B" {
		t.Error("OpenForm should replace the previous form")
	}

	f, err := s.CloseForm()
	if err != nil || f.Product() != "B" {
		t.Fatalf("CloseForm = %v, %v", f, err)
	}
	if s.Form() != nil {
		t.Error("form should be removed")
	}
}

func TestReconstruct_InvalidStage(t *testing.T) {
	s := Reconstruct("s1", Stage("bogus"), Profile{}, nil, false, nil, nil, created)
	if s.Stage() != StageWelcome {
		t.Errorf("Stage() = %s", s.Stage())
	}
}

func TestContactRequest_Validate(t *testing.T) {
	ok := ContactRequest{Name: "Ada", Email: "ada@example.com", Company: "AE"}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	bad := ContactRequest{Name: "Ada", Email: "  "}
	err := bad.Validate()
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Validate() = %v, want ErrValidation", err)
	}
	if got := err.Error(); got != "validation failed: contact requires email, company" {
		t.Errorf("message = %q", got)
	}
}
