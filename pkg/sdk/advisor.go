package finsite

import (
	"context"
	"fmt"
)

type advisorUseCase interface {
	Open(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Close(ctx context.Context, id string) error
	ShowMoreRoles(ctx context.Context, id string) (*Session, error)
	SelectRole(ctx context.Context, id, role string) (*Session, error)
	SelectProblem(ctx context.Context, id, problem string) (*Session, error)
	Send(ctx context.Context, id, text string) (*Session, error)
	ShowDemoForm(ctx context.Context, id, product string) (*Session, error)
	UpdateDemoForm(ctx context.Context, id string, values map[string]string) (*Session, error)
	NextStep(ctx context.Context, id string) (*Session, error)
	BackStep(ctx context.Context, id string) (*Session, error)
	SubmitDemo(ctx context.Context, id string) (*Session, error)
	CancelDemo(ctx context.Context, id string) (*Session, error)
	SubmitContact(ctx context.Context, id string, req ContactRequest) (*Session, error)
	AvailableDates() []DateOption
}

// AdvisorService drives scripted advisor conversations.
type AdvisorService struct {
	svc advisorUseCase
	obs *observer
}

// Open starts a conversation with the welcome prompt.
func (s *AdvisorService) Open(ctx context.Context) (*Session, error) {
	return s.run("advisor_open", "", func() (*Session, error) { return s.svc.Open(ctx) })
}

// Get returns the conversation transcript.
func (s *AdvisorService) Get(ctx context.Context, id string) (*Session, error) {
	return s.run("advisor_get", id, func() (*Session, error) { return s.svc.Get(ctx, id) })
}

// Close ends the conversation and forgets it.
func (s *AdvisorService) Close(ctx context.Context, id string) (err error) {
	done := s.obs.track("advisor_close")
	defer func() { done(err) }()

	if err = s.svc.Close(ctx, id); err != nil {
		return fmt.Errorf("advisor_close %q: %w", id, err)
	}
	return nil
}

// ShowMoreRoles expands the role prompt to every role.
func (s *AdvisorService) ShowMoreRoles(ctx context.Context, id string) (*Session, error) {
	return s.run("advisor_show_more", id, func() (*Session, error) { return s.svc.ShowMoreRoles(ctx, id) })
}

// SelectRole answers the role prompt.
func (s *AdvisorService) SelectRole(ctx context.Context, id, role string) (*Session, error) {
	return s.run("advisor_role", id, func() (*Session, error) { return s.svc.SelectRole(ctx, id, role) })
}

// SelectProblem answers the problem prompt and yields recommendations.
func (s *AdvisorService) SelectProblem(ctx context.Context, id, problem string) (*Session, error) {
	return s.run("advisor_problem", id, func() (*Session, error) { return s.svc.SelectProblem(ctx, id, problem) })
}

// Send submits free text and appends the scripted reply.
func (s *AdvisorService) Send(ctx context.Context, id, text string) (*Session, error) {
	return s.run("advisor_send", id, func() (*Session, error) { return s.svc.Send(ctx, id, text) })
}

// ShowDemoForm opens the demo booking form. An empty product uses the top recommendation.
func (s *AdvisorService) ShowDemoForm(ctx context.Context, id, product string) (*Session, error) {
	return s.run("advisor_demo_form", id, func() (*Session, error) { return s.svc.ShowDemoForm(ctx, id, product) })
}

// UpdateDemoForm sets demo form fields by name.
func (s *AdvisorService) UpdateDemoForm(ctx context.Context, id string, values map[string]string) (*Session, error) {
	return s.run("advisor_demo_update", id, func() (*Session, error) { return s.svc.UpdateDemoForm(ctx, id, values) })
}

// NextStep advances the demo form when the current step is complete.
func (s *AdvisorService) NextStep(ctx context.Context, id string) (*Session, error) {
	return s.run("advisor_demo_next", id, func() (*Session, error) { return s.svc.NextStep(ctx, id) })
}

// BackStep returns to the previous demo form step.
func (s *AdvisorService) BackStep(ctx context.Context, id string) (*Session, error) {
	return s.run("advisor_demo_back", id, func() (*Session, error) { return s.svc.BackStep(ctx, id) })
}

// SubmitDemo books the demo from the review step.
func (s *AdvisorService) SubmitDemo(ctx context.Context, id string) (*Session, error) {
	return s.run("advisor_demo_submit", id, func() (*Session, error) { return s.svc.SubmitDemo(ctx, id) })
}

// CancelDemo discards the demo form.
func (s *AdvisorService) CancelDemo(ctx context.Context, id string) (*Session, error) {
	return s.run("advisor_demo_cancel", id, func() (*Session, error) { return s.svc.CancelDemo(ctx, id) })
}

// SubmitContact files a sales inquiry.
func (s *AdvisorService) SubmitContact(ctx context.Context, id string, req ContactRequest) (*Session, error) {
	return s.run("advisor_contact", id, func() (*Session, error) { return s.svc.SubmitContact(ctx, id, req) })
}

// AvailableDates lists the bookable demo dates.
func (s *AdvisorService) AvailableDates() []DateOption {
	return s.svc.AvailableDates()
}

func (s *AdvisorService) run(op, id string, fn func() (*Session, error)) (sess *Session, err error) {
	done := s.obs.track(op)
	defer func() { done(err) }()

	sess, err = fn()
	if err != nil {
		if id == "" {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, fmt.Errorf("%s %q: %w", op, id, err)
	}
	return sess, nil
}
