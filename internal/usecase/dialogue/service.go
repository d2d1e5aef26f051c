package dialogue

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/finsite/internal/domain"
	domdlg "github.com/kailas-cloud/finsite/internal/domain/dialogue"
	"github.com/kailas-cloud/finsite/internal/keylock"
	"github.com/kailas-cloud/finsite/internal/logger"
)

// DefaultVisibleRoles is how many roles the welcome prompt shows before "show more".
const DefaultVisibleRoles = 6

// Lead kinds reported to the Recorder.
const (
	LeadDemo    = "demo"
	LeadContact = "contact"
)

// Config tunes the scripted pacing and the role prompt.
type Config struct {
	TypingDelay  time.Duration
	SubmitDelay  time.Duration
	VisibleRoles int
}

// Service runs the scripted advisor: intake prompts, free-text replies and lead capture.
type Service struct {
	repo     Repository
	products Products
	recorder Recorder
	cfg      Config
	now      func() time.Time
	newID    func() string
	locks    keylock.Locks
}

// New creates a dialogue service. recorder can be nil.
func New(repo Repository, products Products, recorder Recorder, cfg Config) *Service {
	if cfg.VisibleRoles <= 0 {
		cfg.VisibleRoles = DefaultVisibleRoles
	}
	return &Service{
		repo:     repo,
		products: products,
		recorder: recorder,
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithIDGenerator overrides session and message id generation.
func (s *Service) WithIDGenerator(fn func() string) *Service {
	s.newID = fn
	return s
}

// Open starts a session at the welcome stage with the role prompt.
func (s *Service) Open(ctx context.Context) (*domdlg.Session, error) {
	sess := domdlg.NewSession(s.newID(), s.now().UTC())
	sess.Append(s.assistant(domdlg.KindRolePrompt,
		"Welcome to Nasdaq! Let's personalize your experience. What's your role?",
		withOptions(Roles[:min(s.cfg.VisibleRoles, len(Roles))]),
		withActions(s.showMoreActions()...),
	))

	if err := s.repo.SaveConversation(ctx, sess); err != nil {
		return nil, fmt.Errorf("open conversation: %w", err)
	}
	s.transition(ctx, sess)
	return sess, nil
}

// Get returns a session.
func (s *Service) Get(ctx context.Context, id string) (*domdlg.Session, error) {
	return s.repo.GetConversation(ctx, id)
}

// Close discards a session. Reopening starts from scratch.
func (s *Service) Close(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	if _, err := s.repo.GetConversation(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteConversation(ctx, id); err != nil {
		return fmt.Errorf("close conversation: %w", err)
	}
	logger.FromContext(ctx).Debug("Conversation closed", zap.String("session_id", id))
	return nil
}

// ShowMoreRoles reveals the full role list.
func (s *Service) ShowMoreRoles(ctx context.Context, id string) (*domdlg.Session, error) {
	return s.update(ctx, id, func(sess *domdlg.Session) error {
		if err := sess.ExpandRoles(); err != nil {
			return err
		}
		sess.Append(s.assistant(domdlg.KindRolePrompt,
			"Here are all the roles we work with. Which one fits you best?",
			withOptions(Roles),
		))
		return nil
	})
}

// SelectRole records the role and asks for the main problem.
func (s *Service) SelectRole(ctx context.Context, id, role string) (*domdlg.Session, error) {
	return s.update(ctx, id, func(sess *domdlg.Session) error {
		if !slices.Contains(s.visibleRoles(sess), role) {
			return fmt.Errorf("%w: role %q", domain.ErrUnknownOption, role)
		}
		if err := sess.SelectRole(role); err != nil {
			return err
		}
		sess.Append(
			s.user(role),
			s.assistant(domdlg.KindProblemPrompt,
				fmt.Sprintf("Thanks! As a %s, what's the main challenge you're looking to solve?", role),
				withOptions(Problems),
			),
		)
		s.transition(ctx, sess)
		return nil
	})
}

// SelectProblem records the problem and appends the matching recommendation.
func (s *Service) SelectProblem(ctx context.Context, id, problem string) (*domdlg.Session, error) {
	return s.update(ctx, id, func(sess *domdlg.Session) error {
		if !slices.Contains(Problems, problem) {
			return fmt.Errorf("%w: problem %q", domain.ErrUnknownOption, problem)
		}
		ids, intro := Recommend(problem)
		items := s.resolveItems(ids)
		if err := sess.SelectProblem(problem, items); err != nil {
			return err
		}
		msg := s.assistant(domdlg.KindRecommendation, intro,
			withActions(actionBookDemo, actionContactSales, actionCompare))
		msg.Items = items
		sess.Append(s.user(problem), msg)
		s.transition(ctx, sess)
		return nil
	})
}

// Send appends a free-text message and the classified reply. It is accepted at every
// stage and never changes the stage. The reply waits for the typing delay outside the
// session lock; a cancelled ctx aborts before anything is saved.
func (s *Service) Send(ctx context.Context, id, text string) (*domdlg.Session, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message text is required", domain.ErrValidation)
	}
	if err := s.peek(ctx, id, nil); err != nil {
		return nil, err
	}
	if err := wait(ctx, s.cfg.TypingDelay); err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(sess *domdlg.Session) error {
		sess.Append(s.user(text))

		reply := Classify(text, sess.Profile(), sess.Recommended())
		if s.recorder != nil {
			s.recorder.Intent(string(reply.Intent))
		}
		logger.FromContext(ctx).Debug("Message classified",
			zap.String("session_id", sess.ID()),
			zap.String("stage", string(sess.Stage())),
			zap.String("intent", string(reply.Intent)),
		)

		sess.Append(s.assistant(domdlg.KindText, reply.Content, withActions(reply.Actions...)))
		return nil
	})
}

// ShowDemoForm opens the demo form for product, replacing any open form. An empty
// product defaults to the first recommended item.
func (s *Service) ShowDemoForm(ctx context.Context, id, product string) (*domdlg.Session, error) {
	return s.update(ctx, id, func(sess *domdlg.Session) error {
		product = strings.TrimSpace(product)
		if product == "" {
			product = "Multiple Products"
			if rec := sess.Recommended(); len(rec) > 0 {
				product = rec[0].Name
			}
		}
		sess.OpenForm(product)
		sess.Append(s.assistant(domdlg.KindText,
			fmt.Sprintf("Great! Let's schedule your %s demo. It only takes three quick steps.", product)))
		return nil
	})
}

// UpdateDemoForm sets form fields on the open form.
func (s *Service) UpdateDemoForm(ctx context.Context, id string, values map[string]string) (*domdlg.Session, error) {
	return s.update(ctx, id, func(sess *domdlg.Session) error {
		f, err := sess.ActiveForm()
		if err != nil {
			return err
		}
		return f.Apply(values)
	})
}

// NextStep advances the open form. Missing required fields block the step.
func (s *Service) NextStep(ctx context.Context, id string) (*domdlg.Session, error) {
	return s.update(ctx, id, func(sess *domdlg.Session) error {
		f, err := sess.ActiveForm()
		if err != nil {
			return err
		}
		return f.Next()
	})
}

// BackStep returns the open form to its previous step.
func (s *Service) BackStep(ctx context.Context, id string) (*domdlg.Session, error) {
	return s.update(ctx, id, func(sess *domdlg.Session) error {
		f, err := sess.ActiveForm()
		if err != nil {
			return err
		}
		f.Back()
		return nil
	})
}

// SubmitDemo submits the open form from the review step. Submission always succeeds
// once the form is complete; it removes the form and appends a confirmation.
func (s *Service) SubmitDemo(ctx context.Context, id string) (*domdlg.Session, error) {
	ready := func(sess *domdlg.Session) error {
		f, err := sess.ActiveForm()
		if err != nil {
			return err
		}
		return f.Ready()
	}
	if err := s.peek(ctx, id, ready); err != nil {
		return nil, err
	}
	if err := wait(ctx, s.cfg.SubmitDelay); err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(sess *domdlg.Session) error {
		if err := ready(sess); err != nil {
			return err
		}
		f, err := sess.CloseForm()
		if err != nil {
			return err
		}

		fields := f.Fields()
		ref := "DEMO-" + s.reference()
		msg := s.assistant(domdlg.KindConfirmation, fmt.Sprintf(
			"Perfect! I've scheduled your demo for %s. Reference ID: %s. "+
				"Our team will contact you within 24 hours at %s to confirm the details.",
			f.Product(), ref, fields.Email))
		msg.Confirmation = &domdlg.Confirmation{
			Reference: ref,
			Email:     fields.Email,
			Product:   f.Product(),
			Date:      fields.PreferredDate,
			Time:      fields.PreferredTime,
			Timezone:  fields.Timezone,
		}
		sess.Append(msg)
		s.lead(ctx, sess, LeadDemo, ref)
		return nil
	})
}

// CancelDemo removes the open form and offers follow-ups.
func (s *Service) CancelDemo(ctx context.Context, id string) (*domdlg.Session, error) {
	return s.update(ctx, id, func(sess *domdlg.Session) error {
		if _, err := sess.CloseForm(); err != nil {
			return err
		}
		sess.Append(s.assistant(domdlg.KindText,
			"No problem! Is there anything else I can help you with?",
			withOptions([]string{"Tell me about ESG solutions", "What's your pricing?", "Compare solutions"}),
			withActions(actionBrowse, actionContactSales),
		))
		return nil
	})
}

// SubmitContact records a sales contact request and appends a ticket confirmation.
func (s *Service) SubmitContact(ctx context.Context, id string, req domdlg.ContactRequest) (*domdlg.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(sess *domdlg.Session) error {
		ticket := "#" + s.reference()
		msg := s.assistant(domdlg.KindConfirmation, fmt.Sprintf(
			"Thank you! I've created ticket %s for your inquiry. "+
				"Our sales team will respond within 4 business hours at %s.",
			ticket, req.Email))
		msg.Confirmation = &domdlg.Confirmation{Reference: ticket, Email: req.Email}
		sess.Append(msg)
		s.lead(ctx, sess, LeadContact, ticket)
		return nil
	})
}

// AvailableDates lists the bookable demo dates from now.
func (s *Service) AvailableDates() []domdlg.DateOption {
	return domdlg.AvailableDates(s.now())
}

// peek loads a session without taking its lock and runs check on it. Nothing is saved.
func (s *Service) peek(ctx context.Context, id string, check func(*domdlg.Session) error) error {
	sess, err := s.repo.GetConversation(ctx, id)
	if err != nil {
		return err
	}
	if check == nil {
		return nil
	}
	return check(sess)
}

// update loads a session, applies fn and saves it. Nothing is saved when fn fails.
func (s *Service) update(ctx context.Context, id string, fn func(*domdlg.Session) error) (*domdlg.Session, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	sess, err := s.repo.GetConversation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.repo.SaveConversation(ctx, sess); err != nil {
		return nil, fmt.Errorf("save conversation: %w", err)
	}
	return sess, nil
}

func (s *Service) visibleRoles(sess *domdlg.Session) []string {
	if sess.RolesExpanded() {
		return Roles
	}
	return Roles[:min(s.cfg.VisibleRoles, len(Roles))]
}

func (s *Service) showMoreActions() []domdlg.Action {
	if s.cfg.VisibleRoles < len(Roles) {
		return []domdlg.Action{actionShowMore}
	}
	return nil
}

func (s *Service) resolveItems(ids []string) []domdlg.Item {
	items := make([]domdlg.Item, 0, len(ids))
	for _, id := range ids {
		p, ok := s.products.Product(id)
		if !ok {
			continue
		}
		items = append(items, domdlg.Item{ID: p.ID, Name: p.Name, Benefit: p.Benefit, CTA: p.CTA})
	}
	return items
}

// reference is the last six digits of the current millisecond clock.
func (s *Service) reference() string {
	return fmt.Sprintf("%06d", s.now().UnixMilli()%1_000_000)
}

func (s *Service) transition(ctx context.Context, sess *domdlg.Session) {
	if s.recorder != nil {
		s.recorder.Transition(string(sess.Stage()))
	}
	logger.FromContext(ctx).Debug("Conversation stage",
		zap.String("session_id", sess.ID()),
		zap.String("stage", string(sess.Stage())),
	)
}

func (s *Service) lead(ctx context.Context, sess *domdlg.Session, kind, ref string) {
	if s.recorder != nil {
		s.recorder.Lead(kind)
	}
	logger.FromContext(ctx).Info("Lead captured",
		zap.String("session_id", sess.ID()),
		zap.String("kind", kind),
		zap.String("reference", ref),
	)
}

type messageOption func(*domdlg.Message)

func withOptions(labels []string) messageOption {
	return func(m *domdlg.Message) {
		for _, l := range labels {
			m.QuickReplies = append(m.QuickReplies, domdlg.Option{ID: l, Label: l})
		}
	}
}

func withActions(actions ...domdlg.Action) messageOption {
	return func(m *domdlg.Message) {
		m.Actions = append(m.Actions, actions...)
	}
}

func (s *Service) assistant(kind domdlg.Kind, content string, opts ...messageOption) domdlg.Message {
	m := domdlg.Message{
		ID:        s.newID(),
		Speaker:   domdlg.Assistant,
		Kind:      kind,
		Content:   content,
		Timestamp: s.now().UTC(),
	}
	for _, o := range opts {
		o(&m)
	}
	return m
}

func (s *Service) user(content string) domdlg.Message {
	return domdlg.Message{
		ID:        s.newID(),
		Speaker:   domdlg.User,
		Kind:      domdlg.KindText,
		Content:   content,
		Timestamp: s.now().UTC(),
	}
}
