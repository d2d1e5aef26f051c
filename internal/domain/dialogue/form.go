package dialogue

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/finsite/internal/domain"
)

// Demo form steps.
const (
	StepContact  = 1
	StepSchedule = 2
	StepReview   = 3
)

// DefaultTimezone pre-fills the timezone field.
const DefaultTimezone = "EST (Eastern)"

// TimeSlots are the bookable half-hour slots.
var TimeSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM", "1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM",
	"3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM", "5:00 PM",
}

// Timezones are the selectable timezones.
var Timezones = []string{
	"EST (Eastern)", "CST (Central)", "MST (Mountain)", "PST (Pacific)",
	"GMT (London)", "CET (Central Europe)", "JST (Japan)", "AEST (Australia)",
}

// DemoFields are the values collected by the demo form.
type DemoFields struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	JobTitle        string `json:"jobTitle"`
	PreferredDate   string `json:"preferredDate"`
	PreferredTime   string `json:"preferredTime"`
	Timezone        string `json:"timezone"`
	Interests       string `json:"interests"`
	AdditionalNotes string `json:"additionalNotes"`
}

func (f *DemoFields) field(name string) (*string, bool) {
	switch name {
	case "firstName":
		return &f.FirstName, true
	case "lastName":
		return &f.LastName, true
	case "email":
		return &f.Email, true
	case "phone":
		return &f.Phone, true
	case "company":
		return &f.Company, true
	case "jobTitle":
		return &f.JobTitle, true
	case "preferredDate":
		return &f.PreferredDate, true
	case "preferredTime":
		return &f.PreferredTime, true
	case "timezone":
		return &f.Timezone, true
	case "interests":
		return &f.Interests, true
	case "additionalNotes":
		return &f.AdditionalNotes, true
	}
	return nil, false
}

// DemoForm is the three-step demo scheduling form: contact, schedule, review.
type DemoForm struct {
	product string
	step    int
	fields  DemoFields
}

// NewDemoForm opens a form at the contact step, pre-filling interests with product.
func NewDemoForm(product string) *DemoForm {
	return &DemoForm{
		product: product,
		step:    StepContact,
		fields: DemoFields{
			Timezone:  DefaultTimezone,
			Interests: product,
		},
	}
}

// ReconstructDemoForm rebuilds a form from storage without validation.
func ReconstructDemoForm(product string, step int, fields DemoFields) *DemoForm {
	if step < StepContact || step > StepReview {
		step = StepContact
	}
	return &DemoForm{product: product, step: step, fields: fields}
}

// Product returns the product the form was opened for.
func (f *DemoForm) Product() string { return f.product }

// Step returns the current step.
func (f *DemoForm) Step() int { return f.step }

// Fields returns a copy of the collected values.
func (f *DemoForm) Fields() DemoFields { return f.fields }

// Apply sets the named fields. Unknown names are rejected and nothing is changed.
func (f *DemoForm) Apply(values map[string]string) error {
	next := f.fields
	for name, v := range values {
		p, ok := next.field(name)
		if !ok {
			return fmt.Errorf("%w: unknown form field %q", domain.ErrValidation, name)
		}
		*p = v
	}
	f.fields = next
	return nil
}

// Missing returns the required fields of the current step that are still empty.
func (f *DemoForm) Missing() []string {
	return missingFor(f.step, &f.fields)
}

func missingFor(step int, fl *DemoFields) []string {
	var req []string
	switch step {
	case StepContact:
		req = []string{"firstName", "lastName", "email", "company"}
	case StepSchedule:
		req = []string{"preferredDate", "preferredTime"}
	}
	var missing []string
	for _, name := range req {
		if p, _ := fl.field(name); *p == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// CanAdvance reports whether Next would succeed.
func (f *DemoForm) CanAdvance() bool {
	return f.step < StepReview && len(f.Missing()) == 0
}

// Next advances one step. It is rejected, leaving the step unchanged, while required fields are empty.
func (f *DemoForm) Next() error {
	if f.step >= StepReview {
		return fmt.Errorf("%w: form is already at review", domain.ErrInvalidTransition)
	}
	if missing := f.Missing(); len(missing) > 0 {
		return domain.NewMissingFields(f.step, missing)
	}
	f.step++
	return nil
}

// Back returns to the previous step. It is a no-op on the first step.
func (f *DemoForm) Back() {
	if f.step > StepContact {
		f.step--
	}
}

// Ready validates the whole form for submission.
func (f *DemoForm) Ready() error {
	if f.step != StepReview {
		return fmt.Errorf("%w: form is at step %d", domain.ErrInvalidTransition, f.step)
	}
	for _, step := range []int{StepContact, StepSchedule} {
		if missing := missingFor(step, &f.fields); len(missing) > 0 {
			return domain.NewMissingFields(step, missing)
		}
	}
	return nil
}

// DateOption is a selectable demo date.
type DateOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AvailableDates returns up to 15 business days within the 30 days after now.
func AvailableDates(now time.Time) []DateOption {
	var out []DateOption
	for i := 1; i <= 30 && len(out) < 15; i++ {
		d := now.AddDate(0, 0, i)
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		out = append(out, DateOption{
			Value: d.Format("2006-01-02"),
			Label: d.Format("Monday, January 2"),
		})
	}
	return out
}
