package dialogue

import "time"

// Speaker identifies who authored a message.
type Speaker string

// Speaker constants.
const (
	User      Speaker = "user"
	Assistant Speaker = "assistant"
)

// Kind tells the host how to render a message.
type Kind string

// Message kinds.
const (
	KindText           Kind = "text"
	KindRolePrompt     Kind = "role_prompt"
	KindProblemPrompt  Kind = "problem_prompt"
	KindRecommendation Kind = "recommendation"
	KindConfirmation   Kind = "confirmation"
)

// Option is a quick-reply choice.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Action ids understood by the host.
const (
	ActionBookDemo     = "book-demo"
	ActionContactSales = "contact-sales"
	ActionCompare      = "compare"
	ActionShowMore     = "show-more-roles"
	ActionBrowse       = "browse-solutions"
)

// Action is a button the host renders under a message.
type Action struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Item is a recommended catalog product attached to a message.
type Item struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Benefit string `json:"benefit"`
	CTA     string `json:"cta,omitempty"`
}

// Confirmation is the structured payload of a submitted demo or contact request.
type Confirmation struct {
	Reference string `json:"reference"`
	Email     string `json:"email"`
	Product   string `json:"product,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
}

// Message is one transcript entry. Attachments are optional.
type Message struct {
	ID           string        `json:"id"`
	Speaker      Speaker       `json:"role"`
	Kind         Kind          `json:"kind"`
	Content      string        `json:"content"`
	Timestamp    time.Time     `json:"timestamp"`
	QuickReplies []Option      `json:"quick_replies,omitempty"`
	Actions      []Action      `json:"actions,omitempty"`
	Items        []Item        `json:"items,omitempty"`
	Confirmation *Confirmation `json:"confirmation,omitempty"`
}
