package dialogue

import (
	"strings"

	domdlg "github.com/kailas-cloud/finsite/internal/domain/dialogue"
)

// Roles is the full role superset in display order. The first VisibleRoles are shown
// until the visitor asks for more.
var Roles = []string{
	"Compliance Officer",
	"CFO/Finance Executive",
	"Board Director",
	"Risk Manager",
	"ESG Manager",
	"Market Operations",
	"Legal Counsel",
	"CEO/Executive",
}

// Problems are the problem options offered after a role is chosen.
var Problems = []string{
	"Regulatory compliance challenges",
	"ESG reporting complexity",
	"Board governance inefficiencies",
	"Market abuse detection",
	"Risk management gaps",
	"Market data and analytics needs",
	"Listing and capital access",
}

// Intent is the classification of a free-text message.
type Intent string

// Intents, in classification order.
const (
	IntentESG          Intent = "esg"
	IntentSurveillance Intent = "surveillance"
	IntentBoard        Intent = "board"
	IntentDemo         Intent = "demo"
	IntentPricing      Intent = "pricing"
	IntentCompare      Intent = "compare"
	IntentDefault      Intent = "default"
)

// Reply is a canned assistant response.
type Reply struct {
	Intent  Intent
	Content string
	Actions []domdlg.Action
}

var (
	actionBookDemo     = domdlg.Action{ID: domdlg.ActionBookDemo, Label: "Book a demo"}
	actionContactSales = domdlg.Action{ID: domdlg.ActionContactSales, Label: "Contact sales"}
	actionCompare      = domdlg.Action{ID: domdlg.ActionCompare, Label: "Compare solutions"}
	actionBrowse       = domdlg.Action{ID: domdlg.ActionBrowse, Label: "Browse solutions"}
	actionShowMore     = domdlg.Action{ID: domdlg.ActionShowMore, Label: "Show more roles"}
)

// intentRule fires when the lower-cased text contains any keyword.
type intentRule struct {
	intent   Intent
	keywords []string
	respond  func(p domdlg.Profile, recommended []domdlg.Item) Reply
}

// intentRules are evaluated in order; the first match wins.
var intentRules = []intentRule{
	{
		intent:   IntentESG,
		keywords: []string{"esg"},
		respond: fixed(IntentESG,
			"Our Nasdaq ESG Data Portal provides comprehensive ESG metrics and reporting capabilities. "+
				"It's a single source for all your sustainability data needs. Would you like to see a demo?",
			actionBookDemo),
	},
	{
		intent:   IntentSurveillance,
		keywords: []string{"compliance", "surveillance"},
		respond: fixed(IntentSurveillance,
			"Our Market Surveillance SaaS solution detects market abuse in real-time using advanced AI algorithms. "+
				"It helps ensure regulatory compliance and market integrity. Interested in learning more?",
			actionBookDemo, actionContactSales),
	},
	{
		intent:   IntentBoard,
		keywords: []string{"board", "governance"},
		respond: fixed(IntentBoard,
			"Nasdaq Boardvantage® streamlines board meeting management with secure collaboration tools for directors. "+
				"It's trusted by thousands of boards worldwide. Would you like to schedule a demo?",
			actionBookDemo),
	},
	{
		intent:   IntentDemo,
		keywords: []string{"demo", "demonstration"},
		respond: fixed(IntentDemo,
			"I'd be happy to arrange a demo for you! Let me collect some details to ensure we show you "+
				"the most relevant features.",
			actionBookDemo),
	},
	{
		intent:   IntentPricing,
		keywords: []string{"pricing", "price", "cost"},
		respond: fixed(IntentPricing,
			"I'll connect you with our sales team for detailed pricing information. Let me get your contact details.",
			actionContactSales),
	},
	{
		intent:   IntentCompare,
		keywords: []string{"compare", "comparison", "difference", "versus"},
		respond:  compareReply,
	},
}

func defaultReply(domdlg.Profile, []domdlg.Item) Reply {
	return Reply{
		Intent: IntentDefault,
		Content: "Thanks for your question! Based on your role and interests, I'd recommend exploring our solutions " +
			"for your specific challenges. Would you like to book a demo or speak with our sales team?",
		Actions: []domdlg.Action{actionBookDemo, actionContactSales},
	}
}

func fixed(intent Intent, content string, actions ...domdlg.Action) func(domdlg.Profile, []domdlg.Item) Reply {
	return func(domdlg.Profile, []domdlg.Item) Reply {
		return Reply{Intent: intent, Content: content, Actions: actions}
	}
}

// compareReply echoes the products already recommended to the visitor.
func compareReply(_ domdlg.Profile, recommended []domdlg.Item) Reply {
	if len(recommended) == 0 {
		return Reply{
			Intent: IntentCompare,
			Content: "I can help you compare our solutions. Tell me your main challenge, or browse the full " +
				"solution catalog to pick the products you'd like to compare.",
			Actions: []domdlg.Action{actionBrowse},
		}
	}
	names := make([]string, 0, len(recommended))
	for _, it := range recommended {
		names = append(names, it.Name)
	}
	var b strings.Builder
	b.WriteString("Here's how your recommended solutions compare: ")
	for i, it := range recommended {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(it.Name)
		b.WriteString(" (")
		b.WriteString(it.Benefit)
		b.WriteString(")")
	}
	b.WriteString(". Would you like a demo of ")
	b.WriteString(joinNames(names))
	b.WriteString("?")
	return Reply{Intent: IntentCompare, Content: b.String(), Actions: []domdlg.Action{actionBookDemo, actionContactSales}}
}

// Classify selects the canned response for text. It is total: unmatched or empty text
// yields the default reply.
func Classify(text string, p domdlg.Profile, recommended []domdlg.Item) Reply {
	lower := strings.ToLower(text)
	for _, r := range intentRules {
		if containsAny(lower, r.keywords) {
			return r.respond(p, recommended)
		}
	}
	return defaultReply(p, recommended)
}

// recommendationRule maps a problem to a product bundle.
type recommendationRule struct {
	keywords []string
	products []string
	intro    string
}

// recommendationRules are evaluated in order; the first match wins.
var recommendationRules = []recommendationRule{
	{
		keywords: []string{"compliance", "regulatory"},
		products: []string{"surveillance", "esg-data", "boardvantage"},
		intro:    "For regulatory compliance, teams like yours combine real-time surveillance, ESG disclosure data and secure board reporting.",
	},
	{
		keywords: []string{"esg", "reporting"},
		products: []string{"esg-data", "analytics", "boardvantage"},
		intro:    "To simplify ESG reporting, start with a single source of ESG metrics, add analytics and share results with your board.",
	},
	{
		keywords: []string{"board", "governance"},
		products: []string{"boardvantage", "analytics", "esg-data"},
		intro:    "To make board governance more efficient, these board management and insight tools work well together.",
	},
	{
		keywords: []string{"surveillance", "abuse", "trading"},
		products: []string{"surveillance", "analytics", "clearing"},
		intro:    "To detect market abuse, pair real-time surveillance with market analytics and clearing risk controls.",
	},
	{
		keywords: []string{"risk"},
		products: []string{"clearing", "surveillance", "analytics"},
		intro:    "To close risk management gaps, these clearing, monitoring and analytics solutions are a strong fit.",
	},
	{
		keywords: []string{"data", "analytics"},
		products: []string{"analytics", "esg-data", "surveillance"},
		intro:    "For market data and analytics, these solutions give you real-time and historical insight.",
	},
	{
		keywords: []string{"listing", "capital"},
		products: []string{"listing", "analytics", "boardvantage"},
		intro:    "For listing and capital access, these services support you before and after going public.",
	},
}

var defaultRecommendation = recommendationRule{
	products: []string{"boardvantage", "surveillance", "esg-data"},
	intro:    "Based on your answers, here are the solutions our clients use most.",
}

// Recommend picks the bundle for a problem. Exactly one rule fires.
func Recommend(problem string) (products []string, intro string) {
	lower := strings.ToLower(problem)
	for _, r := range recommendationRules {
		if containsAny(lower, r.keywords) {
			return r.products, r.intro
		}
	}
	return defaultRecommendation.products, defaultRecommendation.intro
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
