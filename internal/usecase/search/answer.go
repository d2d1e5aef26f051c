package search

import "strings"

// answerRule picks an answer card when the lower-cased query contains keyword.
type answerRule struct {
	keyword string
	card    string
}

// answerRules are evaluated in order; the first match wins.
var answerRules = []answerRule{
	{keyword: "esg", card: "esg"},
	{keyword: "surveillance", card: "surveillance"},
	{keyword: "board", card: "boardvantage"},
}

const defaultAnswerCard = "default"

// answerCardKey returns the catalog key of the card for query.
func answerCardKey(query string) string {
	q := strings.ToLower(query)
	for _, r := range answerRules {
		if strings.Contains(q, r.keyword) {
			return r.card
		}
	}
	return defaultAnswerCard
}
