package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type doc struct {
	name, text string
}

func (d doc) SearchFields() []string { return []string{d.name, d.text} }

var docs = []doc{
	{"ESG Portal", "metrics and scores"},
	{"Board Portal", "meetings"},
	{"Surveillance", "detect abuse; esg flags"},
	{"Clearing", "risk"},
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		assert.Equal(t, docs, Filter(docs, q), "query %q", q)
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	got := Filter(docs, "EsG")
	assert.Equal(t, []doc{docs[0], docs[2]}, got)

	got = Filter(docs, "portal")
	assert.Equal(t, []doc{docs[0], docs[1]}, got)
}

func TestFilter_EveryResultMatchesAndNothingMissing(t *testing.T) {
	for _, q := range []string{"e", "or", "risk", "zzz", "abuse"} {
		got := Filter(docs, q)
		for _, d := range got {
			assert.True(t, containsAny(d, q), "%+v does not contain %q", d, q)
		}
		for _, d := range docs {
			if containsAny(d, q) {
				assert.Contains(t, got, d)
			}
		}
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(docs, "o")
	var last = -1
	for _, d := range got {
		idx := indexOf(docs, d)
		assert.Greater(t, idx, last)
		last = idx
	}
}

func TestFilter_EmptyCollection(t *testing.T) {
	assert.Empty(t, Filter([]doc{}, "esg"))
	assert.Empty(t, Filter[doc](nil, "esg"))
}

func TestWithFallback(t *testing.T) {
	got, fallback := WithFallback(docs, "nothing-matches")
	assert.True(t, fallback)
	assert.Equal(t, docs, got)

	got, fallback = WithFallback(docs, "clearing")
	assert.False(t, fallback)
	assert.Equal(t, []doc{docs[3]}, got)

	got, fallback = WithFallback([]doc{}, "x")
	assert.False(t, fallback)
	assert.Empty(t, got)
}

func TestAnswerCardKey_FirstMatchWins(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"ESG reporting", "esg"},
		{"esg surveillance board", "esg"},
		{"Market Surveillance", "surveillance"},
		{"surveillance for the board", "surveillance"},
		{"Board meeting", "boardvantage"},
		{"clearing", "default"},
		{"", "default"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, answerCardKey(tt.query), "query %q", tt.query)
	}
}

func containsAny(d doc, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(d.name), q) || strings.Contains(strings.ToLower(d.text), q)
}

func indexOf(list []doc, d doc) int {
	for i, x := range list {
		if x == d {
			return i
		}
	}
	return -1
}
