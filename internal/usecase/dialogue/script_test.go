package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domdlg "github.com/kailas-cloud/finsite/internal/domain/dialogue"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		intent Intent
	}{
		{"esg", "Tell me about ESG", IntentESG},
		{"compliance", "we have compliance issues", IntentSurveillance},
		{"surveillance", "Surveillance tooling?", IntentSurveillance},
		{"board", "How do board portals work", IntentBoard},
		{"governance", "governance", IntentBoard},
		{"demo", "Can I get a demonstration", IntentDemo},
		{"pricing", "What's your pricing?", IntentPricing},
		{"cost", "how much does it cost", IntentPricing},
		{"compare", "what is the difference", IntentCompare},
		{"empty", "", IntentDefault},
		{"unmatched", "hello there", IntentDefault},
		// first rule wins
		{"esg before demo", "ESG demo please", IntentESG},
		{"board before pricing", "board portal price", IntentBoard},
		{"demo before pricing", "demo and pricing", IntentDemo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Classify(tt.text, domdlg.Profile{}, nil)
			assert.Equal(t, tt.intent, r.Intent)
			assert.NotEmpty(t, r.Content)
		})
	}
}

func TestClassify_Actions(t *testing.T) {
	r := Classify("pricing", domdlg.Profile{}, nil)
	assert.Equal(t, []domdlg.Action{actionContactSales}, r.Actions)

	r = Classify("surveillance", domdlg.Profile{}, nil)
	assert.Equal(t, []domdlg.Action{actionBookDemo, actionContactSales}, r.Actions)

	r = Classify("anything", domdlg.Profile{}, nil)
	assert.Equal(t, []domdlg.Action{actionBookDemo, actionContactSales}, r.Actions)
}

func TestClassify_CompareEchoesRecommended(t *testing.T) {
	rec := []domdlg.Item{
		{ID: "boardvantage", Name: "Nasdaq Boardvantage®", Benefit: "Board management"},
		{ID: "analytics", Name: "Market Analytics", Benefit: "Insight"},
	}
	r := Classify("compare these", domdlg.Profile{}, rec)
	assert.Equal(t, IntentCompare, r.Intent)
	assert.Contains(t, r.Content, "Nasdaq Boardvantage® (Board management)")
	assert.Contains(t, r.Content, "Nasdaq Boardvantage® or Market Analytics?")

	r = Classify("compare", domdlg.Profile{}, nil)
	assert.Equal(t, []domdlg.Action{actionBrowse}, r.Actions)
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		problem string
		first   string
	}{
		{"Regulatory compliance challenges", "surveillance"},
		{"ESG reporting complexity", "esg-data"},
		{"Board governance inefficiencies", "boardvantage"},
		{"Market abuse detection", "surveillance"},
		{"Risk management gaps", "clearing"},
		{"Market data and analytics needs", "analytics"},
		{"Listing and capital access", "listing"},
		{"something else", "boardvantage"},
	}
	for _, tt := range tests {
		t.Run(tt.problem, func(t *testing.T) {
			products, intro := Recommend(tt.problem)
			assert.Equal(t, tt.first, products[0])
			assert.Len(t, products, 3)
			assert.NotEmpty(t, intro)
		})
	}
}

func TestRecommend_FirstMatchWins(t *testing.T) {
	tests := []struct {
		problem string
		want    []string
	}{
		{"compliance ESG reporting", []string{"surveillance", "esg-data", "boardvantage"}},
		{"board reporting", []string{"esg-data", "analytics", "boardvantage"}},
		{"board oversight of trading", []string{"boardvantage", "analytics", "esg-data"}},
		{"trading risk", []string{"surveillance", "analytics", "clearing"}},
		{"risk data", []string{"clearing", "surveillance", "analytics"}},
		{"capital markets data", []string{"analytics", "esg-data", "surveillance"}},
	}
	for _, tt := range tests {
		t.Run(tt.problem, func(t *testing.T) {
			products, _ := Recommend(tt.problem)
			assert.Equal(t, tt.want, products)
		})
	}
}

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "", joinNames(nil))
	assert.Equal(t, "a", joinNames([]string{"a"}))
	assert.Equal(t, "a or b", joinNames([]string{"a", "b"}))
	assert.Equal(t, "a, b or c", joinNames([]string{"a", "b", "c"}))
}
