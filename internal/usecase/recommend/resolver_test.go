package recommend

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/finsite/internal/catalog"
	"github.com/kailas-cloud/finsite/internal/domain/taxonomy"
)

func defaultResolver(t *testing.T) *Resolver {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return NewResolver(c.Taxonomy())
}

func ids(items []taxonomy.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func faqIDs(faqs []taxonomy.FAQ) []string {
	out := make([]string, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, f.ID)
	}
	return out
}

func TestResolve_NestedPageWithExplicitRelated(t *testing.T) {
	r := defaultResolver(t)
	rec := r.Resolve(context.Background(), "board-portal")

	assert.Equal(t, []string{
		"entity-management", "esg-reporting",
		"corporate-governance", "market-surveillance", "esg-sustainability", "market-analytics",
	}, ids(rec.Related))
	assert.Equal(t, []string{
		"bp-faq-1", "bp-faq-2", "cg-faq-1", "cg-faq-2", "g-faq-1", "g-faq-2",
	}, faqIDs(rec.FAQs))
	assert.False(t, rec.Fallback)
	assert.Equal(t, []string{"governance"}, rec.Related[0].Tags)
}

func TestResolve_RootPageWithoutDeclarations(t *testing.T) {
	r := defaultResolver(t)
	rec := r.Resolve(context.Background(), "clearing-settlement")

	assert.Equal(t, []string{
		"corporate-governance", "market-surveillance", "esg-sustainability", "market-analytics", "capital-markets",
	}, ids(rec.Related))
	assert.Equal(t, []string{
		"g-faq-1", "g-faq-2", "g-faq-3", "g-faq-4", "g-faq-5", "g-faq-6",
	}, faqIDs(rec.FAQs))
}

func TestResolve_AreaUsesChildrenThenOtherAreas(t *testing.T) {
	r := defaultResolver(t)
	rec := r.Resolve(context.Background(), "esg-sustainability")

	assert.Equal(t, []string{
		"esg-reporting", "carbon-accounting",
		"corporate-governance", "market-surveillance", "market-analytics", "clearing-settlement",
	}, ids(rec.Related))
	assert.Equal(t, []string{
		"esg-faq-1", "esg-faq-2", "esg-faq-3", "g-faq-1", "g-faq-2", "g-faq-3",
	}, faqIDs(rec.FAQs))
}

func TestResolve_UnknownPageReturnsDefaults(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	r := NewResolver(c.Taxonomy())

	rec := r.Resolve(context.Background(), "no-such-page")
	assert.True(t, rec.Fallback)
	assert.Equal(t, c.Taxonomy().Defaults().Related, rec.Related)
	assert.Equal(t, c.Taxonomy().Defaults().FAQs, rec.FAQs)
}

func TestResolve_BoundsAndNoSelfReference(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	r := NewResolver(c.Taxonomy())

	var all []string
	var walk func(id string)
	walk = func(id string) {
		all = append(all, id)
		for _, ch := range c.Taxonomy().Children(id) {
			walk(ch.ID)
		}
	}
	for _, a := range c.Taxonomy().Areas() {
		walk(a.ID)
	}

	for _, id := range all {
		rec := r.Resolve(context.Background(), id)
		assert.LessOrEqual(t, len(rec.Related), Limit, id)
		assert.LessOrEqual(t, len(rec.FAQs), Limit, id)
		assert.NotContains(t, ids(rec.Related), id)

		seen := map[string]bool{}
		for _, it := range rec.Related {
			assert.False(t, seen[it.ID], "duplicate %s on %s", it.ID, id)
			seen[it.ID] = true
		}
	}
}

func TestResolve_EmptyDefaults(t *testing.T) {
	tree, err := taxonomy.New([]taxonomy.Node{{ID: "solo", Href: "/solo"}}, taxonomy.Defaults{})
	require.NoError(t, err)

	rec := NewResolver(tree).Resolve(context.Background(), "solo")
	assert.Empty(t, rec.Related)
	assert.Empty(t, rec.FAQs)
}

func TestResolve_ExplicitRelatedCappedAtLimit(t *testing.T) {
	var children []taxonomy.Node
	var related []string
	for i := 0; i < 9; i++ {
		id := fmt.Sprintf("c%d", i)
		children = append(children, taxonomy.Node{ID: id})
		related = append(related, id)
	}
	children = append(children, taxonomy.Node{ID: "page", Related: related})
	tree, err := taxonomy.New([]taxonomy.Node{{ID: "area", Children: children}}, taxonomy.Defaults{})
	require.NoError(t, err)

	rec := NewResolver(tree).Resolve(context.Background(), "page")
	assert.Equal(t, []string{"c0", "c1", "c2", "c3", "c4", "c5"}, ids(rec.Related))
}

func TestResolve_DefaultFAQsDeduplicated(t *testing.T) {
	shared := taxonomy.FAQ{ID: "shared", Question: "Shared?"}
	tree, err := taxonomy.New(
		[]taxonomy.Node{{ID: "area", FAQs: []taxonomy.FAQ{shared}, Children: []taxonomy.Node{{ID: "leaf"}}}},
		taxonomy.Defaults{FAQs: []taxonomy.FAQ{shared, {ID: "g1"}, {ID: "g2"}}},
	)
	require.NoError(t, err)

	rec := NewResolver(tree).Resolve(context.Background(), "leaf")
	assert.Equal(t, []string{"shared", "g1", "g2"}, faqIDs(rec.FAQs))
}
