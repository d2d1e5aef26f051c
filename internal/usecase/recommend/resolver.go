package recommend

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/finsite/internal/domain/taxonomy"
	"github.com/kailas-cloud/finsite/internal/logger"
)

// Limit caps both recommendation lists.
const Limit = 6

// Recommendations is the context-aware drawer content for one page.
type Recommendations struct {
	Related []taxonomy.Item
	FAQs    []taxonomy.FAQ
	// Fallback is true when the page was unknown and global defaults were returned.
	Fallback bool
}

// pageContext is what every provider sees.
type pageContext struct {
	current taxonomy.Item
	area    taxonomy.Item
}

// relatedProvider yields candidate related items for a page, in priority order.
type relatedProvider func(t Tree, pc pageContext) []taxonomy.Item

// faqProvider yields candidate questions for a page, in priority order.
type faqProvider func(t Tree, pc pageContext) []taxonomy.FAQ

// Resolver builds related pages and FAQs from a provider pipeline.
type Resolver struct {
	tree    Tree
	related []relatedProvider
	faqs    []faqProvider
}

// NewResolver creates a resolver with the standard fallback pipeline:
// page-specific, then parent area, then global.
func NewResolver(tree Tree) *Resolver {
	return &Resolver{
		tree:    tree,
		related: []relatedProvider{explicitRelated, siblings, otherAreas},
		faqs:    []faqProvider{pageFAQs, areaFAQs},
	}
}

// Resolve returns at most Limit related items and Limit FAQs for pageID.
// An unknown page yields the global default lists unmodified.
func (r *Resolver) Resolve(ctx context.Context, pageID string) Recommendations {
	current, ok := r.tree.Find(pageID)
	if !ok {
		d := r.tree.Defaults()
		logger.FromContext(ctx).Debug("Unknown page, using defaults", zap.String("page_id", pageID))
		return Recommendations{Related: d.Related, FAQs: d.FAQs, Fallback: true}
	}
	area, _ := r.tree.ParentArea(pageID)
	pc := pageContext{current: current, area: area}

	return Recommendations{
		Related: r.resolveRelated(pc),
		FAQs:    r.resolveFAQs(pc),
	}
}

func (r *Resolver) resolveRelated(pc pageContext) []taxonomy.Item {
	out := make([]taxonomy.Item, 0, Limit)
	seen := map[string]bool{pc.current.ID: true}
	for _, p := range r.related {
		for _, it := range p(r.tree, pc) {
			if len(out) == Limit {
				return out
			}
			if seen[it.ID] {
				continue
			}
			seen[it.ID] = true
			out = append(out, it)
		}
	}
	return out
}

func (r *Resolver) resolveFAQs(pc pageContext) []taxonomy.FAQ {
	out := make([]taxonomy.FAQ, 0, Limit)
	for _, p := range r.faqs {
		if len(out) >= Limit {
			break
		}
		out = append(out, p(r.tree, pc)...)
	}

	if len(out) < Limit {
		present := make(map[string]bool, len(out))
		for _, f := range out {
			present[f.ID] = true
		}
		for _, f := range r.tree.Defaults().FAQs {
			if len(out) == Limit {
				break
			}
			if !present[f.ID] {
				out = append(out, f)
			}
		}
	}

	if len(out) > Limit {
		out = out[:Limit]
	}
	return out
}

// explicitRelated resolves declared related ids. Unresolvable ids are skipped.
func explicitRelated(t Tree, pc pageContext) []taxonomy.Item {
	var out []taxonomy.Item
	for _, id := range t.Related(pc.current.ID) {
		if it, ok := t.Find(id); ok {
			out = append(out, it)
		}
	}
	return out
}

// siblings returns the children of the parent area.
func siblings(t Tree, pc pageContext) []taxonomy.Item {
	return t.Children(pc.area.ID)
}

// otherAreas returns the top-level areas.
func otherAreas(t Tree, _ pageContext) []taxonomy.Item {
	return t.Areas()
}

func pageFAQs(t Tree, pc pageContext) []taxonomy.FAQ {
	return t.FAQs(pc.current.ID)
}

// areaFAQs applies only when the page is not itself the area.
func areaFAQs(t Tree, pc pageContext) []taxonomy.FAQ {
	if t.IsArea(pc.current.ID) {
		return nil
	}
	return t.FAQs(pc.area.ID)
}
