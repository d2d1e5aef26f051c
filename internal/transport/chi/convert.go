package chi

import (
	domdlg "github.com/kailas-cloud/finsite/internal/domain/dialogue"
	"github.com/kailas-cloud/finsite/internal/domain/facet"
	facetsuc "github.com/kailas-cloud/finsite/internal/usecase/facets"
	recommenduc "github.com/kailas-cloud/finsite/internal/usecase/recommend"
	searchuc "github.com/kailas-cloud/finsite/internal/usecase/search"
)

func searchToAPI(r searchuc.Results) SearchResponse {
	groups := make([]ResourceGroupResponse, len(r.ResourceGroups))
	for i, g := range r.ResourceGroups {
		groups[i] = ResourceGroupResponse{Type: g.Type, Resources: g.Resources}
	}
	return SearchResponse{
		Query:             r.Query,
		Answer:            r.Answer,
		Products:          r.Products,
		ProductsFallback:  r.ProductsFallback,
		Resources:         r.Resources,
		ResourcesFallback: r.ResourcesFallback,
		ResourceGroups:    groups,
	}
}

func discoveryToAPI(d searchuc.Discovery) DiscoverResponse {
	return DiscoverResponse{
		Tab:             string(d.Tab),
		Categories:      d.Categories,
		PopularSearches: d.PopularSearches,
		News:            d.News,
		Tickers:         d.Tickers,
	}
}

func facetTableToAPI(t facet.Table) FacetTableResponse {
	dims := make([]FacetDimensionResponse, 0, len(facet.Dimensions))
	for _, d := range facet.Dimensions {
		entries := t[d]
		if entries == nil {
			entries = []facet.Entry{}
		}
		dims = append(dims, FacetDimensionResponse{Dimension: string(d), Entries: entries})
	}
	return FacetTableResponse{Dimensions: dims}
}

func facetViewToAPI(s facetsuc.Summary) FacetViewResponse {
	selected := make(map[string][]string, len(s.Selected))
	for d, ids := range s.Selected {
		selected[string(d)] = ids
	}
	labels := s.ActiveLabels
	if labels == nil {
		labels = []string{}
	}
	return FacetViewResponse{
		ID:           s.ID,
		Selected:     selected,
		ActiveCount:  s.ActiveCount,
		ActiveLabels: labels,
	}
}

func recommendationsToAPI(page string, r recommenduc.Recommendations) RecommendationsResponse {
	return RecommendationsResponse{
		Page:     page,
		Related:  r.Related,
		FAQs:     r.FAQs,
		Fallback: r.Fallback,
	}
}

func destinationToAPI(d recommenduc.Destination) DestinationResponse {
	return DestinationResponse{Kind: string(d.Kind), Page: d.Page, Query: d.Query}
}

func conversationToAPI(s *domdlg.Session) ConversationResponse {
	resp := ConversationResponse{
		ID:            s.ID(),
		Stage:         string(s.Stage()),
		Profile:       s.Profile(),
		RolesExpanded: s.RolesExpanded(),
		Messages:      s.Messages(),
		Recommended:   s.Recommended(),
	}
	if resp.Messages == nil {
		resp.Messages = []domdlg.Message{}
	}
	if f := s.Form(); f != nil {
		resp.DemoForm = &DemoFormResponse{
			Product:    f.Product(),
			Step:       f.Step(),
			Fields:     f.Fields(),
			Missing:    f.Missing(),
			CanAdvance: f.CanAdvance(),
		}
	}
	return resp
}
