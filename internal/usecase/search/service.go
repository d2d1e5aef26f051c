package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/finsite/internal/catalog"
	"github.com/kailas-cloud/finsite/internal/domain"
	"github.com/kailas-cloud/finsite/internal/logger"
)

// Rails reported to the Recorder.
const (
	RailProducts  = "products"
	RailResources = "resources"
	RailSuggest   = "suggest"
)

// Outcomes reported to the Recorder.
const (
	OutcomeAll      = "all"
	OutcomeMatch    = "match"
	OutcomeFallback = "fallback"
	OutcomeEmpty    = "empty"
)

// Drawer sizes.
const (
	drawerCategories = 4
	drawerSearches   = 6
	drawerNews       = 4
	drawerTickers    = 6
)

// DefaultSuggestLimit caps keyword suggestions when no limit is configured.
const DefaultSuggestLimit = 8

// Tab selects the discovery drawer content.
type Tab string

// Drawer tabs.
const (
	TabSolutions Tab = "solutions"
	TabMarket    Tab = "market"
)

// ResourceGroup holds the filtered resources of one type.
type ResourceGroup struct {
	Type      string
	Resources []catalog.Resource
}

// Results is the full search-results view for one query.
type Results struct {
	Query             string
	Answer            catalog.AnswerCard
	Products          []catalog.Product
	ProductsFallback  bool
	Resources         []catalog.Resource
	ResourcesFallback bool
	ResourceGroups    []ResourceGroup
}

// Discovery is the content of the empty-query drawer.
type Discovery struct {
	Tab             Tab
	Categories      []catalog.Category
	PopularSearches []string
	News            []catalog.News
	Tickers         []catalog.Ticker
}

// Service serves the product and resource rails, suggestions and the discovery drawer.
type Service struct {
	catalog      Catalog
	recorder     Recorder
	suggestLimit int
}

// New creates a search service. recorder can be nil.
func New(c Catalog, recorder Recorder, suggestLimit int) *Service {
	if suggestLimit <= 0 {
		suggestLimit = DefaultSuggestLimit
	}
	return &Service{catalog: c, recorder: recorder, suggestLimit: suggestLimit}
}

// Search filters both rails by query. A rail with no matches falls back to its full list.
func (s *Service) Search(ctx context.Context, query string) Results {
	query = strings.TrimSpace(query)

	products, pFallback := WithFallback(s.catalog.Products(), query)
	resources, rFallback := WithFallback(s.catalog.Resources(), query)

	card, ok := s.catalog.AnswerCard(answerCardKey(query))
	if !ok {
		card, _ = s.catalog.AnswerCard(defaultAnswerCard)
	}

	s.record(RailProducts, outcome(query, pFallback))
	s.record(RailResources, outcome(query, rFallback))

	logger.FromContext(ctx).Debug("Search",
		zap.String("query", query),
		zap.Int("products", len(products)),
		zap.Int("resources", len(resources)),
		zap.Bool("products_fallback", pFallback),
		zap.Bool("resources_fallback", rFallback),
	)

	return Results{
		Query:             query,
		Answer:            card,
		Products:          products,
		ProductsFallback:  pFallback,
		Resources:         resources,
		ResourcesFallback: rFallback,
		ResourceGroups:    groupByType(resources),
	}
}

// Suggest returns keyword entries matching query, capped at limit.
// A non-positive limit, or one above the configured cap, uses the configured cap.
// A blank query yields no suggestions.
func (s *Service) Suggest(_ context.Context, query string, limit int) []catalog.KeywordEntry {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if limit <= 0 || limit > s.suggestLimit {
		limit = s.suggestLimit
	}

	matched := Filter(s.catalog.Keywords(), query)
	if len(matched) > limit {
		matched = matched[:limit]
	}

	if len(matched) == 0 {
		s.record(RailSuggest, OutcomeEmpty)
	} else {
		s.record(RailSuggest, OutcomeMatch)
	}
	return matched
}

// Discover returns the drawer content for tab. An empty tab means solutions.
func (s *Service) Discover(_ context.Context, tab Tab) (Discovery, error) {
	switch tab {
	case "", TabSolutions:
		return Discovery{
			Tab:             TabSolutions,
			Categories:      head(s.catalog.Categories(), drawerCategories),
			PopularSearches: head(s.catalog.PopularSearches(), drawerSearches),
		}, nil
	case TabMarket:
		return Discovery{
			Tab:     TabMarket,
			News:    head(s.catalog.News(), drawerNews),
			Tickers: head(s.catalog.Tickers(), drawerTickers),
		}, nil
	default:
		return Discovery{}, fmt.Errorf("%w: unknown tab %q", domain.ErrValidation, tab)
	}
}

func (s *Service) record(rail, outcome string) {
	if s.recorder != nil {
		s.recorder.SearchQuery(rail, outcome)
	}
}

func outcome(query string, fallback bool) string {
	switch {
	case query == "":
		return OutcomeAll
	case fallback:
		return OutcomeFallback
	default:
		return OutcomeMatch
	}
}

// groupByType buckets resources by type in first-seen order.
func groupByType(resources []catalog.Resource) []ResourceGroup {
	var groups []ResourceGroup
	index := make(map[string]int)
	for _, r := range resources {
		i, ok := index[r.Type]
		if !ok {
			i = len(groups)
			index[r.Type] = i
			groups = append(groups, ResourceGroup{Type: r.Type})
		}
		groups[i].Resources = append(groups[i].Resources, r)
	}
	return groups
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
