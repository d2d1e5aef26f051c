package search

import "github.com/kailas-cloud/finsite/internal/catalog"

// Catalog is the read-only data the search service filters.
type Catalog interface {
	Products() []catalog.Product
	Resources() []catalog.Resource
	Keywords() []catalog.KeywordEntry
	AnswerCard(key string) (catalog.AnswerCard, bool)
	Categories() []catalog.Category
	PopularSearches() []string
	News() []catalog.News
	Tickers() []catalog.Ticker
}

// Recorder counts search outcomes per rail.
type Recorder interface {
	SearchQuery(rail, outcome string)
}
