package finsite

import (
	"github.com/kailas-cloud/finsite/internal/catalog"
	domdlg "github.com/kailas-cloud/finsite/internal/domain/dialogue"
	"github.com/kailas-cloud/finsite/internal/domain/facet"
	"github.com/kailas-cloud/finsite/internal/domain/taxonomy"
	facetsuc "github.com/kailas-cloud/finsite/internal/usecase/facets"
	recommenduc "github.com/kailas-cloud/finsite/internal/usecase/recommend"
	searchuc "github.com/kailas-cloud/finsite/internal/usecase/search"
)

// Catalog types.
type (
	Product      = catalog.Product
	Resource     = catalog.Resource
	KeywordEntry = catalog.KeywordEntry
	AnswerCard   = catalog.AnswerCard
)

// Search types.
type (
	SearchResults = searchuc.Results
	Discovery     = searchuc.Discovery
	DiscoveryTab  = searchuc.Tab
)

// Drawer tabs.
const (
	TabSolutions = searchuc.TabSolutions
	TabMarket    = searchuc.TabMarket
)

// Facet types.
type (
	FacetDimension = facet.Dimension
	FacetTable     = facet.Table
	FacetView      = facetsuc.Summary
)

// Facet dimensions.
const (
	Industries     = facet.Industries
	ResourceTypes  = facet.ResourceTypes
	ProductClasses = facet.ProductClasses
	ProblemAreas   = facet.ProblemAreas
)

// Recommendation types.
type (
	Recommendations = recommenduc.Recommendations
	Destination     = recommenduc.Destination
	TaxonomyItem    = taxonomy.Item
	FAQ             = taxonomy.FAQ
)

// Advisor types.
type (
	Session        = domdlg.Session
	Message        = domdlg.Message
	ContactRequest = domdlg.ContactRequest
	DateOption     = domdlg.DateOption
)
