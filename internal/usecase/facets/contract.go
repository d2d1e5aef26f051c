package facets

import (
	"context"

	"github.com/kailas-cloud/finsite/internal/domain/facet"
)

// Repository stores the selection of each search-results view.
type Repository interface {
	GetView(ctx context.Context, id string) (facet.Selection, error)
	SaveView(ctx context.Context, id string, sel facet.Selection) error
	DeleteView(ctx context.Context, id string) error
}

// Tables provides the static facet dimension tables.
type Tables interface {
	Facets() facet.Table
}
