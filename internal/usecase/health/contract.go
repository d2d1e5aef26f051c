package health

import "context"

// StorePinger checks session store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker checks that the static catalog is usable.
type CatalogChecker interface {
	Check() error
}
