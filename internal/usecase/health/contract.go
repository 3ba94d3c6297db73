package health

import (
	"context"

	"github.com/stylesift/stylesift/internal/domain/catalog"
)

// CatalogReader loads the catalog snapshot for availability checks.
type CatalogReader interface {
	Items(ctx context.Context) ([]catalog.Item, error)
}

// CachePinger checks result-cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}
