package search

import (
	"context"

	"github.com/stylesift/stylesift/internal/domain/catalog"
	"github.com/stylesift/stylesift/internal/domain/search/result"
)

// Provider supplies the catalog snapshot to score against. Implementations
// must return a stable slice: result pointers reference its elements.
type Provider interface {
	Items(ctx context.Context) ([]catalog.Item, error)
}

// ResultCache stores scored result lists keyed by query and topK.
// A miss is (nil, false); cache failures must degrade to a miss.
type ResultCache interface {
	Get(ctx context.Context, query string, topK int) ([]result.Result, bool)
	Put(ctx context.Context, query string, topK int, results []result.Result)
}
