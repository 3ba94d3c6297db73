// Package catalog loads the product catalog from its JSON source file.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	domcat "github.com/stylesift/stylesift/internal/domain/catalog"
)

// Repository serves an immutable catalog snapshot read once from a JSON
// file. The load happens on first use and is guarded for concurrent callers;
// a failed load is sticky and surfaces on every call.
type Repository struct {
	path  string
	once  sync.Once
	items []domcat.Item
	err   error
}

// New creates a file-backed repository. The path comes from configuration;
// there is no process-wide default.
func New(path string) *Repository {
	return &Repository{path: path}
}

// FromItems creates a repository over a pre-loaded catalog, bypassing the
// file source entirely.
func FromItems(items []domcat.Item) *Repository {
	r := &Repository{items: items}
	r.once.Do(func() {})
	return r
}

// Items returns the catalog snapshot, loading it on first call.
func (r *Repository) Items(_ context.Context) ([]domcat.Item, error) {
	r.once.Do(r.load)
	return r.items, r.err
}

func (r *Repository) load() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.err = fmt.Errorf("read catalog %s: %w", r.path, err)
		return
	}

	var dtos []itemDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		r.err = fmt.Errorf("parse catalog %s: %w", r.path, err)
		return
	}

	items := make([]domcat.Item, 0, len(dtos))
	for i, dto := range dtos {
		item, err := dto.toDomain()
		if err != nil {
			r.err = fmt.Errorf("catalog %s: record %d: %w", r.path, i, err)
			return
		}
		items = append(items, item)
	}
	r.items = items
}
