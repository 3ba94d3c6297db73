package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	domcat "github.com/stylesift/stylesift/internal/domain/catalog"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

const validCatalog = `[
  {
    "title": "Satin Midi Dress",
    "description": "Flowy satin midi dress.",
    "brand": "Lumine",
    "category": "dress",
    "style_tags": ["wedding guest", "formal"],
    "colors": ["navy", "burgundy"],
    "price_usd": 129.99,
    "rating": 4.5,
    "num_reviews": 210
  },
  {
    "title": "Basic Tee",
    "brand": "Plainly",
    "category": "top",
    "price_usd": 19.99
  }
]`

func TestItems_LoadsAndDefaults(t *testing.T) {
	repo := New(writeCatalog(t, validCatalog))

	items, err := repo.Items(context.Background())
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("loaded %d items, want 2", len(items))
	}

	tee := items[1]
	if tee.Rating() != 0 || tee.NumReviews() != 0 {
		t.Errorf("optional fields not defaulted: rating=%v reviews=%d", tee.Rating(), tee.NumReviews())
	}
	if tee.Colors() != nil || tee.StyleTags() != nil {
		t.Errorf("optional lists not defaulted: colors=%v tags=%v", tee.Colors(), tee.StyleTags())
	}
}

func TestItems_LoadsOnce(t *testing.T) {
	path := writeCatalog(t, validCatalog)
	repo := New(path)

	if _, err := repo.Items(context.Background()); err != nil {
		t.Fatalf("Items: %v", err)
	}

	// Removing the file after the first load must not matter.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	items, err := repo.Items(context.Background())
	if err != nil {
		t.Fatalf("Items after remove: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("snapshot lost after source removal: %d items", len(items))
	}
}

func TestItems_MissingFile(t *testing.T) {
	repo := New(filepath.Join(t.TempDir(), "nope.json"))

	if _, err := repo.Items(context.Background()); err == nil {
		t.Fatal("expected load error for missing file")
	}
}

func TestItems_MalformedJSON(t *testing.T) {
	repo := New(writeCatalog(t, `{"not": "an array"`))

	if _, err := repo.Items(context.Background()); err == nil {
		t.Fatal("expected parse error for malformed JSON")
	}
}

func TestItems_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no title", `[{"brand":"B","category":"top","price_usd":10}]`},
		{"no brand", `[{"title":"T","category":"top","price_usd":10}]`},
		{"no category", `[{"title":"T","brand":"B","price_usd":10}]`},
		{"no price", `[{"title":"T","brand":"B","category":"top"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := New(writeCatalog(t, tt.body))
			_, err := repo.Items(context.Background())
			if !errors.Is(err, domcat.ErrMissingField) {
				t.Errorf("error = %v, want ErrMissingField", err)
			}
		})
	}
}

func TestItems_InvalidFieldValue(t *testing.T) {
	repo := New(writeCatalog(t, `[{"title":"T","brand":"B","category":"top","price_usd":-5}]`))

	_, err := repo.Items(context.Background())
	if !errors.Is(err, domcat.ErrInvalidField) {
		t.Errorf("error = %v, want ErrInvalidField", err)
	}
}

func TestFromItems(t *testing.T) {
	item, err := domcat.New("T", "", "B", "top", nil, nil, 10, 0, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	repo := FromItems([]domcat.Item{item})

	items, err := repo.Items(context.Background())
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 || items[0].Title() != "T" {
		t.Errorf("pre-loaded catalog not served: %v", items)
	}
}
