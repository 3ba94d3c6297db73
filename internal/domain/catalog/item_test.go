package catalog

import (
	"errors"
	"testing"
)

func validItem(t *testing.T) Item {
	t.Helper()
	item, err := New(
		"Satin Midi Dress", "Flowy satin midi dress for formal events.",
		"Lumine", "dress",
		[]string{"wedding guest", "formal"}, []string{"navy", "burgundy"},
		129.99, 4.5, 210,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return item
}

func TestNew_RequiredFields(t *testing.T) {
	tests := []struct {
		name                    string
		title, brand, category  string
	}{
		{"missing title", "", "Lumine", "dress"},
		{"missing brand", "Satin Midi Dress", "", "dress"},
		{"missing category", "Satin Midi Dress", "Lumine", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.title, "", tt.brand, tt.category, nil, nil, 10, 0, 0)
			if !errors.Is(err, ErrMissingField) {
				t.Errorf("expected ErrMissingField, got %v", err)
			}
		})
	}
}

func TestNew_InvalidValues(t *testing.T) {
	tests := []struct {
		name       string
		price      float64
		rating     float64
		numReviews int
	}{
		{"negative price", -1, 0, 0},
		{"negative rating", 10, -0.5, 0},
		{"negative reviews", 10, 0, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("Tee", "", "Brand", "top", nil, nil, tt.price, tt.rating, tt.numReviews)
			if !errors.Is(err, ErrInvalidField) {
				t.Errorf("expected ErrInvalidField, got %v", err)
			}
		})
	}
}

func TestNew_OptionalDefaults(t *testing.T) {
	item, err := New("Tee", "", "Brand", "top", nil, nil, 19.99, 0, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if item.Rating() != 0 {
		t.Errorf("Rating() = %v, want 0", item.Rating())
	}
	if item.NumReviews() != 0 {
		t.Errorf("NumReviews() = %d, want 0", item.NumReviews())
	}
	if item.Description() != "" {
		t.Errorf("Description() = %q, want empty", item.Description())
	}
}

func TestSearchTokens_UnionAcrossFields(t *testing.T) {
	item := validItem(t)

	tokens := item.SearchTokens()
	for _, want := range []string{"satin", "midi", "dress", "lumine", "wedding", "guest", "formal", "navy", "burgundy", "flowy"} {
		if _, ok := tokens[want]; !ok {
			t.Errorf("SearchTokens missing %q", want)
		}
	}
	if _, ok := tokens["sneakers"]; ok {
		t.Error("SearchTokens contains token from no field")
	}
}

func TestTitleTokens(t *testing.T) {
	item := validItem(t)

	title := item.TitleTokens()
	if _, ok := title["satin"]; !ok {
		t.Error("TitleTokens missing satin")
	}
	// Tokens from other fields must not leak into the title set.
	if _, ok := title["burgundy"]; ok {
		t.Error("TitleTokens contains non-title token")
	}
}
