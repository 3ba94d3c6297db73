// Package result defines the search hit value type.
package result

import "github.com/stylesift/stylesift/internal/domain/catalog"

// Result is a single search hit. The item pointer is shared with the catalog
// snapshot the hit was scored against; results never copy or own items.
type Result struct {
	item         *catalog.Item
	score        float64
	matchedTerms []string
}

// New creates a search result. matchedTerms must already be distinct and
// sorted lexicographically.
func New(item *catalog.Item, score float64, matchedTerms []string) Result {
	return Result{item: item, score: score, matchedTerms: matchedTerms}
}

// Item returns the matched catalog item.
func (r *Result) Item() *catalog.Item { return r.item }

// Score returns the relevance score.
func (r *Result) Score() float64 { return r.score }

// MatchedTerms returns the distinct matched query tokens in lexicographic
// order. Display-only; not used in ranking.
func (r *Result) MatchedTerms() []string { return r.matchedTerms }
