// Package search scores catalog items against query tokens and returns a
// ranked, capped result list.
package search

import (
	"context"
	"fmt"
	"sort"

	"github.com/stylesift/stylesift/internal/domain/search/constraint"
	"github.com/stylesift/stylesift/internal/domain/search/result"
	"github.com/stylesift/stylesift/internal/domain/token"
)

// DefaultTopK is the result cap used when a caller does not specify one.
const DefaultTopK = 8

// titleBoost is the extra score per distinct query token also present in the
// item's title. It double-counts title tokens relative to the base match
// count on purpose.
const titleBoost = 0.5

// Service runs keyword search over a catalog snapshot.
type Service struct {
	catalog     Provider
	cache       ResultCache
	defaultTopK int
}

// New creates a search service.
func New(catalog Provider) *Service {
	return &Service{catalog: catalog, defaultTopK: DefaultTopK}
}

// WithCache attaches an optional result cache.
func (s *Service) WithCache(cache ResultCache) *Service {
	s.cache = cache
	return s
}

// WithDefaultTopK overrides the default result cap.
func (s *Service) WithDefaultTopK(k int) *Service {
	if k > 0 {
		s.defaultTopK = k
	}
	return s
}

// DefaultTopK returns the result cap applied when a caller omits one.
func (s *Service) DefaultTopK() int { return s.defaultTopK }

// Search tokenizes the query, scores every catalog item against the distinct
// query tokens, and returns results ordered by score desc, rating desc,
// price asc, truncated to topK. A query with no tokens returns an empty list
// without touching the catalog; topK <= 0 also returns an empty list. Items
// matching no query token are excluded entirely.
func (s *Service) Search(ctx context.Context, query string, topK int) ([]result.Result, error) {
	qTokens := token.Tokenize(query)
	if len(qTokens) == 0 || topK <= 0 {
		return nil, nil
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, query, topK); ok {
			return cached, nil
		}
	}

	items, err := s.catalog.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	qSet := make(map[string]struct{}, len(qTokens))
	for _, t := range qTokens {
		qSet[t] = struct{}{}
	}

	var results []result.Result
	for idx := range items {
		item := &items[idx]
		haystack := item.SearchTokens()

		matched := make([]string, 0, len(qSet))
		for t := range qSet {
			if _, ok := haystack[t]; ok {
				matched = append(matched, t)
			}
		}
		if len(matched) == 0 {
			continue
		}
		sort.Strings(matched)

		titleTokens := item.TitleTokens()
		titleMatches := 0
		for t := range qSet {
			if _, ok := titleTokens[t]; ok {
				titleMatches++
			}
		}

		score := float64(len(matched)) + titleBoost*float64(titleMatches)
		results = append(results, result.New(item, score, matched))
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := &results[i], &results[j]
		if a.Score() != b.Score() {
			return a.Score() > b.Score()
		}
		if a.Item().Rating() != b.Item().Rating() {
			return a.Item().Rating() > b.Item().Rating()
		}
		return a.Item().PriceUSD() < b.Item().PriceUSD()
	})

	if len(results) > topK {
		results = results[:topK]
	}

	if s.cache != nil {
		s.cache.Put(ctx, query, topK, results)
	}

	return results, nil
}

// SearchFiltered runs Search, then parses constraints from the same raw
// query text and drops results violating them. The returned constraints are
// whatever Parse extracted, for display.
func (s *Service) SearchFiltered(
	ctx context.Context, query string, topK int,
) ([]result.Result, constraint.Constraints, error) {
	results, err := s.Search(ctx, query, topK)
	if err != nil {
		return nil, constraint.Constraints{}, err
	}
	cons := constraint.Parse(query)
	return constraint.Filter(results, cons), cons, nil
}
