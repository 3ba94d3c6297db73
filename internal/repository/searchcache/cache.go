// Package searchcache caches scored search results in a key-value store.
package searchcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/stylesift/stylesift/internal/db"
	"github.com/stylesift/stylesift/internal/domain/catalog"
	"github.com/stylesift/stylesift/internal/domain/search/result"
	"github.com/stylesift/stylesift/internal/domain/token"
)

const keyPrefix = "stylesift:results:"

// store is the consumer interface for the result cache.
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache is a cache-aside store of scored result lists. All failures degrade
// to a miss; the cache never fails a search.
type Cache struct {
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a result cache. cacheTotal is a counter vec with label
// "result" ("hit"/"miss"), passed explicitly.
func New(s store, ttl time.Duration, cacheTotal *prometheus.CounterVec, logger *zap.Logger) *Cache {
	return &Cache{store: s, ttl: ttl, cacheTotal: cacheTotal, logger: logger}
}

// Get returns the cached results for the query, if present and decodable.
func (c *Cache) Get(ctx context.Context, query string, topK int) ([]result.Result, bool) {
	key := c.cacheKey(query, topK)

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached results", zap.String("key", key), zap.Error(err))
		}
		c.incCache("miss")
		return nil, false
	}

	results, err := decodeResults(data)
	if err != nil {
		c.logger.Warn("Failed to decode cached results", zap.String("key", key), zap.Error(err))
		c.incCache("miss")
		return nil, false
	}

	c.incCache("hit")
	return results, true
}

// Put stores the results under the normalized query key.
func (c *Cache) Put(ctx context.Context, query string, topK int, results []result.Result) {
	key := c.cacheKey(query, topK)

	data, err := encodeResults(results)
	if err != nil {
		c.logger.Warn("Failed to encode results for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache results", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) incCache(outcome string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(outcome).Inc()
	}
}

// cacheKey hashes the tokenized query so formatting variants ("Dress!",
// "dress") share one entry, and appends topK since it changes the stored
// list.
func (c *Cache) cacheKey(query string, topK int) string {
	normalized := strings.Join(token.Tokenize(query), " ")
	h := sha256.Sum256([]byte(normalized))
	return keyPrefix + hex.EncodeToString(h[:]) + ":" + strconv.Itoa(topK)
}

// cachedResult is the wire form of one result. The item is embedded whole:
// cached hits rebuild their own items instead of referencing a catalog
// snapshot.
type cachedResult struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Brand        string   `json:"brand"`
	Category     string   `json:"category"`
	StyleTags    []string `json:"style_tags,omitempty"`
	Colors       []string `json:"colors,omitempty"`
	PriceUSD     float64  `json:"price_usd"`
	Rating       float64  `json:"rating"`
	NumReviews   int      `json:"num_reviews"`
	Score        float64  `json:"score"`
	MatchedTerms []string `json:"matched_terms"`
}

func encodeResults(results []result.Result) ([]byte, error) {
	dtos := make([]cachedResult, len(results))
	for i, r := range results {
		item := r.Item()
		dtos[i] = cachedResult{
			Title:        item.Title(),
			Description:  item.Description(),
			Brand:        item.Brand(),
			Category:     item.Category(),
			StyleTags:    item.StyleTags(),
			Colors:       item.Colors(),
			PriceUSD:     item.PriceUSD(),
			Rating:       item.Rating(),
			NumReviews:   item.NumReviews(),
			Score:        r.Score(),
			MatchedTerms: r.MatchedTerms(),
		}
	}
	data, err := json.Marshal(dtos)
	if err != nil {
		return nil, fmt.Errorf("marshal results: %w", err)
	}
	return data, nil
}

func decodeResults(data []byte) ([]result.Result, error) {
	var dtos []cachedResult
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("unmarshal results: %w", err)
	}

	results := make([]result.Result, 0, len(dtos))
	for i, d := range dtos {
		item, err := catalog.New(
			d.Title, d.Description, d.Brand, d.Category,
			d.StyleTags, d.Colors, d.PriceUSD, d.Rating, d.NumReviews,
		)
		if err != nil {
			return nil, fmt.Errorf("cached record %d: %w", i, err)
		}
		results = append(results, result.New(&item, d.Score, d.MatchedTerms))
	}
	return results, nil
}
