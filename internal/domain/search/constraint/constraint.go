// Package constraint extracts hard post-filters (budget, colors, categories)
// from free query text and applies them to scored results.
//
// Extraction is deliberately heuristic: colors and category keywords are
// matched as raw substrings of the lowercased query, so a color name embedded
// in a longer word is a known false positive. That behavior is kept for
// compatibility with how queries have always been interpreted.
package constraint

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/stylesift/stylesift/internal/domain/search/result"
)

// Constraints is a set of hard filters derived once from a query. A nil/empty
// field imposes no restriction.
type Constraints struct {
	budgetMax  *float64
	colors     []string
	categories []string
}

// New creates a Constraints value. Colors and categories are deduplicated and
// sorted; empty slices are treated as unset.
func New(budgetMax *float64, colors, categories []string) Constraints {
	return Constraints{
		budgetMax:  budgetMax,
		colors:     normalizeSet(colors),
		categories: normalizeSet(categories),
	}
}

// BudgetMax returns the price ceiling, nil when unset.
func (c Constraints) BudgetMax() *float64 { return c.budgetMax }

// Colors returns the sorted color set, nil when unset.
func (c Constraints) Colors() []string { return c.colors }

// Categories returns the sorted canonical category set, nil when unset.
func (c Constraints) Categories() []string { return c.categories }

// IsEmpty reports whether no constraint field is set.
func (c Constraints) IsEmpty() bool {
	return c.budgetMax == nil && len(c.colors) == 0 && len(c.categories) == 0
}

// Budget phrases. Pattern order is significant: the first pattern to match
// anywhere in the query wins, even when the other pattern matches earlier in
// the text. Multiple budget phrases never merge.
var budgetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:under|below|less\s+than)\s+\$?(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(?i)\$?(\d+(?:\.\d+)?)\s+(?:max|maximum|or\s+less)\b`),
}

// colorNames is the fixed color vocabulary. It intentionally carries both
// gray spellings and the two-word "navy blue"; a query saying "navy blue"
// also matches "navy" and "blue" on their own.
var colorNames = []string{
	"beige", "black", "blue", "brown", "burgundy", "cream", "gold",
	"gray", "green", "grey", "ivory", "navy", "navy blue", "olive",
	"orange", "pink", "purple", "red", "silver", "tan", "teal", "white", "yellow",
}

// categoryKeywords maps product-name keywords to canonical catalog category
// labels. Multi-word phrases are present so that, e.g., "wedding guest dress"
// is recognized before the bare "dress" it contains.
var categoryKeywords = map[string]string{
	"wedding guest dress": "dress",
	"cocktail dress":      "dress",
	"maxi dress":          "dress",
	"midi dress":          "dress",
	"dress":               "dress",
	"gown":                "dress",

	"blouse":   "top",
	"cardigan": "top",
	"shirt":    "top",
	"sweater":  "top",
	"t shirt":  "top",
	"tank top": "top",

	"jeans":    "bottom",
	"leggings": "bottom",
	"pants":    "bottom",
	"shorts":   "bottom",
	"skirt":    "bottom",
	"trousers": "bottom",

	"blazer":       "outerwear",
	"coat":         "outerwear",
	"jacket":       "outerwear",
	"puffer":       "outerwear",
	"trench coat":  "outerwear",
	"winter parka": "outerwear",

	"boots":    "shoes",
	"flats":    "shoes",
	"heels":    "shoes",
	"loafers":  "shoes",
	"sandals":  "shoes",
	"sneakers": "shoes",

	"belt":    "accessory",
	"clutch":  "accessory",
	"handbag": "accessory",
	"scarf":   "accessory",
	"tote":    "accessory",
}

// categoryKeys holds the keyword list ordered longest-first so multi-word
// phrases are tried before the shorter keywords they contain.
var categoryKeys = sortedCategoryKeys()

func sortedCategoryKeys() []string {
	keys := make([]string, 0, len(categoryKeywords))
	for k := range categoryKeywords {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Parse extracts budget, color and category constraints from query text.
// Pure and idempotent; independent of the scoring step, which consumes the
// same raw text separately.
func Parse(query string) Constraints {
	lowered := strings.ToLower(query)

	var budget *float64
	for _, p := range budgetPatterns {
		m := p.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		budget = &v
		break
	}

	var colors []string
	for _, name := range colorNames {
		if strings.Contains(lowered, name) {
			colors = append(colors, name)
		}
	}

	var categories []string
	for _, key := range categoryKeys {
		if strings.Contains(lowered, key) {
			categories = append(categories, categoryKeywords[key])
		}
	}

	return New(budget, colors, categories)
}

// Filter drops results whose item violates a set constraint:
//   - price above the budget ceiling;
//   - category equal to no constraint category (exact, case-sensitive,
//     against the catalog's own category field);
//   - colors sharing no element, case-insensitively, with the color set.
//
// Survivors keep their relative order; an empty Constraints returns the
// input unchanged.
func Filter(results []result.Result, c Constraints) []result.Result {
	if c.IsEmpty() {
		return results
	}

	kept := make([]result.Result, 0, len(results))
	for _, r := range results {
		item := r.Item()

		if c.budgetMax != nil && item.PriceUSD() > *c.budgetMax {
			continue
		}
		if len(c.categories) > 0 && !containsString(c.categories, item.Category()) {
			continue
		}
		if len(c.colors) > 0 && !anyColorMatch(item.Colors(), c.colors) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

func anyColorMatch(itemColors, wanted []string) bool {
	for _, ic := range itemColors {
		if containsString(wanted, strings.ToLower(ic)) {
			return true
		}
	}
	return false
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func normalizeSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
