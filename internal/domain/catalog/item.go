// Package catalog holds the immutable product catalog domain model.
package catalog

import (
	"fmt"
	"strings"

	"github.com/stylesift/stylesift/internal/domain/token"
)

// Item is a single immutable product record.
type Item struct {
	title       string
	description string
	brand       string
	category    string
	styleTags   []string
	colors      []string
	priceUSD    float64
	rating      float64
	numReviews  int
}

// New validates and creates an Item. Title, brand and category are required,
// price must be non-negative. Description, style tags, colors, rating and
// review count are optional.
func New(
	title, description, brand, category string,
	styleTags, colors []string,
	priceUSD, rating float64, numReviews int,
) (Item, error) {
	if title == "" {
		return Item{}, fmt.Errorf("%w: title", ErrMissingField)
	}
	if brand == "" {
		return Item{}, fmt.Errorf("%w: brand", ErrMissingField)
	}
	if category == "" {
		return Item{}, fmt.Errorf("%w: category", ErrMissingField)
	}
	if priceUSD < 0 {
		return Item{}, fmt.Errorf("%w: price_usd must be non-negative, got %v", ErrInvalidField, priceUSD)
	}
	if rating < 0 {
		return Item{}, fmt.Errorf("%w: rating must be non-negative, got %v", ErrInvalidField, rating)
	}
	if numReviews < 0 {
		return Item{}, fmt.Errorf("%w: num_reviews must be non-negative, got %d", ErrInvalidField, numReviews)
	}
	return Item{
		title:       title,
		description: description,
		brand:       brand,
		category:    category,
		styleTags:   styleTags,
		colors:      colors,
		priceUSD:    priceUSD,
		rating:      rating,
		numReviews:  numReviews,
	}, nil
}

// Title returns the product title.
func (i *Item) Title() string { return i.title }

// Description returns the product description.
func (i *Item) Description() string { return i.description }

// Brand returns the brand name.
func (i *Item) Brand() string { return i.brand }

// Category returns the catalog category label.
func (i *Item) Category() string { return i.category }

// StyleTags returns the ordered style tags.
func (i *Item) StyleTags() []string { return i.styleTags }

// Colors returns the ordered color names.
func (i *Item) Colors() []string { return i.colors }

// PriceUSD returns the price in US dollars.
func (i *Item) PriceUSD() float64 { return i.priceUSD }

// Rating returns the average rating, 0 when unrated.
func (i *Item) Rating() float64 { return i.rating }

// NumReviews returns the review count.
func (i *Item) NumReviews() int { return i.numReviews }

// SearchTokens returns the distinct tokens found anywhere in the item's
// searchable fields: title, description, brand, category, style tags and
// colors, joined as one blob. Token membership is what matters downstream,
// not which field a token came from.
func (i *Item) SearchTokens() map[string]struct{} {
	fields := make([]string, 0, 4+len(i.styleTags)+len(i.colors))
	fields = append(fields, i.title, i.description, i.brand, i.category)
	fields = append(fields, i.styleTags...)
	fields = append(fields, i.colors...)
	return token.Set(strings.Join(fields, " "))
}

// TitleTokens returns the distinct tokens of the title alone, used for the
// title score boost.
func (i *Item) TitleTokens() map[string]struct{} {
	return token.Set(i.title)
}
