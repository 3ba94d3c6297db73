package catalog

import (
	"fmt"

	domcat "github.com/stylesift/stylesift/internal/domain/catalog"
)

// itemDTO is the wire form of one catalog record. price_usd is a pointer so
// an absent field is distinguishable from an explicit zero; the other
// required fields fail validation on their zero value anyway.
type itemDTO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	StyleTags   []string `json:"style_tags"`
	Colors      []string `json:"colors"`
	PriceUSD    *float64 `json:"price_usd"`
	Rating      float64  `json:"rating"`
	NumReviews  int      `json:"num_reviews"`
}

// toDomain validates the record and builds the domain item, plugging in
// defaults for the optional fields.
func (d itemDTO) toDomain() (domcat.Item, error) {
	if d.PriceUSD == nil {
		return domcat.Item{}, fmt.Errorf("%w: price_usd", domcat.ErrMissingField)
	}
	return domcat.New(
		d.Title, d.Description, d.Brand, d.Category,
		d.StyleTags, d.Colors,
		*d.PriceUSD, d.Rating, d.NumReviews,
	)
}
