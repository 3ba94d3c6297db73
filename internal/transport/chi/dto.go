package chi

import (
	"github.com/stylesift/stylesift/internal/domain/search/constraint"
	"github.com/stylesift/stylesift/internal/domain/search/result"
)

type searchResponse struct {
	Query       string           `json:"query"`
	TopK        int              `json:"top_k"`
	Constraints *constraintsJSON `json:"constraints,omitempty"`
	Results     []resultJSON     `json:"results"`
	Total       int              `json:"total"`
}

type constraintsJSON struct {
	BudgetMax  *float64 `json:"budget_max,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

type resultJSON struct {
	Title        string   `json:"title"`
	Brand        string   `json:"brand"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	PriceUSD     float64  `json:"price_usd"`
	Rating       float64  `json:"rating"`
	NumReviews   int      `json:"num_reviews"`
	Score        float64  `json:"score"`
	MatchedTerms []string `json:"matched_terms"`
}

func constraintsToJSON(c constraint.Constraints) *constraintsJSON {
	if c.IsEmpty() {
		return nil
	}
	return &constraintsJSON{
		BudgetMax:  c.BudgetMax(),
		Colors:     c.Colors(),
		Categories: c.Categories(),
	}
}

func resultsToJSON(results []result.Result) []resultJSON {
	out := make([]resultJSON, len(results))
	for i, r := range results {
		item := r.Item()
		out[i] = resultJSON{
			Title:        item.Title(),
			Brand:        item.Brand(),
			Category:     item.Category(),
			Description:  item.Description(),
			PriceUSD:     item.PriceUSD(),
			Rating:       item.Rating(),
			NumReviews:   item.NumReviews(),
			Score:        r.Score(),
			MatchedTerms: r.MatchedTerms(),
		}
	}
	return out
}
