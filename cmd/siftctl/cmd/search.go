package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stylesift/stylesift/internal/domain/search/constraint"
	"github.com/stylesift/stylesift/internal/domain/search/result"
	"github.com/stylesift/stylesift/internal/output"
	catalogrepo "github.com/stylesift/stylesift/internal/repository/catalog"
	searchuc "github.com/stylesift/stylesift/internal/usecase/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog by keyword",
	Long: `Search the catalog with a free-text query. Constraints found in the
query text (budget, colors, category) are applied as filters unless
--raw is given.

Examples:
  siftctl search "winter wedding guest dress under $150"
  siftctl search --top-k 3 "satin heels"
  siftctl search --raw "gold dress"
  siftctl search --json "navy blue top" | jq .`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().Int("top-k", searchuc.DefaultTopK, "maximum number of results")
	searchCmd.Flags().Bool("raw", false, "skip constraint filtering")
	searchCmd.Flags().Bool("json", false, "output as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	topK, _ := cmd.Flags().GetInt("top-k")
	raw, _ := cmd.Flags().GetBool("raw")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	repo := catalogrepo.New(catalogPath)
	svc := searchuc.New(repo)

	ctx := context.Background()

	var (
		results     []result.Result
		constraints constraint.Constraints
		err         error
	)
	if raw {
		results, err = svc.Search(ctx, query, topK)
	} else {
		results, constraints, err = svc.SearchFiltered(ctx, query, topK)
	}
	if err != nil {
		return fmt.Errorf("searching catalog: %w", err)
	}

	if jsonOutput {
		return outputSearchJSON(query, topK, constraints, results)
	}

	printer := output.NewPrinter(!noColor && output.ResolveColors())
	return outputSearchTable(printer, query, constraints, results)
}

type searchJSON struct {
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
	PriceUSD     float64  `json:"price_usd"`
	Rating       float64  `json:"rating"`
	NumReviews   int      `json:"num_reviews"`
	Colors       []string `json:"colors,omitempty"`
	StyleTags    []string `json:"style_tags,omitempty"`
	Score        float64  `json:"score"`
	MatchedTerms []string `json:"matched_terms,omitempty"`
}

func outputSearchJSON(query string, topK int, c constraint.Constraints, results []result.Result) error {
	resp := searchJSON{
		Query:   query,
		TopK:    topK,
		Results: make([]resultJSON, 0, len(results)),
		Total:   len(results),
	}
	if !c.IsEmpty() {
		resp.Constraints = &constraintsJSON{
			BudgetMax:  c.BudgetMax(),
			Colors:     c.Colors(),
			Categories: c.Categories(),
		}
	}
	for i := range results {
		item := results[i].Item()
		resp.Results = append(resp.Results, resultJSON{
			Title:        item.Title(),
			Brand:        item.Brand(),
			Category:     item.Category(),
			PriceUSD:     item.PriceUSD(),
			Rating:       item.Rating(),
			NumReviews:   item.NumReviews(),
			Colors:       item.Colors(),
			StyleTags:    item.StyleTags(),
			Score:        results[i].Score(),
			MatchedTerms: results[i].MatchedTerms(),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func outputSearchTable(printer *output.Printer, query string, c constraint.Constraints, results []result.Result) error {
	printer.Header(fmt.Sprintf("Results for %q", query))

	if !c.IsEmpty() {
		var parts []string
		if budget := c.BudgetMax(); budget != nil {
			parts = append(parts, fmt.Sprintf("budget ≤ $%.2f", *budget))
		}
		if colors := c.Colors(); len(colors) > 0 {
			parts = append(parts, "colors: "+strings.Join(colors, ", "))
		}
		if categories := c.Categories(); len(categories) > 0 {
			parts = append(parts, "categories: "+strings.Join(categories, ", "))
		}
		printer.Info("Constraints: %s", strings.Join(parts, " · "))
	}

	if len(results) == 0 {
		printer.Print("No matches found.")
		return nil
	}

	table := output.NewTable([]string{"TITLE", "BRAND", "CATEGORY", "PRICE", "RATING", "SCORE", "MATCHED"})
	for i := range results {
		item := results[i].Item()
		table.AddRow([]string{
			printer.Bold(item.Title()),
			item.Brand(),
			item.Category(),
			fmt.Sprintf("$%.2f", item.PriceUSD()),
			fmt.Sprintf("%.1f (%d)", item.Rating(), item.NumReviews()),
			fmt.Sprintf("%.1f", results[i].Score()),
			printer.Dim(strings.Join(results[i].MatchedTerms(), ", ")),
		})
	}
	table.Render()
	fmt.Println()
	printer.Info("%d result(s)", len(results))
	return nil
}
