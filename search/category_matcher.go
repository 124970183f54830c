package search

import (
	"strings"

	"github.com/prvnlhr/nexop-backend-sub001/models"
)

// MaxCategoryMatches caps category fan-out to the caller.
const MaxCategoryMatches = 5

// MatchCategories resolves tokens against category names with basic
// singular/plural tolerance: a token matches a name equal to it, to it
// with a trailing "s" appended, or to it with a single trailing "s"
// stripped ("shoe"/"shoes"). Results keep the catalog's natural order
// and are capped at MaxCategoryMatches.
func MatchCategories(categories []models.CategorySummary, tokens []string) []models.CategorySummary {
	if len(tokens) == 0 || len(categories) == 0 {
		return nil
	}

	wanted := make(map[string]struct{}, len(tokens)*3)
	for _, token := range tokens {
		wanted[token] = struct{}{}
		wanted[token+"s"] = struct{}{}
		if strings.HasSuffix(token, "s") {
			wanted[strings.TrimSuffix(token, "s")] = struct{}{}
		}
	}

	var matches []models.CategorySummary
	for _, category := range categories {
		if _, ok := wanted[strings.ToLower(category.Name)]; ok {
			matches = append(matches, category)
			if len(matches) == MaxCategoryMatches {
				break
			}
		}
	}
	return matches
}
