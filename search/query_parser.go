package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/prvnlhr/nexop-backend-sub001/models"
)

// ParsedQuery is the best-effort structured reading of a free-text query:
// an optional price constraint, catalog terms recognized in the text, and
// the residual free text left for tokenization. Its output is advisory
// input to the caller, not a hard gate on matching.
type ParsedQuery struct {
	Original        string             `json:"original"`
	Residual        string             `json:"residual"`
	Categories      []string           `json:"categories,omitempty"`
	AttributeValues []string           `json:"attribute_values,omitempty"`
	PriceRange      *models.PriceRange `json:"price_range,omitempty"`
}

var (
	maxPricePattern   = regexp.MustCompile(`(?i)\b(?:under|below|less than)\s+(\d+(?:\.\d+)?)`)
	priceSpanPattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)`)
	minPricePattern   = regexp.MustCompile(`(?i)\b(?:above|over|more than)\s+(\d+(?:\.\d+)?)`)
	residualSpaceTrim = regexp.MustCompile(`\s+`)
)

// ParseQuery extracts a price range and known catalog terms from free
// text. Price forms are tried in a fixed order — "under/below/less than N",
// "N-N", then "above/over/more than N" — and only the first matching form
// is honored. Recognized category names and attribute option values are
// stripped from the residual as they are found, so downstream tokenization
// operates on leftover text only.
func ParseQuery(query string, sig *models.CatalogSignature) *ParsedQuery {
	parsed := &ParsedQuery{Original: query}

	residual := strings.ToLower(query)
	residual, parsed.PriceRange = extractPriceRange(residual)

	if sig != nil {
		for _, category := range sig.Categories {
			name := strings.ToLower(category.Name)
			if name == "" || !strings.Contains(residual, name) {
				continue
			}
			parsed.Categories = append(parsed.Categories, category.Name)
			residual = strings.Replace(residual, name, " ", 1)
		}

		// Walk attributes in category order so recognition is deterministic.
		for _, category := range sig.Categories {
			for _, attribute := range sig.AttributesFor(category.ID) {
				for _, option := range attribute.Options {
					value := strings.ToLower(option.Value)
					if value == "" || !strings.Contains(residual, value) {
						continue
					}
					parsed.AttributeValues = append(parsed.AttributeValues, option.Value)
					residual = strings.Replace(residual, value, " ", 1)
				}
			}
		}
	}

	parsed.Residual = strings.TrimSpace(residualSpaceTrim.ReplaceAllString(residual, " "))
	return parsed
}

// extractPriceRange recognizes one price clause and removes it from the
// text. First matching form wins; later forms are not attempted.
func extractPriceRange(text string) (string, *models.PriceRange) {
	if m := maxPricePattern.FindStringSubmatchIndex(text); m != nil {
		max, _ := strconv.ParseFloat(text[m[2]:m[3]], 64)
		return text[:m[0]] + " " + text[m[1]:], &models.PriceRange{Max: &max}
	}
	if m := priceSpanPattern.FindStringSubmatchIndex(text); m != nil {
		min, _ := strconv.ParseFloat(text[m[2]:m[3]], 64)
		max, _ := strconv.ParseFloat(text[m[4]:m[5]], 64)
		if min > max {
			min, max = max, min
		}
		return text[:m[0]] + " " + text[m[1]:], &models.PriceRange{Min: &min, Max: &max}
	}
	if m := minPricePattern.FindStringSubmatchIndex(text); m != nil {
		min, _ := strconv.ParseFloat(text[m[2]:m[3]], 64)
		return text[:m[0]] + " " + text[m[1]:], &models.PriceRange{Min: &min}
	}
	return text, nil
}
