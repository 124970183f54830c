package search

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/prvnlhr/nexop-backend-sub001/models"
)

// FacetParamPrefix marks a storefront query parameter as an attribute
// filter: attr_<attributeID>=<optionID>[,<optionID>...]. Keys without the
// prefix are ignored, never rejected.
const FacetParamPrefix = "attr_"

// ResolveFacets parses attribute-filter parameters against a category's
// attribute signature. Multiple option ids may arrive as a CSV value, a
// repeated key, or an array; all three collapse into one option-id set per
// attribute (repeats union, OR within an attribute).
//
// Unknown attribute ids and option ids outside the attribute's active
// options are dropped and echoed in the returned invalid list; resolution
// continues for the remaining parameters. Partial validity is not an
// error for the whole request.
func ResolveFacets(attributes []models.AttributeSignature, params url.Values) (models.FacetFilter, []string) {
	filter := make(models.FacetFilter)
	invalid := make([]string, 0)

	keys := make([]string, 0, len(params))
	for key := range params {
		if strings.HasPrefix(key, FacetParamPrefix) {
			keys = append(keys, key)
		}
	}
	// url.Values iteration order is random; keep the invalid echo stable.
	sort.Strings(keys)

	for _, key := range keys {
		attributeID, err := strconv.ParseUint(strings.TrimPrefix(key, FacetParamPrefix), 10, 32)
		if err != nil {
			invalid = append(invalid, key)
			continue
		}

		attribute := findAttribute(attributes, uint(attributeID))
		if attribute == nil {
			invalid = append(invalid, key)
			continue
		}

		active := make(map[uint]struct{}, len(attribute.Options))
		for _, option := range attribute.Options {
			active[option.ID] = struct{}{}
		}

		for _, raw := range params[key] {
			parsedAny := false
			for _, idText := range strings.Split(raw, ",") {
				idText = strings.TrimSpace(idText)
				if idText == "" {
					continue
				}
				optionID, err := strconv.ParseUint(idText, 10, 32)
				if err != nil {
					continue
				}
				parsedAny = true
				if _, ok := active[uint(optionID)]; !ok {
					invalid = append(invalid, key+"="+idText)
					continue
				}
				filter.Add(uint(attributeID), uint(optionID))
			}
			// A structurally unparseable option list drops this value
			// entirely for the attribute.
			if !parsedAny {
				invalid = append(invalid, key+"="+raw)
			}
		}
	}

	return filter, invalid
}

func findAttribute(attributes []models.AttributeSignature, id uint) *models.AttributeSignature {
	for i := range attributes {
		if attributes[i].ID == id {
			return &attributes[i]
		}
	}
	return nil
}

// FilterProducts applies a resolved facet filter to a category's products.
//
// With a non-empty filter, every ACTIVE variant whose assignments satisfy
// the filter becomes one match, priced and imaged from the variant itself.
// With an empty filter each product passes through unfiltered as a single
// entry carrying the product's base price and primary image.
func FilterProducts(sig *models.CatalogSignature, filter models.FacetFilter, products []models.Product) []models.VariantMatch {
	matches := make([]models.VariantMatch, 0, len(products))

	if len(filter) == 0 {
		for i := range products {
			product := &products[i]
			if product.Slug == "" {
				continue
			}
			matches = append(matches, models.VariantMatch{
				ID:    product.ID,
				Name:  product.Name,
				Slug:  product.Slug,
				Price: product.BasePrice,
				Image: product.PrimaryImage(),
				Product: models.ProductSummary{
					ID:   product.ID,
					Name: product.Name,
					Slug: product.Slug,
				},
				Attributes: make([]models.AttributePair, 0),
			})
		}
		return matches
	}

	for i := range products {
		product := &products[i]
		for j := range product.Variants {
			variant := &product.Variants[j]
			if variant.Status != models.VariantStatusActive {
				continue
			}
			if !filter.Matches(variant.Assignments) {
				continue
			}
			if variant.Product == nil {
				variant.Product = product
			}
			matched := buildMatches(sig, []models.Variant{*variant})
			matches = append(matches, matched...)
		}
	}
	return matches
}
