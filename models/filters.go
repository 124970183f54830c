package models

// FacetFilter maps an attribute id to the set of option ids a client
// selected for it. Built per request by the facet resolver; never persisted.
type FacetFilter map[uint]map[uint]struct{}

// Add records one option id for an attribute, unioning with any options
// already selected for the same attribute.
func (f FacetFilter) Add(attributeID, optionID uint) {
	set, ok := f[attributeID]
	if !ok {
		set = make(map[uint]struct{})
		f[attributeID] = set
	}
	set[optionID] = struct{}{}
}

// Matches reports whether a variant's assignments satisfy the filter:
// AND across attributes, OR within an attribute's option set. A variant
// lacking an assignment for a filtered attribute does not match. An empty
// filter matches everything.
func (f FacetFilter) Matches(assignments AssignmentList) bool {
	for attributeID, options := range f {
		matched := false
		for _, a := range assignments {
			if a.AttributeID != attributeID {
				continue
			}
			if _, ok := options[a.OptionID]; ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// FilterMetadata is the storefront "available filters" payload for one
// category: its filterable attributes plus the store price range.
type FilterMetadata struct {
	Attributes []AttributeSignature `json:"attributes"`
	PriceRange *PriceRangeData      `json:"price_range"`
}

// PriceRangeData represents the minimum and maximum variant price within
// a category.
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
