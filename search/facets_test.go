package search

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prvnlhr/nexop-backend-sub001/models"
)

func testAttributes() []models.AttributeSignature {
	return []models.AttributeSignature{
		{
			ID:         1,
			Name:       "Color",
			Filterable: true,
			Options: []models.OptionSignature{
				{ID: 11, Value: "Red"},
				{ID: 12, Value: "Blue"},
			},
		},
		{
			ID:         2,
			Name:       "Size",
			Filterable: true,
			Options: []models.OptionSignature{
				{ID: 21, Value: "M"},
				{ID: 22, Value: "L"},
			},
		},
	}
}

func TestResolveFacetsNormalizesAllEncodings(t *testing.T) {
	attributes := testAttributes()

	// CSV value
	filter, invalid := ResolveFacets(attributes, url.Values{"attr_1": {"11,12"}})
	require.Empty(t, invalid)
	assert.Equal(t, models.FacetFilter{1: {11: {}, 12: {}}}, filter)

	// repeated key / array value
	filter, invalid = ResolveFacets(attributes, url.Values{"attr_1": {"11", "12"}})
	require.Empty(t, invalid)
	assert.Equal(t, models.FacetFilter{1: {11: {}, 12: {}}}, filter)

	// single id
	filter, invalid = ResolveFacets(attributes, url.Values{"attr_1": {"11"}})
	require.Empty(t, invalid)
	assert.Equal(t, models.FacetFilter{1: {11: {}}}, filter)
}

func TestResolveFacetsRepeatedAttributeUnionsOptions(t *testing.T) {
	filter, invalid := ResolveFacets(testAttributes(), url.Values{
		"attr_1": {"11", "11,12"},
		"attr_2": {"21"},
	})
	require.Empty(t, invalid)
	assert.Equal(t, models.FacetFilter{
		1: {11: {}, 12: {}},
		2: {21: {}},
	}, filter)
}

func TestResolveFacetsSkipsAndReportsInvalidPairs(t *testing.T) {
	filter, invalid := ResolveFacets(testAttributes(), url.Values{
		"attr_999": {"1"},    // unknown attribute
		"attr_abc": {"11"},   // unparseable attribute id
		"attr_1":   {"99"},   // option outside the attribute's active set
		"attr_2":   {"junk"}, // structurally unparseable option list
		"page":     {"2"},    // not a facet parameter, ignored
	})

	assert.Empty(t, filter)
	assert.Equal(t, []string{"attr_1=99", "attr_2=junk", "attr_999", "attr_abc"}, invalid)
}

func TestResolveFacetsPartialValidityIsNotAnError(t *testing.T) {
	filter, invalid := ResolveFacets(testAttributes(), url.Values{
		"attr_1":   {"11"},
		"attr_999": {"1"},
	})

	assert.Equal(t, models.FacetFilter{1: {11: {}}}, filter)
	assert.Equal(t, []string{"attr_999"}, invalid)
}

func TestResolveFacetsMissingSignatureDegradesToInvalid(t *testing.T) {
	// category absent from the signature → nil attribute list, never a crash
	filter, invalid := ResolveFacets(nil, url.Values{"attr_1": {"11"}})

	assert.Empty(t, filter)
	assert.Equal(t, []string{"attr_1"}, invalid)
}

func TestFacetFilterAndAcrossAttributesOrWithinOne(t *testing.T) {
	filter := models.FacetFilter{}
	filter.Add(1, 11) // color red
	filter.Add(1, 12) // color blue
	filter.Add(2, 21) // size M

	redM := models.AssignmentList{{AttributeID: 1, OptionID: 11}, {AttributeID: 2, OptionID: 21}}
	blueM := models.AssignmentList{{AttributeID: 1, OptionID: 12}, {AttributeID: 2, OptionID: 21}}
	redL := models.AssignmentList{{AttributeID: 1, OptionID: 11}, {AttributeID: 2, OptionID: 22}}
	redOnly := models.AssignmentList{{AttributeID: 1, OptionID: 11}}

	assert.True(t, filter.Matches(redM))
	assert.True(t, filter.Matches(blueM))
	assert.False(t, filter.Matches(redL), "size L is outside the size option set")
	assert.False(t, filter.Matches(redOnly), "missing size assignment must not match")
}

func TestFilterProductsUnfilteredPassThrough(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV7())
	products := []models.Product{
		{
			ID:         uuid.Must(uuid.NewV7()),
			Name:       "Aura X5",
			Slug:       "aura-x5",
			CategoryID: categoryID,
			BasePrice:  499,
			Media:      models.MediaList{{URL: "base.jpg"}},
			Variants: []models.Variant{
				{Name: "Aura X5 256GB", Slug: "v", SKU: "v", Price: 549, Status: models.VariantStatusActive},
			},
		},
	}

	matches := FilterProducts(emptySignature(), models.FacetFilter{}, products)
	require.Len(t, matches, 1)
	assert.Equal(t, "Aura X5", matches[0].Name)
	assert.Equal(t, 499.0, matches[0].Price, "unfiltered entries carry the product base price")
	assert.Equal(t, "base.jpg", matches[0].Image)
}

func TestFilterProductsSelectsMatchingActiveVariants(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV7())
	product := models.Product{
		ID:         uuid.Must(uuid.NewV7()),
		Name:       "Aura X5",
		Slug:       "aura-x5",
		CategoryID: categoryID,
		BasePrice:  499,
		Variants: []models.Variant{
			{
				ID: uuid.Must(uuid.NewV7()), Name: "red M", Slug: "red-m", SKU: "rm", Price: 549,
				Status:      models.VariantStatusActive,
				Assignments: models.AssignmentList{{AttributeID: 1, OptionID: 11}, {AttributeID: 2, OptionID: 21}},
			},
			{
				ID: uuid.Must(uuid.NewV7()), Name: "red L", Slug: "red-l", SKU: "rl", Price: 549,
				Status:      models.VariantStatusActive,
				Assignments: models.AssignmentList{{AttributeID: 1, OptionID: 11}, {AttributeID: 2, OptionID: 22}},
			},
			{
				ID: uuid.Must(uuid.NewV7()), Name: "inactive red M", Slug: "irm", SKU: "irm", Price: 549,
				Status:      models.VariantStatusInactive,
				Assignments: models.AssignmentList{{AttributeID: 1, OptionID: 11}, {AttributeID: 2, OptionID: 21}},
			},
		},
	}

	filter := models.FacetFilter{}
	filter.Add(1, 11)
	filter.Add(2, 21)

	matches := FilterProducts(emptySignature(), filter, []models.Product{product})
	require.Len(t, matches, 1)
	assert.Equal(t, "red M", matches[0].Name)
	assert.Equal(t, 549.0, matches[0].Price, "filtered entries are re-priced from the variant")
	assert.Equal(t, "Aura X5", matches[0].Product.Name)
}
