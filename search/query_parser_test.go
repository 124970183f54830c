package search

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prvnlhr/nexop-backend-sub001/models"
)

func TestParseQueryMaxPriceForms(t *testing.T) {
	for _, query := range []string{
		"phones under 500",
		"phones below 500",
		"phones less than 500",
	} {
		parsed := ParseQuery(query, nil)
		require.NotNil(t, parsed.PriceRange, query)
		require.NotNil(t, parsed.PriceRange.Max, query)
		assert.Nil(t, parsed.PriceRange.Min, query)
		assert.Equal(t, 500.0, *parsed.PriceRange.Max, query)
		assert.Equal(t, "phones", parsed.Residual, query)
	}
}

func TestParseQueryNumericRange(t *testing.T) {
	parsed := ParseQuery("200-400", nil)

	require.NotNil(t, parsed.PriceRange)
	require.NotNil(t, parsed.PriceRange.Min)
	require.NotNil(t, parsed.PriceRange.Max)
	assert.Equal(t, 200.0, *parsed.PriceRange.Min)
	assert.Equal(t, 400.0, *parsed.PriceRange.Max)
	assert.Empty(t, parsed.Residual)
}

func TestParseQueryMinPriceForms(t *testing.T) {
	parsed := ParseQuery("sneakers above 300", nil)

	require.NotNil(t, parsed.PriceRange)
	require.NotNil(t, parsed.PriceRange.Min)
	assert.Nil(t, parsed.PriceRange.Max)
	assert.Equal(t, 300.0, *parsed.PriceRange.Min)
	assert.Equal(t, "sneakers", parsed.Residual)
}

func TestParseQueryFirstPriceFormWins(t *testing.T) {
	parsed := ParseQuery("under 100 over 50", nil)

	require.NotNil(t, parsed.PriceRange)
	require.NotNil(t, parsed.PriceRange.Max)
	assert.Equal(t, 100.0, *parsed.PriceRange.Max)
	// the second clause is left in the residual untouched
	assert.Nil(t, parsed.PriceRange.Min)
	assert.Equal(t, "over 50", parsed.Residual)
}

func TestParseQueryNoPriceClause(t *testing.T) {
	parsed := ParseQuery("space gray phone", nil)

	assert.Nil(t, parsed.PriceRange)
	assert.Equal(t, "space gray phone", parsed.Residual)
}

func TestParseQueryStripsRecognizedCatalogTerms(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV7())
	sig := &models.CatalogSignature{
		Categories: []models.CategorySummary{{ID: categoryID, Name: "Phone", Slug: "phones"}},
		Attributes: map[uuid.UUID][]models.AttributeSignature{
			categoryID: {
				{
					ID:   1,
					Name: "Color",
					Options: []models.OptionSignature{
						{ID: 11, Value: "Space Gray"},
					},
				},
			},
		},
	}

	parsed := ParseQuery("space gray phone under 500", sig)

	require.NotNil(t, parsed.PriceRange)
	require.NotNil(t, parsed.PriceRange.Max)
	assert.Equal(t, 500.0, *parsed.PriceRange.Max)
	assert.Equal(t, []string{"Phone"}, parsed.Categories)
	assert.Equal(t, []string{"Space Gray"}, parsed.AttributeValues)
	assert.Empty(t, parsed.Residual)
}
