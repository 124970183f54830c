package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizePhraseGenerationAndOrdering(t *testing.T) {
	tokens := Tokenize("Space Gray 256GB")

	require.Equal(t, []string{
		"space gray 256gb",
		"space gray",
		"gray 256gb",
		"space",
		"256gb",
		"gray",
	}, tokens)
}

func TestTokenizeIsIdempotentOnNormalizedForm(t *testing.T) {
	first := Tokenize("Space-Gray!! 256GB")
	second := Tokenize("space gray 256gb")

	require.NotEmpty(t, first)
	assert.Equal(t, second, first)
	assert.Equal(t, first, Tokenize(first[0]))
}

func TestTokenizeMinimumLength(t *testing.T) {
	tokens := Tokenize("a phone of X size")

	for _, token := range tokens {
		assert.GreaterOrEqual(t, len(token), 2, "token %q too short", token)
	}
	assert.Contains(t, tokens, "phone")
	assert.Contains(t, tokens, "of")
	assert.NotContains(t, tokens, "a")
	assert.NotContains(t, tokens, "x")
}

func TestTokenizeEmptyAndPunctuationOnlyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   "))
	assert.Empty(t, Tokenize("!?.,;:--"))
	assert.Empty(t, Tokenize("€™☃"))
}

func TestTokenizeSplitsOnPipeAndComma(t *testing.T) {
	tokens := Tokenize("red|blue, green")

	assert.Contains(t, tokens, "red")
	assert.Contains(t, tokens, "blue")
	assert.Contains(t, tokens, "green")
	// phrases are built from split words, joined by single spaces
	assert.Contains(t, tokens, "red blue green")
}

func TestTokenizeDeduplicates(t *testing.T) {
	tokens := Tokenize("gray gray gray")

	count := 0
	for _, token := range tokens {
		if token == "gray" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestTokenizeSingleWord(t *testing.T) {
	assert.Equal(t, []string{"phone"}, Tokenize("Phone"))
}
