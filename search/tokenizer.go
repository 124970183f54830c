package search

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// minTokenLength drops noise words like "a" or "of" before phrase
	// generation.
	minTokenLength = 2
	// maxPhraseWords caps the sliding phrase window.
	maxPhraseWords = 3
)

var (
	nonTokenPattern   = regexp.MustCompile(`[^a-z0-9|\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Tokenize turns a raw query string into a deduplicated set of candidate
// terms: the whole normalized query, every contiguous phrase of up to
// three words, and every single word. The result is sorted by length
// descending (stable on ties) so more specific phrases are attempted
// before shorter ones. Deterministic, no side effects.
//
// Empty or all-punctuation input yields nil; callers treat an empty token
// set as "no match", never as "match everything".
func Tokenize(query string) []string {
	normalized := normalizeQuery(query)
	if normalized == "" {
		return nil
	}

	words := splitWords(normalized)

	seen := make(map[string]struct{})
	tokens := make([]string, 0, len(words)*maxPhraseWords+1)
	add := func(candidate string) {
		if len(candidate) < minTokenLength {
			return
		}
		if _, dup := seen[candidate]; dup {
			return
		}
		seen[candidate] = struct{}{}
		tokens = append(tokens, candidate)
	}

	// Whole query first, then phrases (longest window first), then singles.
	add(normalized)
	for size := maxPhraseWords; size >= 2; size-- {
		for i := 0; i+size <= len(words); i++ {
			add(strings.Join(words[i:i+size], " "))
		}
	}
	for _, word := range words {
		add(word)
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		return len(tokens[i]) > len(tokens[j])
	})

	return tokens
}

// normalizeQuery lowercases the input, strips every character outside
// a-z, 0-9, whitespace and '|', and collapses runs of whitespace.
func normalizeQuery(query string) string {
	normalized := strings.ToLower(query)
	normalized = nonTokenPattern.ReplaceAllString(normalized, " ")
	normalized = whitespacePattern.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// splitWords splits a normalized query on spaces, commas and '|',
// dropping words shorter than minTokenLength.
func splitWords(normalized string) []string {
	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ' ' || r == ',' || r == '|'
	})

	words := fields[:0]
	for _, field := range fields {
		if len(field) >= minTokenLength {
			words = append(words, field)
		}
	}
	return words
}
