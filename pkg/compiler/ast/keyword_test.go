package ast

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyword(t *testing.T) {
	kw, ok := ParseKeyword("foreach")
	require.True(t, ok)
	assert.Equal(t, KeywordForeach, kw)

	_, ok = ParseKeyword("foreachx")
	assert.False(t, ok)

	// The vocabulary is case sensitive.
	_, ok = ParseKeyword("If")
	assert.False(t, ok)

	// Word operators and boolean literals are not keywords.
	for _, word := range []string{"or", "and", "true", "false"} {
		_, ok := ParseKeyword(word)
		assert.False(t, ok, "word %q", word)
	}
}

func TestKeywordString(t *testing.T) {
	for name, kw := range keywords {
		assert.Equal(t, name, kw.String())
	}
	assert.Equal(t, "keyword(?)", Keyword(255).String())
}

func TestMaxKeywordLength(t *testing.T) {
	longest := 0
	for name := range keywords {
		if n := utf8.RuneCountInString(name); n > longest {
			longest = n
		}
	}
	assert.Equal(t, MaxKeywordLength, longest)
}
