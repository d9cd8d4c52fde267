package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeMessage(t *testing.T) {
	t.Run("lowercases and strips punctuation", func(t *testing.T) {
		tokens := TokenizeMessage("I love Pizza and Taco!!")
		assert.Equal(t, []string{"i", "love", "pizza", "and", "taco"}, tokens)
	})

	t.Run("keeps apostrophes", func(t *testing.T) {
		tokens := TokenizeMessage("Don't panic!")
		assert.Equal(t, []string{"don't", "panic"}, tokens)
	})

	t.Run("punctuation is removed, not replaced with spaces", func(t *testing.T) {
		// "foo,bar" collapses into a single token
		tokens := TokenizeMessage("foo,bar baz")
		assert.Equal(t, []string{"foobar", "baz"}, tokens)
	})

	t.Run("drops empty tokens from repeated spaces", func(t *testing.T) {
		tokens := TokenizeMessage("  hello   world  ")
		assert.Equal(t, []string{"hello", "world"}, tokens)
	})

	t.Run("preserves duplicate occurrences", func(t *testing.T) {
		tokens := TokenizeMessage("ping ping ping")
		assert.Equal(t, []string{"ping", "ping", "ping"}, tokens)
	})

	t.Run("empty input yields no tokens", func(t *testing.T) {
		assert.Empty(t, TokenizeMessage(""))
		assert.Empty(t, TokenizeMessage("!!! ... ???"))
	})

	t.Run("digits survive", func(t *testing.T) {
		tokens := TokenizeMessage("version 42 shipped")
		assert.Equal(t, []string{"version", "42", "shipped"}, tokens)
	})
}

func TestNormalizeWords(t *testing.T) {
	// Same normalization as message scanning, applied to word lists
	words := NormalizeWords("Pizza, TACO don't")
	assert.Equal(t, []string{"pizza", "taco", "don't"}, words)
}
