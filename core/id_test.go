package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("generates ID with prefix", func(t *testing.T) {
		id := NewID("ww")
		assert.True(t, strings.HasPrefix(id, "ww_"))
	})

	t.Run("normalizes prefix to lowercase", func(t *testing.T) {
		id := NewID("WW")
		assert.True(t, strings.HasPrefix(id, "ww_"))
	})

	t.Run("generates unique IDs", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := NewID("ww")
			require.False(t, seen[id], "duplicate ID generated: %s", id)
			seen[id] = true
		}
	})

	t.Run("panics on empty prefix", func(t *testing.T) {
		assert.Panics(t, func() { NewID("") })
		assert.Panics(t, func() { NewID("   ") })
	})
}
