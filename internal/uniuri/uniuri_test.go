package uniuri

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLen(t *testing.T) {
	for _, n := range []int{0, 1, 16, 48, 257} {
		s := NewLen(n)
		assert.Len(t, s, n)

		for _, r := range s {
			assert.True(t, strings.ContainsRune(string(StdChars), r))
		}
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 1000; i++ {
		s := New()
		_, dup := seen[s]
		assert.False(t, dup, "duplicate token %q", s)
		seen[s] = struct{}{}
	}
}

func TestNewLenChars_SmallAlphabet(t *testing.T) {
	s := NewLenChars(64, []byte("ab"))
	assert.Len(t, s, 64)
	assert.NotEqual(t, strings.Repeat("a", 64), s)
}
