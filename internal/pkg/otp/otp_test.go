package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCode(t *testing.T) {
	gen := NewRandom()

	seen := make(map[string]struct{})
	for range 50 {
		code, err := gen.Code()
		require.NoError(t, err)
		require.Len(t, code, CodeLength)

		for _, c := range code {
			assert.GreaterOrEqual(t, c, '0')
			assert.LessOrEqual(t, c, '9')
		}
		seen[code] = struct{}{}
	}

	// 50 draws from a million values collide only once in a while; more than
	// one distinct value proves the generator is not stuck.
	assert.Greater(t, len(seen), 1)
}

func TestRandomToken(t *testing.T) {
	gen := NewRandom()

	first, err := gen.Token()
	require.NoError(t, err)
	assert.Len(t, first, 43)
	assert.Regexp(t, `^[A-Za-z0-9_-]+$`, first)

	second, err := gen.Token()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
