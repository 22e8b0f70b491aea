package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntnBounds(t *testing.T) {
	src := NewCrypto()

	for _, n := range []int{1, 2, 7, 26, 94, 7776} {
		for i := 0; i < 200; i++ {
			v, err := src.Intn(n)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, n)
		}
	}
}

func TestIntnOne(t *testing.T) {
	src := NewCrypto()

	v, err := src.Intn(1)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestIntnInvalidBound(t *testing.T) {
	src := NewCrypto()

	_, err := src.Intn(0)
	assert.Error(t, err)

	_, err = src.Intn(-5)
	assert.Error(t, err)
}

func TestIntnCoversRange(t *testing.T) {
	src := NewCrypto()

	// Every value in [0, 4) should appear over enough draws; the odds
	// of a miss with a uniform source are (3/4)^2000.
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v, err := src.Intn(4)
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}
