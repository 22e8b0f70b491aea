package charset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allClasses = []Class{Lowercase, Uppercase, Digit, Symbol}

// subsets enumerates every non-empty subset of the four classes.
func subsets() [][]Class {
	var out [][]Class
	for mask := 1; mask < 16; mask++ {
		var set []Class
		for i, c := range allClasses {
			if mask&(1<<i) != 0 {
				set = append(set, c)
			}
		}
		out = append(out, set)
	}
	return out
}

func TestBuildAlphabetAllSubsets(t *testing.T) {
	for _, set := range subsets() {
		alphabet, err := BuildAlphabet(set)
		require.NoError(t, err, "subset %v", set)

		wantLen := 0
		for _, c := range set {
			wantLen += len(c.Chars())
		}
		assert.Len(t, alphabet, wantLen, "subset %v", set)

		// Every character belongs to exactly one enabled class and no
		// disabled class leaks in.
		for _, b := range alphabet {
			owners := 0
			for _, c := range allClasses {
				if c.Contains(b) {
					owners++
					assert.Contains(t, set, c, "char %q from disabled class %s", b, c)
				}
			}
			assert.Equal(t, 1, owners, "char %q", b)
		}
	}
}

func TestBuildAlphabetCanonicalOrder(t *testing.T) {
	// Input order must not matter: digit-before-lowercase still yields
	// lowercase first.
	alphabet, err := BuildAlphabet([]Class{Digit, Lowercase})
	require.NoError(t, err)

	want := append([]byte(nil), Lowercase.Chars()...)
	want = append(want, Digit.Chars()...)
	assert.True(t, bytes.Equal(want, alphabet))
}

func TestBuildAlphabetDeduplicatesClasses(t *testing.T) {
	alphabet, err := BuildAlphabet([]Class{Digit, Digit, Digit})
	require.NoError(t, err)
	assert.Len(t, alphabet, 10)
}

func TestBuildAlphabetEmpty(t *testing.T) {
	_, err := BuildAlphabet(nil)
	assert.ErrorIs(t, err, ErrEmptyAlphabet)

	_, err = BuildAlphabet([]Class{})
	assert.ErrorIs(t, err, ErrEmptyAlphabet)
}

func TestClassTablesMatchContains(t *testing.T) {
	for _, c := range allClasses {
		for _, b := range c.Chars() {
			assert.True(t, c.Contains(b), "%s should contain %q", c, b)
		}
	}
}

func TestSymbolSetExcludesShellMetacharacters(t *testing.T) {
	for _, b := range []byte("|;<>") {
		assert.False(t, Symbol.Contains(b), "symbol set must not contain %q", b)
	}
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "lowercase", Lowercase.String())
	assert.Equal(t, "uppercase", Uppercase.String())
	assert.Equal(t, "digit", Digit.String())
	assert.Equal(t, "symbol", Symbol.String())
}
