// Package charset defines the fixed ASCII character classes available
// to password generation and composes per-policy sampling alphabets.
package charset

import "errors"

// Class identifies one of the four character classes.
type Class int

const (
	Lowercase Class = iota
	Uppercase
	Digit
	Symbol
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"

	// symbolChars is a stable printable-punctuation set. The shell
	// metacharacters | ; < > are excluded so generated secrets survive
	// copy-paste into a terminal.
	symbolChars = "!@#$%^&*()-_=+[]{}:,.?"
)

// ErrEmptyAlphabet is returned when no character class is enabled.
var ErrEmptyAlphabet = errors.New("charset: no character class enabled")

// canonicalOrder fixes alphabet composition order for reproducibility.
var canonicalOrder = [...]Class{Lowercase, Uppercase, Digit, Symbol}

func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Chars returns the fixed symbol table for the class.
func (c Class) Chars() []byte {
	switch c {
	case Lowercase:
		return []byte(lowercaseChars)
	case Uppercase:
		return []byte(uppercaseChars)
	case Digit:
		return []byte(digitChars)
	case Symbol:
		return []byte(symbolChars)
	default:
		return nil
	}
}

// Contains reports whether b belongs to the class.
func (c Class) Contains(b byte) bool {
	switch c {
	case Lowercase:
		return b >= 'a' && b <= 'z'
	case Uppercase:
		return b >= 'A' && b <= 'Z'
	case Digit:
		return b >= '0' && b <= '9'
	case Symbol:
		for i := 0; i < len(symbolChars); i++ {
			if symbolChars[i] == b {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// BuildAlphabet returns the union of the enabled classes' symbol tables
// in canonical order (lowercase, uppercase, digit, symbol). Duplicate
// classes in the input are collapsed; the four tables themselves are
// disjoint, so the union needs no further deduplication. Returns
// ErrEmptyAlphabet when classes is empty.
func BuildAlphabet(classes []Class) ([]byte, error) {
	if len(classes) == 0 {
		return nil, ErrEmptyAlphabet
	}

	var enabled [len(canonicalOrder)]bool
	for _, c := range classes {
		if c >= Lowercase && c <= Symbol {
			enabled[c] = true
		}
	}

	var alphabet []byte
	for _, c := range canonicalOrder {
		if enabled[c] {
			alphabet = append(alphabet, c.Chars()...)
		}
	}
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	return alphabet, nil
}
