// Package wordlist models the vocabulary used for passphrase
// generation: an ordered, deduplicated sequence of lowercase words,
// loaded once and immutable thereafter.
package wordlist

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed default_wordlist.txt
var defaultRaw []byte

var (
	// ErrTooSmall indicates an empty or undersized vocabulary.
	ErrTooSmall = errors.New("wordlist: word list too small")

	// ErrLoadFailure wraps I/O or parse failures from user-supplied
	// word list files.
	ErrLoadFailure = errors.New("wordlist: load failure")
)

// RecommendedMinWords is the vocabulary size below which passphrase
// entropy per word drops under 9 bits; callers should warn when a
// smaller list is used.
const RecommendedMinWords = 512

// List is an immutable ordered vocabulary.
type List struct {
	words []string
}

// New builds a List from raw words. Entries are lowercased and
// trimmed; blank and duplicate entries are dropped, preserving the
// order of first appearance. Returns ErrTooSmall when nothing remains.
func New(words []string) (*List, error) {
	seen := make(map[string]struct{}, len(words))
	kept := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		return nil, ErrTooSmall
	}
	return &List{words: kept}, nil
}

var defaultList = sync.OnceValue(func() *List {
	list, err := parse(bytes.NewReader(defaultRaw))
	if err != nil {
		// The embedded list is validated by tests; a parse failure
		// here means a corrupt build.
		panic(fmt.Sprintf("wordlist: embedded default list invalid: %v", err))
	}
	return list
})

// Default returns the embedded word list, parsed once per process.
func Default() *List {
	return defaultList()
}

// LoadFile reads a word list file with one entry per line. Plain
// one-word lines and EFF dice-format lines ("11111\tabacus") are both
// accepted; for the latter the dice digits are dropped. Lines with more
// than two fields are skipped. Returns ErrLoadFailure on I/O errors and
// ErrTooSmall when no usable words remain.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", ErrLoadFailure, path, err)
	}
	defer f.Close()

	list, err := parse(f)
	if err != nil {
		if errors.Is(err, ErrTooSmall) {
			return nil, fmt.Errorf("%w: %s has no usable words", ErrTooSmall, path)
		}
		return nil, fmt.Errorf("%w: reading %s: %w", ErrLoadFailure, path, err)
	}
	return list, nil
}

func parse(r io.Reader) (*List, error) {
	words, err := scanWords(bufio.NewScanner(r))
	if err != nil {
		return nil, err
	}
	return New(words)
}

// Len returns the vocabulary size.
func (l *List) Len() int {
	return len(l.words)
}

// Word returns the i-th word. i must be in [0, Len()).
func (l *List) Word(i int) string {
	return l.words[i]
}

// Words returns a copy of the vocabulary in order.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Contains reports whether w is in the vocabulary.
func (l *List) Contains(w string) bool {
	for _, have := range l.words {
		if have == w {
			return true
		}
	}
	return false
}

func scanWords(s *bufio.Scanner) ([]string, error) {
	var words []string
	for s.Scan() {
		fields := strings.Fields(s.Text())
		switch len(fields) {
		case 1:
			words = append(words, fields[0])
		case 2:
			// EFF dice format: "11116	abacus".
			words = append(words, fields[1])
		default:
			// Blank or malformed line.
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
