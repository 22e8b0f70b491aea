package generator

import (
	"fmt"
	"strings"

	"github.com/passforge/passforge/internal/random"
	"github.com/passforge/passforge/internal/wordlist"
)

const (
	// DefaultWordCount is used when the caller supplies no word count.
	DefaultWordCount = 4

	// DefaultSeparator joins passphrase words unless overridden.
	DefaultSeparator = "-"
)

// PassphrasePolicy describes the desired shape of a generated
// passphrase. Words are drawn independently with replacement, so
// entropy is WordCount x log2(list size) and the vocabulary size is
// the dominant security parameter.
type PassphrasePolicy struct {
	WordCount uint
	Separator string
	// Capitalize title-cases one uniformly-chosen word.
	Capitalize bool
	// InjectNumber appends a random digit to one uniformly-chosen word.
	InjectNumber bool
	Words        *wordlist.List
}

// DefaultPassphrasePolicy returns the stock policy: four words from the
// embedded list, joined with "-".
func DefaultPassphrasePolicy() PassphrasePolicy {
	return PassphrasePolicy{
		WordCount: DefaultWordCount,
		Separator: DefaultSeparator,
		Words:     wordlist.Default(),
	}
}

// Validate checks the policy invariants: word count at least 1 and a
// non-empty vocabulary.
func (p PassphrasePolicy) Validate() error {
	if p.WordCount < 1 {
		return fmt.Errorf("%w: word count must be at least 1", ErrPolicyUnsatisfiable)
	}
	if p.Words == nil || p.Words.Len() == 0 {
		return fmt.Errorf("%w: passphrase policy has no vocabulary", ErrWordListTooSmall)
	}
	return nil
}

// Passphrase generates passphrases for one validated policy.
type Passphrase struct {
	policy PassphrasePolicy
}

// NewPassphrase validates the policy.
func NewPassphrase(policy PassphrasePolicy) (*Passphrase, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Passphrase{policy: policy}, nil
}

// Kind implements Generator.
func (g *Passphrase) Kind() Kind {
	return KindPassphrase
}

// Generate draws WordCount words independently and uniformly with
// replacement, applies the optional capitalization and number-injection
// rules, and joins the words with the separator.
func (g *Passphrase) Generate(src random.Source) (Secret, error) {
	list := g.policy.Words
	words := make([]string, g.policy.WordCount)
	for i := range words {
		idx, err := src.Intn(list.Len())
		if err != nil {
			return Secret{}, err
		}
		words[i] = list.Word(idx)
	}

	if g.policy.Capitalize {
		pos, err := src.Intn(len(words))
		if err != nil {
			return Secret{}, err
		}
		words[pos] = strings.ToUpper(words[pos][:1]) + words[pos][1:]
	}
	if g.policy.InjectNumber {
		pos, err := src.Intn(len(words))
		if err != nil {
			return Secret{}, err
		}
		digit, err := src.Intn(10)
		if err != nil {
			return Secret{}, err
		}
		words[pos] = fmt.Sprintf("%s%d", words[pos], digit)
	}

	return Secret{Value: strings.Join(words, g.policy.Separator), Kind: KindPassphrase}, nil
}
