package generator

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/passforge/passforge/internal/charset"
	"github.com/passforge/passforge/internal/random"
)

// DefaultPasswordLength is used when the caller supplies no length.
const DefaultPasswordLength = 18

// maxRepairAttempts bounds the class-repair loop. A healthy uniform
// source repairs a missing class in one or two attempts; hitting the
// cap means the source is returning statistically impossible output.
const maxRepairAttempts = 128

// PasswordPolicy describes the desired shape of a generated password.
// A zero MaxLength means every secret has exactly Length characters;
// otherwise the per-secret length is drawn uniformly from
// [Length, MaxLength].
type PasswordPolicy struct {
	Length    uint
	MaxLength uint
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// DefaultPasswordPolicy returns the stock policy: 18 characters, all
// character classes enabled.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		Length:    DefaultPasswordLength,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Classes returns the enabled character classes in canonical order.
func (p PasswordPolicy) Classes() []charset.Class {
	var classes []charset.Class
	if p.Lowercase {
		classes = append(classes, charset.Lowercase)
	}
	if p.Uppercase {
		classes = append(classes, charset.Uppercase)
	}
	if p.Digits {
		classes = append(classes, charset.Digit)
	}
	if p.Symbols {
		classes = append(classes, charset.Symbol)
	}
	return classes
}

// Validate checks the policy invariants: at least one class enabled,
// length at least 1, a coherent range, and enough room for one
// character from every enabled class.
func (p PasswordPolicy) Validate() error {
	classes := p.Classes()
	if len(classes) == 0 {
		return charset.ErrEmptyAlphabet
	}
	if p.Length < 1 {
		return fmt.Errorf("%w: length must be at least 1", ErrPolicyUnsatisfiable)
	}
	if p.MaxLength != 0 && p.MaxLength < p.Length {
		return fmt.Errorf("%w: max length %d below minimum length %d",
			ErrPolicyUnsatisfiable, p.MaxLength, p.Length)
	}
	if uint(len(classes)) > p.Length {
		return fmt.Errorf("%w: length %d cannot cover %d enabled classes",
			ErrPolicyUnsatisfiable, p.Length, len(classes))
	}
	return nil
}

// Password generates passwords for one validated policy.
type Password struct {
	policy   PasswordPolicy
	classes  []charset.Class
	alphabet []byte
	logger   zerolog.Logger
}

// NewPassword validates the policy and builds the sampling alphabet.
func NewPassword(policy PasswordPolicy, logger zerolog.Logger) (*Password, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	classes := policy.Classes()
	alphabet, err := charset.BuildAlphabet(classes)
	if err != nil {
		return nil, err
	}
	return &Password{
		policy:   policy,
		classes:  classes,
		alphabet: alphabet,
		logger:   logger,
	}, nil
}

// Kind implements Generator.
func (g *Password) Kind() Kind {
	return KindPassword
}

// Generate draws the full length uniformly from the alphabet, then
// repairs any unrepresented class by replacing a uniformly-chosen
// position with a uniform draw from that class. Repairing keeps the
// character distribution near-uniform, unlike reserving one slot per
// class. A replacement can evict the only member of another class, so
// the whole buffer is re-verified each round.
func (g *Password) Generate(src random.Source) (Secret, error) {
	length, err := g.targetLength(src)
	if err != nil {
		return Secret{}, err
	}

	buf := make([]byte, length)
	for i := range buf {
		idx, err := src.Intn(len(g.alphabet))
		if err != nil {
			return Secret{}, err
		}
		buf[i] = g.alphabet[idx]
	}

	for attempt := 0; ; attempt++ {
		missing := g.missingClasses(buf)
		if len(missing) == 0 {
			break
		}
		if attempt >= maxRepairAttempts {
			return Secret{}, fmt.Errorf("%w: class %s still unrepresented after %d attempts",
				ErrRNGExhausted, missing[0], maxRepairAttempts)
		}

		pos, err := src.Intn(len(buf))
		if err != nil {
			return Secret{}, err
		}
		table := missing[0].Chars()
		idx, err := src.Intn(len(table))
		if err != nil {
			return Secret{}, err
		}
		buf[pos] = table[idx]
		g.logger.Trace().
			Int("attempt", attempt+1).
			Stringer("class", missing[0]).
			Msg("repaired unrepresented character class")
	}

	return Secret{Value: string(buf), Kind: KindPassword}, nil
}

func (g *Password) targetLength(src random.Source) (int, error) {
	min := g.policy.Length
	max := g.policy.MaxLength
	if max == 0 || max == min {
		return int(min), nil
	}
	span, err := src.Intn(int(max-min) + 1)
	if err != nil {
		return 0, err
	}
	return int(min) + span, nil
}

func (g *Password) missingClasses(buf []byte) []charset.Class {
	var missing []charset.Class
	for _, c := range g.classes {
		found := false
		for _, b := range buf {
			if c.Contains(b) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, c)
		}
	}
	return missing
}
