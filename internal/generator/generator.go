// Package generator turns declarative policies into uniformly-random
// secrets. Two variants exist: fixed-policy passwords and multi-word
// passphrases. Policies are validated at construction; a constructed
// generator cannot produce a degraded secret.
package generator

import (
	"errors"

	"github.com/passforge/passforge/internal/random"
)

// Kind names the policy variant that produced a secret.
type Kind string

const (
	KindPassword   Kind = "password"
	KindPassphrase Kind = "passphrase"
)

// Secret is one produced value plus the variant that created it.
type Secret struct {
	Value string
	Kind  Kind
}

// Generator produces one secret per call from its validated policy.
// Implementations consume only the supplied Source; they hold no
// mutable state and are safe to share across workers as long as each
// worker passes its own Source.
type Generator interface {
	Generate(src random.Source) (Secret, error)
	Kind() Kind
}

var (
	// ErrPolicyUnsatisfiable indicates a policy whose structural
	// constraints cannot be met, e.g. a length too short to cover every
	// enabled character class.
	ErrPolicyUnsatisfiable = errors.New("generator: policy unsatisfiable")

	// ErrWordListTooSmall indicates a passphrase policy with an empty
	// or missing vocabulary.
	ErrWordListTooSmall = errors.New("generator: word list too small")

	// ErrRNGExhausted indicates the bounded class-repair loop ran out
	// of attempts. It signals a systemic RNG defect and is fatal.
	ErrRNGExhausted = errors.New("generator: rng repair budget exhausted")
)
