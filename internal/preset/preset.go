// Package preset provides the named fixed generation policies. The
// tables are read-only for the life of the process.
package preset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/passforge/passforge/internal/generator"
	"github.com/passforge/passforge/internal/wordlist"
)

// ErrUnknown is returned for a preset name outside the fixed table.
var ErrUnknown = errors.New("preset: unknown preset")

// Names lists the available preset names in ascending strength order.
func Names() []string {
	return []string{"weak", "average", "strong"}
}

// Password returns the fixed password policy for the named preset.
// Names are case-insensitive.
func Password(name string) (generator.PasswordPolicy, error) {
	switch strings.ToLower(name) {
	case "weak":
		return generator.PasswordPolicy{
			Length:    8,
			Lowercase: true,
			Uppercase: true,
			Digits:    true,
		}, nil
	case "average":
		return generator.PasswordPolicy{
			Length:    16,
			Lowercase: true,
			Uppercase: true,
			Digits:    true,
			Symbols:   true,
		}, nil
	case "strong":
		return generator.PasswordPolicy{
			Length:    32,
			Lowercase: true,
			Uppercase: true,
			Digits:    true,
			Symbols:   true,
		}, nil
	default:
		return generator.PasswordPolicy{}, fmt.Errorf("%w: %q (choices: %s)",
			ErrUnknown, name, strings.Join(Names(), ", "))
	}
}

// Passphrase returns the fixed passphrase policy for the named preset.
// Names are case-insensitive; all presets use the embedded word list
// and the default separator.
func Passphrase(name string) (generator.PassphrasePolicy, error) {
	var words uint
	switch strings.ToLower(name) {
	case "weak":
		words = 4
	case "average":
		words = 8
	case "strong":
		words = 16
	default:
		return generator.PassphrasePolicy{}, fmt.Errorf("%w: %q (choices: %s)",
			ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return generator.PassphrasePolicy{
		WordCount: words,
		Separator: generator.DefaultSeparator,
		Words:     wordlist.Default(),
	}, nil
}
