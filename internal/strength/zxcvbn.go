package strength

import (
	"math"

	zxcvbn "github.com/nbutton23/zxcvbn-go"
)

// MinPassScore is the lowest score tier treated as acceptable by
// PassesThreshold.
const MinPassScore = 3

// ZxcvbnEvaluator adapts the zxcvbn pattern-matching estimator
// (dictionary, keyboard, date and repeat attacks) to the Report shape.
// It is stateless and safe for concurrent use.
type ZxcvbnEvaluator struct{}

// NewZxcvbn returns the bundled evaluator.
func NewZxcvbn() ZxcvbnEvaluator {
	return ZxcvbnEvaluator{}
}

// Evaluate scores the secret. An empty secret yields the weakest-tier
// report rather than an error.
func (ZxcvbnEvaluator) Evaluate(secret string) (Report, error) {
	if secret == "" {
		return Report{
			Score:       0,
			Guesses:     1,
			CrackTimes:  classifyCrackTimes(1),
			Warning:     "secret is empty",
			Suggestions: []string{"use a non-empty secret"},
		}, nil
	}

	m := zxcvbn.PasswordStrength(secret, nil)

	// Expected guesses for a search over 2^entropy candidates.
	guesses := math.Pow(2, m.Entropy-1)
	if guesses < 1 {
		guesses = 1
	}

	report := Report{
		Score:      m.Score,
		Guesses:    guesses,
		CrackTimes: classifyCrackTimes(guesses),
	}
	report.Warning, report.Suggestions = feedback(m.Score)
	return report, nil
}

// PassesThreshold reports whether the secret scores at least
// MinPassScore.
func (e ZxcvbnEvaluator) PassesThreshold(secret string) (bool, error) {
	report, err := e.Evaluate(secret)
	if err != nil {
		return false, err
	}
	return report.Score >= MinPassScore, nil
}

func feedback(score int) (warning string, suggestions []string) {
	switch score {
	case 0, 1:
		return "easily guessed by pattern or dictionary attacks", []string{
			"use 12 or more characters mixing all character classes",
			"a multi-word passphrase from a large word list is stronger and easier to remember",
		}
	case 2:
		return "vulnerable to a determined offline attack", []string{
			"add length or another character class",
		}
	case 3:
		return "", []string{
			"adding a few characters would resist fast offline cracking",
		}
	default:
		return "", nil
	}
}
