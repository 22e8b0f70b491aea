// Package strength normalizes external guessability estimators into a
// common report shape: a 0-4 score tier, an estimated guess count,
// crack-time classifications under standard attacker scenarios, and
// free-text feedback.
package strength

import "fmt"

// Attacker guess rates for the crack-time scenarios, matching the
// conventional zxcvbn assumptions.
const (
	onlineThrottledPerHour = 100.0
	onlineNoThrottlePerSec = 10.0
	offlineSlowHashPerSec  = 1e4
	offlineFastHashPerSec  = 1e10
)

// Report is a normalized strength assessment for one secret. It is
// derived per call and never cached or mutated.
type Report struct {
	// Score is the ordinal tier, 0 (weakest) to 4 (strongest).
	Score int
	// Guesses is the estimated number of guesses needed to crack.
	Guesses float64
	// CrackTimes classifies Guesses under attacker scenarios.
	CrackTimes CrackTimes
	// Warning is a short free-text caution, empty when none applies.
	Warning string
	// Suggestions are free-text improvement hints.
	Suggestions []string
}

// CrackTimes holds humanized crack-time estimates per scenario.
type CrackTimes struct {
	OnlineThrottled  string // 100 guesses/hour
	OnlineNoThrottle string // 10 guesses/second
	OfflineSlowHash  string // 1e4 guesses/second
	OfflineFastHash  string // 1e10 guesses/second
}

// Evaluator scores an arbitrary secret string. Implementations must be
// pure: identical input yields an identical Report.
type Evaluator interface {
	Evaluate(secret string) (Report, error)
}

func classifyCrackTimes(guesses float64) CrackTimes {
	return CrackTimes{
		OnlineThrottled:  displayTime(guesses / (onlineThrottledPerHour / 3600)),
		OnlineNoThrottle: displayTime(guesses / onlineNoThrottlePerSec),
		OfflineSlowHash:  displayTime(guesses / offlineSlowHashPerSec),
		OfflineFastHash:  displayTime(guesses / offlineFastHashPerSec),
	}
}

const (
	minute  = 60.0
	hour    = 60 * minute
	day     = 24 * hour
	month   = 31 * day
	year    = 365 * day
	century = 100 * year
)

func displayTime(seconds float64) string {
	switch {
	case seconds < 1:
		return "instant"
	case seconds < minute:
		return fmt.Sprintf("%.0f seconds", seconds)
	case seconds < hour:
		return fmt.Sprintf("%.0f minutes", seconds/minute)
	case seconds < day:
		return fmt.Sprintf("%.0f hours", seconds/hour)
	case seconds < month:
		return fmt.Sprintf("%.0f days", seconds/day)
	case seconds < year:
		return fmt.Sprintf("%.0f months", seconds/month)
	case seconds < century:
		return fmt.Sprintf("%.0f years", seconds/year)
	default:
		return "centuries"
	}
}
