package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/passforge/passforge/internal/batch"
	"github.com/passforge/passforge/internal/config"
	"github.com/passforge/passforge/internal/logging"
	"github.com/passforge/passforge/internal/strength"
	"github.com/passforge/passforge/internal/wordlist"
)

// runtime wires config and logging for one command invocation.
type runtime struct {
	cfg    config.Config
	logger zerolog.Logger
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	var logger zerolog.Logger
	if cfg.LogJSON {
		logger = logging.NewJSON(os.Stderr, cfg.LogLevel)
	} else {
		logger = logging.New(cfg.LogLevel)
	}

	return &runtime{cfg: cfg, logger: logger}, nil
}

// orchestrator builds a batch orchestrator for this invocation. A
// workers value below 1 falls back to the configured default; evaluate
// attaches the bundled strength evaluator.
func (r *runtime) orchestrator(evaluate bool, workers int) *batch.Orchestrator {
	if workers < 1 {
		workers = r.cfg.Workers
	}
	var ev strength.Evaluator
	if evaluate {
		ev = strength.NewZxcvbn()
	}
	return batch.New(workers, ev, r.logger)
}

// loadWordlist resolves the vocabulary for passphrase generation:
// explicit flag path, then configured default path, then the embedded
// list. Small vocabularies generate a warning since list size is the
// dominant security parameter.
func (r *runtime) loadWordlist(path string) (*wordlist.List, error) {
	if path == "" {
		path = r.cfg.WordlistPath
	}

	var (
		list *wordlist.List
		err  error
	)
	if path == "" {
		list = wordlist.Default()
	} else {
		list, err = wordlist.LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	if list.Len() < wordlist.RecommendedMinWords {
		r.logger.Warn().
			Int("words", list.Len()).
			Int("recommended", wordlist.RecommendedMinWords).
			Msg("small word list weakens passphrase entropy")
	}
	return list, nil
}

// printResults writes each secret to w on its own line, followed by its
// strength report when evaluation was requested.
func printResults(w io.Writer, results []batch.Result) {
	for _, res := range results {
		fmt.Fprintln(w, res.Secret.Value)
		if res.Report != nil {
			printReport(w, *res.Report, "  ")
		}
	}
}

// printReport renders one strength report, indenting every line with
// prefix.
func printReport(w io.Writer, report strength.Report, prefix string) {
	fmt.Fprintf(w, "%sscore:       %d/4 (est. %.3g guesses)\n", prefix, report.Score, report.Guesses)
	fmt.Fprintf(w, "%scrack times: online throttled %s | online %s | offline slow %s | offline fast %s\n",
		prefix,
		report.CrackTimes.OnlineThrottled,
		report.CrackTimes.OnlineNoThrottle,
		report.CrackTimes.OfflineSlowHash,
		report.CrackTimes.OfflineFastHash)
	if report.Warning != "" {
		fmt.Fprintf(w, "%swarning:     %s\n", prefix, report.Warning)
	}
	for _, s := range report.Suggestions {
		fmt.Fprintf(w, "%shint:        %s\n", prefix, s)
	}
}
