// Package batch orchestrates the generation of many independent
// secrets, optionally scoring each one, while preserving the
// secret-to-report correspondence by request index.
package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/passforge/passforge/internal/generator"
	"github.com/passforge/passforge/internal/random"
	"github.com/passforge/passforge/internal/strength"
)

// ErrInvalidCount rejects batch requests for fewer than one secret.
var ErrInvalidCount = errors.New("batch: count must be at least 1")

// Result pairs one generated secret with its strength report. Report is
// nil unless evaluation was requested for the batch.
type Result struct {
	Secret generator.Secret
	Report *strength.Report
}

// Orchestrator fans generation requests out across workers. Each worker
// owns a private random source; no state is shared between workers and
// results land in index-addressed slots, so no ordering lock is needed.
type Orchestrator struct {
	workers   int
	evaluator strength.Evaluator
	logger    zerolog.Logger
}

// New creates an orchestrator. workers below 1 is treated as 1; a nil
// evaluator disables strength scoring.
func New(workers int, evaluator strength.Evaluator, logger zerolog.Logger) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	return &Orchestrator{
		workers:   workers,
		evaluator: evaluator,
		logger:    logger,
	}
}

// GenerateMany produces count independent secrets from gen. Secrets are
// returned in request order; duplicates are possible since every draw
// is independent. The first error aborts the whole batch — partial
// output is never returned.
func (o *Orchestrator) GenerateMany(ctx context.Context, gen generator.Generator, count int) ([]Result, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	log := o.logger.With().
		Str("batch_id", uuid.NewString()).
		Str("kind", string(gen.Kind())).
		Int("count", count).
		Logger()

	start := time.Now()
	results := make([]Result, count)

	if o.workers == 1 || count == 1 {
		src := random.NewCrypto()
		for i := range results {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := o.generateOne(gen, src, &results[i]); err != nil {
				return nil, err
			}
		}
		log.Debug().Dur("elapsed", time.Since(start)).Msg("batch complete")
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)

	indexes := make(chan int)
	g.Go(func() error {
		defer close(indexes)
		for i := 0; i < count; i++ {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	workers := o.workers
	if workers > count {
		workers = count
	}
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			// Private source per worker; sources are not safe to share.
			src := random.NewCrypto()
			for i := range indexes {
				if err := o.generateOne(gen, src, &results[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug().Int("workers", workers).Dur("elapsed", time.Since(start)).Msg("batch complete")
	return results, nil
}

func (o *Orchestrator) generateOne(gen generator.Generator, src random.Source, out *Result) error {
	secret, err := gen.Generate(src)
	if err != nil {
		return fmt.Errorf("generating secret: %w", err)
	}
	out.Secret = secret

	if o.evaluator != nil {
		report, err := o.evaluator.Evaluate(secret.Value)
		if err != nil {
			return fmt.Errorf("evaluating secret: %w", err)
		}
		out.Report = &report
	}
	return nil
}
