package checker

import (
	"context"
	"fmt"

	"domaincheck/pkg/domain"

	"golang.org/x/sync/errgroup"
)

// runConcurrent probes candidates on a bounded pool. Probes complete out of
// order; each result lands at its candidate's index so the returned slice
// stays in generation order. The listener is still invoked sequentially at
// dispatch time, before the candidate's probe is issued. When the pool is
// saturated, dispatch blocks until a slot frees, so the listener never runs
// ahead of the pool by more than one candidate.
func (c *Checker) runConcurrent(ctx context.Context,
	candidates []domain.Candidate,
	listener ProgressListener) ([]domain.Result, error) {
	results := make([]domain.Result, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.options.Concurrency)

	var dispatchErr error
	for i, candidate := range candidates {
		// Pre-go1.22 loop semantics share the loop variables across
		// iterations; copy them so the closure below sees this iteration's
		// values.
		i, candidate := i, candidate
		if err := gctx.Err(); err != nil {
			dispatchErr = fmt.Errorf("scan aborted: %w", err)

			break
		}

		if listener != nil {
			if err := listener.CandidateQueued(candidate); err != nil {
				dispatchErr = fmt.Errorf("progress listener failed: %w", err)

				break
			}
		}

		g.Go(func() error {
			// The scan may have been canceled while this probe waited for
			// a pool slot.
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.probe(gctx, candidate)

			return nil
		})
	}

	// In-flight probes always run to completion, even when dispatch stopped
	// early.
	if err := g.Wait(); err != nil && dispatchErr == nil {
		dispatchErr = fmt.Errorf("scan aborted: %w", err)
	}
	if dispatchErr != nil {
		return nil, dispatchErr
	}

	return results, nil
}
