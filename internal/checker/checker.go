// Package checker implements the availability scan: candidate generation from
// base strings and TLDs, one WHOIS probe per candidate and verdict
// aggregation in generation order.
package checker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"domaincheck/internal/config"
	"domaincheck/pkg/domain"
	"domaincheck/pkg/logger"
	"domaincheck/pkg/metrics"
	"domaincheck/pkg/serrors"
	"domaincheck/pkg/whois"

	"go.uber.org/zap"
)

// ProgressListener is notified right before each candidate's probe is issued,
// in generation order. A non-nil error aborts the remaining scan.
type ProgressListener interface {
	CandidateQueued(candidate domain.Candidate) error
}

// ProgressFunc adapts a plain function to the ProgressListener interface.
type ProgressFunc func(candidate domain.Candidate) error

// CandidateQueued calls f(candidate).
func (f ProgressFunc) CandidateQueued(candidate domain.Candidate) error { return f(candidate) }

// Options configure how a scan probes its candidates.
// These settings are typically derived from application configuration.
type Options struct {
	// Concurrency is the number of probes allowed in flight at once. Values
	// below 2 run the scan sequentially.
	Concurrency int
	// ProbeTimeout bounds a single WHOIS probe. Zero disables the bound.
	ProbeTimeout time.Duration
	// AssumeAvailableOnError classifies every failed probe as available
	// instead of unknown, collapsing the verdicts back to two states.
	AssumeAvailableOnError bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Concurrency:            cfg.Checker.Concurrency,
		ProbeTimeout:           cfg.Checker.ProbeTimeout,
		AssumeAvailableOnError: cfg.Checker.AssumeAvailableOnError,
	}
}

// Checker runs availability scans over generated candidates, probing each
// exactly once through the WHOIS client.
type Checker struct {
	// options holds runtime configuration that affects probing and verdicts.
	options Options
	// prober performs the single WHOIS query per candidate.
	prober whois.Client
}

// Run probes every candidate and returns one result per candidate, in
// generation order regardless of probe completion order. The optional
// listener is invoked before each candidate's probe, in generation order; a
// listener error aborts the remaining scan. Probe faults never abort the
// scan, they are recorded on the candidate's result.
func (c *Checker) Run(ctx context.Context,
	candidates []domain.Candidate,
	listener ProgressListener) ([]domain.Result, error) {
	if c.options.Concurrency > 1 {
		return c.runConcurrent(ctx, candidates, listener)
	}

	return c.runSequential(ctx, candidates, listener)
}

// runSequential probes candidates one at a time in generation order.
func (c *Checker) runSequential(ctx context.Context,
	candidates []domain.Candidate,
	listener ProgressListener) ([]domain.Result, error) {
	results := make([]domain.Result, len(candidates))
	for i, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scan aborted: %w", err)
		}

		if listener != nil {
			if err := listener.CandidateQueued(candidate); err != nil {
				return nil, fmt.Errorf("progress listener failed: %w", err)
			}
		}

		results[i] = c.probe(ctx, candidate)
	}

	return results, nil
}

// probe issues one WHOIS query for the candidate and classifies the outcome.
// There are no retries; the single query's outcome is the verdict.
func (c *Checker) probe(ctx context.Context, candidate domain.Candidate) domain.Result {
	probeCtx := ctx
	if c.options.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, c.options.ProbeTimeout)
		defer cancel()
	}

	start := time.Now()
	_, err := c.prober.Lookup(probeCtx, candidate.Name)
	verdict := c.classify(err)
	metrics.RecordProbe(ctx, verdict, time.Since(start))

	result := domain.Result{Candidate: candidate, Verdict: verdict}
	if verdict == domain.VerdictUnknown {
		result.Err = err
	}
	if err != nil {
		logger.Debug(ctx, "probe faulted",
			zap.String("domain", candidate.Name),
			zap.String("verdict", verdict.String()),
			zap.Error(err))
	}

	return result
}

// classify maps a probe outcome to a verdict. A nil error means the WHOIS
// server returned a registration record for the domain.
func (c *Checker) classify(err error) domain.Verdict {
	switch {
	case err == nil:
		return domain.VerdictRegistered
	case errors.Is(err, serrors.ErrNoRecord):
		return domain.VerdictAvailable
	case c.options.AssumeAvailableOnError:
		return domain.VerdictAvailable
	default:
		return domain.VerdictUnknown
	}
}

// AvailableDomains extracts the names of the candidates that appear
// unregistered, preserving generation order.
func AvailableDomains(results []domain.Result) []string {
	var names []string
	for _, res := range results {
		if res.Verdict == domain.VerdictAvailable {
			names = append(names, res.Candidate.Name)
		}
	}

	return names
}

// UnknownDomains extracts the names of the candidates whose probes faulted
// without establishing availability, preserving generation order.
func UnknownDomains(results []domain.Result) []string {
	var names []string
	for _, res := range results {
		if res.Verdict == domain.VerdictUnknown {
			names = append(names, res.Candidate.Name)
		}
	}

	return names
}

// New creates a new Checker backed by the provided WHOIS client and
// configured with the given options.
func New(prober whois.Client, options Options) *Checker {
	return &Checker{
		options: options,
		prober:  prober,
	}
}
