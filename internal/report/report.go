// Package report renders scan progress and final results for the CLI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"domaincheck/internal/checker"
	"domaincheck/pkg/domain"
)

// Printer streams one progress line per candidate to w as the scan queues
// candidates for probing.
type Printer struct {
	w io.Writer
}

// CandidateQueued writes the progress line for the candidate about to be
// probed.
func (p *Printer) CandidateQueued(candidate domain.Candidate) error {
	if _, err := fmt.Fprintf(p.w, "Checking: %s\n", candidate.Name); err != nil {
		return fmt.Errorf("could not write progress line: %w", err)
	}

	return nil
}

// Ensure Printer conforms to the ProgressListener interface at compile time.
var _ checker.ProgressListener = (*Printer)(nil)

// NewPrinter creates a Printer writing progress lines to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Summary is the final report of one scan run.
type Summary struct {
	// RunID identifies the scan run.
	RunID string `json:"runId"`
	// Candidates is the number of generated candidates.
	Candidates int `json:"candidates"`
	// Registered is the number of candidates holding a registration record.
	Registered int `json:"registered"`
	// Available lists the domains that appear unregistered, in generation order.
	Available []string `json:"available"`
	// Unknown lists the domains whose probes faulted, in generation order.
	Unknown []string `json:"unknown"`
	// StartedAt is the time the scan started.
	StartedAt time.Time `json:"startedAt"`
	// Elapsed is the total scan duration.
	Elapsed string `json:"elapsed"`
}

// NewSummary aggregates per-candidate results into a Summary.
func NewSummary(runID domain.RunID, results []domain.Result, startedAt time.Time, elapsed time.Duration) Summary {
	s := Summary{
		RunID:      runID.String(),
		Candidates: len(results),
		Available:  checker.AvailableDomains(results),
		Unknown:    checker.UnknownDomains(results),
		StartedAt:  startedAt,
		Elapsed:    elapsed.String(),
	}
	s.Registered = s.Candidates - len(s.Available) - len(s.Unknown)

	return s
}

// WriteText renders the plain form of the summary: a header followed by one
// available domain per line, or a fixed line when no domain is available.
func (s Summary) WriteText(w io.Writer) error {
	if len(s.Available) == 0 {
		if _, err := fmt.Fprintln(w, "No available domains found."); err != nil {
			return fmt.Errorf("could not write summary: %w", err)
		}

		return nil
	}

	if _, err := fmt.Fprintln(w, "Available domains:"); err != nil {
		return fmt.Errorf("could not write summary: %w", err)
	}
	for _, name := range s.Available {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return fmt.Errorf("could not write summary: %w", err)
		}
	}

	return nil
}

// WriteJSON renders the summary as indented JSON.
func (s Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("could not encode summary: %w", err)
	}

	return nil
}
