package domain

import "github.com/google/uuid"

// RunID uniquely identifies one availability check run.
// It wraps uuid.UUID to provide type safety at the domain layer.
type RunID uuid.UUID

// NewRunID returns a fresh random RunID.
func NewRunID() RunID { return RunID(uuid.New()) }

// String returns the canonical textual form of the RunID.
func (id RunID) String() string { return uuid.UUID(id).String() }

// Verdict is the availability classification attached to exactly one
// candidate's domain name. The classification is derived solely from the
// outcome of a single WHOIS query; response content is never inspected.
type Verdict string

const (
	// VerdictRegistered indicates the WHOIS query returned a registration
	// record. Any record counts, even a sparse one; a registered domain whose
	// server returns no record at all is misclassified as available, which is
	// a known limitation of deriving the verdict from query outcome alone.
	VerdictRegistered Verdict = "REGISTERED"
	// VerdictAvailable indicates the WHOIS server reported no registration
	// record for the domain.
	VerdictAvailable Verdict = "AVAILABLE"
	// VerdictUnknown indicates the query faulted (network, timeout, parse)
	// before availability could be established; see Result.Err for details.
	VerdictUnknown Verdict = "UNKNOWN"
)

// String returns the verdict's wire form.
func (v Verdict) String() string { return string(v) }

// Candidate is a generated (domain, base) pair awaiting an availability
// verdict. Candidates are immutable once generated: created by the
// combination generator, probed exactly once, then discarded.
type Candidate struct {
	// Name is the fully qualified domain name, base + "." + TLD.
	Name string `json:"name"`
	// Base is the base string the name was generated from.
	Base string `json:"base"`
}

// Result is the outcome of probing one candidate.
type Result struct {
	// Candidate is the probed candidate.
	Candidate Candidate `json:"candidate"`
	// Verdict is the availability classification of the candidate.
	Verdict Verdict `json:"verdict"`
	// Err holds the probe fault when Verdict is VerdictUnknown; nil otherwise.
	Err error `json:"-"`
}
