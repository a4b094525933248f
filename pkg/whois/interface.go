// Package whois defines the abstraction used to look up WHOIS registration
// records for candidate domain names.
package whois

import (
	"context"
)

// Record is a provider-independent view of a WHOIS registration record.
// Date fields are kept as the raw strings reported by the registry since
// formats vary per server.
type Record struct {
	Domain         string   // Domain is the domain name the record describes.
	Registrar      string   // Registrar is the sponsoring registrar, when reported.
	Statuses       []string // Statuses lists the EPP status codes attached to the registration.
	NameServers    []string // NameServers lists the delegated name servers.
	CreatedDate    string   // CreatedDate is the registration date as reported.
	ExpirationDate string   // ExpirationDate is the expiry date as reported.
}

// Client is the abstraction for WHOIS lookups. Implementations perform
// exactly one query per call: no retries, no backoff.
//
// A nil error means the registry returned a registration record; the record
// content is not validated further. A registered domain whose WHOIS server
// returns no record is therefore indistinguishable from an unregistered one,
// which is a known limitation of outcome-based classification.
//
//go:generate mockgen -package mockwhois -source=interface.go -destination=mock/mockwhois.go *
type Client interface {
	// Lookup performs one WHOIS query for the given fully qualified domain
	// name. It returns the parsed record when the domain is registered, a
	// serrors.ErrNoRecord error when the registry reports no registration,
	// or another error when the query itself failed (network fault, timeout,
	// unsupported TLD, unparseable response).
	Lookup(ctx context.Context, domain string) (*Record, error)
}
