// Package likexian provides a whois.Client implementation backed by the
// likexian whois query and parser libraries.
package likexian

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"domaincheck/pkg/serrors"
	"domaincheck/pkg/whois"

	likexianwhois "github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// Client performs WHOIS lookups through the likexian whois library and
// fulfills the whois.Client interface. It is safe for concurrent use.
type Client struct {
	whoisClient *likexianwhois.Client // whoisClient performs the raw WHOIS queries
}

// ParseRecord parses a raw WHOIS server response into a whois.Record.
// It returns a serrors.ErrNoRecord error when the response states that the
// domain has no registration record, and a plain error when the response
// cannot be parsed at all (including reserved, premium and blocked domains,
// which are neither registered nor confirmed available).
func ParseRecord(raw string) (*whois.Record, error) {
	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		if errors.Is(err, whoisparser.ErrNotFoundDomain) {
			return nil, serrors.Wrap(serrors.ErrNoRecord, err, "domain is not registered")
		}

		return nil, fmt.Errorf("could not parse whois response: %w", err)
	}

	record := &whois.Record{}
	if parsed.Domain != nil {
		record.Domain = parsed.Domain.Domain
		record.Statuses = parsed.Domain.Status
		record.NameServers = parsed.Domain.NameServers
		record.CreatedDate = parsed.Domain.CreatedDate
		record.ExpirationDate = parsed.Domain.ExpirationDate
	}
	if parsed.Registrar != nil {
		record.Registrar = parsed.Registrar.Name
	}

	return record, nil
}

// Lookup performs a single WHOIS query for the given domain and parses the
// response. The underlying library does not take a context, so the query runs
// in its own goroutine and the call returns as soon as ctx is done; the
// abandoned query finishes in the background on its own timeout.
func (c *Client) Lookup(ctx context.Context, domain string) (*whois.Record, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return nil, serrors.With(serrors.ErrBadInput, "empty domain name")
	}

	type queryResult struct {
		raw string
		err error
	}
	resCh := make(chan queryResult, 1)
	go func() {
		raw, err := c.whoisClient.Whois(domain)
		resCh <- queryResult{raw: raw, err: err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "whois query for %q timed out", domain)
		}

		return nil, fmt.Errorf("whois query for %q aborted: %w", domain, ctx.Err())
	case res := <-resCh:
		if res.err != nil {
			var netErr net.Error
			if errors.As(res.err, &netErr) && netErr.Timeout() {
				return nil, serrors.Wrap(serrors.ErrTimeout, res.err, "whois query for %q timed out", domain)
			}

			return nil, serrors.Wrap(serrors.ErrUnavailable, res.err, "whois query for %q failed", domain)
		}

		return ParseRecord(res.raw)
	}
}

// Ensure Client conforms to the whois.Client interface at compile time.
var _ whois.Client = (*Client)(nil)

// New constructs a Client that queries WHOIS servers through the provided
// library client. Query timeouts are configured on the library client via
// SetTimeout; per-call deadlines come from the context passed to Lookup.
func New(whoisClient *likexianwhois.Client) *Client {
	return &Client{
		whoisClient: whoisClient,
	}
}
