package likexian_test

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"domaincheck/pkg/serrors"
	"domaincheck/pkg/whois/likexian"

	likexianwhois "github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"github.com/stretchr/testify/require"
)

// registeredRaw is a trimmed registry response for a registered .com domain.
const registeredRaw = `   Domain Name: EXAMPLE.COM
   Registry Domain ID: 2336799_DOMAIN_COM-VRSN
   Registrar WHOIS Server: whois.iana.org
   Registrar URL: http://res-dom.iana.org
   Updated Date: 2024-08-14T07:01:31Z
   Creation Date: 1995-08-14T04:00:00Z
   Registry Expiry Date: 2025-08-13T04:00:00Z
   Registrar: RESERVED-Internet Assigned Numbers Authority
   Registrar IANA ID: 376
   Domain Status: clientDeleteProhibited https://icann.org/epp#clientDeleteProhibited
   Domain Status: clientTransferProhibited https://icann.org/epp#clientTransferProhibited
   Domain Status: clientUpdateProhibited https://icann.org/epp#clientUpdateProhibited
   Name Server: A.IANA-SERVERS.NET
   Name Server: B.IANA-SERVERS.NET
   DNSSEC: signedDelegation

>>> Last update of whois database: 2024-08-14T07:01:31Z <<<
`

// notFoundRaw is a registry response for a domain without a registration
// record.
const notFoundRaw = `No match for domain "SURELY-NOBODY-REGISTERED-THIS-101.COM".

>>> Last update of whois database: 2024-08-14T07:02:12Z <<<
`

func Test_parseRecord_registered(t *testing.T) {
	record, err := likexian.ParseRecord(registeredRaw)
	require.NoError(t, err)
	require.NotNil(t, record)
	require.Equal(t, "example.com", strings.ToLower(record.Domain))
	require.NotEmpty(t, record.Registrar)
	require.NotEmpty(t, record.Statuses)
	require.NotEmpty(t, record.NameServers)
	require.NotEmpty(t, record.CreatedDate)
	require.NotEmpty(t, record.ExpirationDate)
}

func Test_parseRecord_notFound(t *testing.T) {
	record, err := likexian.ParseRecord(notFoundRaw)
	require.Error(t, err)
	require.Nil(t, record)
	require.ErrorIs(t, err, serrors.ErrNoRecord, "expected ErrNoRecord kind: %v", err)
	require.ErrorIs(t, err, whoisparser.ErrNotFoundDomain)
}

// blockingDialer parks every dial until release is closed, simulating a WHOIS
// server that accepts connections but never answers in time.
type blockingDialer struct {
	started chan struct{}
	release chan struct{}
}

func (d *blockingDialer) Dial(network, addr string) (net.Conn, error) {
	select {
	case d.started <- struct{}{}:
	default:
	}
	<-d.release

	return nil, errors.New("dial released")
}

// failingDialer refuses every dial, simulating an unreachable WHOIS server.
type failingDialer struct{}

func (failingDialer) Dial(network, addr string) (net.Conn, error) {
	return nil, errors.New("connection refused")
}

func TestClient_Lookup_emptyDomain(t *testing.T) {
	client := likexian.New(likexianwhois.NewClient().SetDialer(failingDialer{}))

	record, err := client.Lookup(context.Background(), "   ")
	require.Error(t, err)
	require.Nil(t, record)
	require.ErrorIs(t, err, serrors.ErrBadInput)
}

func TestClient_Lookup_contextTimeout(t *testing.T) {
	dialer := &blockingDialer{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	t.Cleanup(func() {
		close(dialer.release)
	})

	client := likexian.New(likexianwhois.NewClient().SetDialer(dialer))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	record, err := client.Lookup(ctx, "example.com")
	require.Error(t, err)
	require.Nil(t, record)
	require.ErrorIs(t, err, serrors.ErrTimeout, "expected ErrTimeout kind: %v", err)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	select {
	case <-dialer.started:
	case <-time.After(time.Second):
		require.Fail(t, "whois query never dialed")
	}
}

func TestClient_Lookup_serverUnreachable(t *testing.T) {
	client := likexian.New(likexianwhois.NewClient().SetDialer(failingDialer{}))

	record, err := client.Lookup(context.Background(), "example.com")
	require.Error(t, err)
	require.Nil(t, record)
	require.ErrorIs(t, err, serrors.ErrUnavailable, "expected ErrUnavailable kind: %v", err)
	require.NotErrorIs(t, err, serrors.ErrNoRecord)
}
