package checker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"domaincheck/internal/checker"
	"domaincheck/pkg/domain"
	"domaincheck/pkg/whois"
	mockwhois "domaincheck/pkg/whois/mock"
)

// runOutcome carries a Run return value across goroutines.
type runOutcome struct {
	results []domain.Result
	err     error
}

func runAsync(ctx context.Context,
	chk *checker.Checker,
	candidates []domain.Candidate,
	listener checker.ProgressListener) <-chan runOutcome {
	done := make(chan runOutcome, 1)
	go func() {
		results, err := chk.Run(ctx, candidates, listener)
		done <- runOutcome{results: results, err: err}
	}()

	return done
}

func TestChecker_RunConcurrent_PreservesGenerationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockwhois.NewMockClient(ctrl)
	chk := checker.New(mock, checker.Options{Concurrency: 2})

	candidates := []domain.Candidate{
		{Name: "a.com", Base: "a"},
		{Name: "b.net", Base: "b"},
	}

	// a.com's probe finishes strictly after b.net's, so completion order is
	// the reverse of generation order.
	release := make(chan struct{})
	mock.EXPECT().Lookup(gomock.Any(), "a.com").DoAndReturn(
		func(context.Context, string) (*whois.Record, error) {
			<-release

			return nil, noRecordErr()
		},
	)
	mock.EXPECT().Lookup(gomock.Any(), "b.net").DoAndReturn(
		func(context.Context, string) (*whois.Record, error) {
			close(release)

			return nil, noRecordErr()
		},
	)

	done := runAsync(context.Background(), chk, candidates, nil)

	select {
	case out := <-done:
		require.NoError(t, out.err)
		require.Len(t, out.results, 2)
		require.Equal(t, "a.com", out.results[0].Candidate.Name)
		require.Equal(t, "b.net", out.results[1].Candidate.Name)
		require.Equal(t, []string{"a.com", "b.net"}, checker.AvailableDomains(out.results))
	case <-time.After(2 * time.Second):
		t.Fatal("scan did not finish in time")
	}
}

func TestChecker_RunConcurrent_LimitsInFlightProbes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockwhois.NewMockClient(ctrl)
	chk := checker.New(mock, checker.Options{Concurrency: 2})

	candidates := []domain.Candidate{
		{Name: "a.com", Base: "a"},
		{Name: "b.com", Base: "b"},
		{Name: "c.com", Base: "c"},
	}

	started := make(chan struct{}, len(candidates))
	hold := make(chan struct{})
	mock.EXPECT().Lookup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string) (*whois.Record, error) {
			started <- struct{}{}
			<-hold

			return registeredRecord(name), nil
		},
	).Times(len(candidates))

	done := runAsync(context.Background(), chk, candidates, nil)

	// Two probes start immediately, filling the pool.
	for n := 0; n < 2; n++ {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("probe did not start in time")
		}
	}

	// The third must stay queued while both slots are busy.
	select {
	case <-started:
		t.Fatal("third probe started despite the concurrency limit")
	case <-time.After(100 * time.Millisecond):
		// expected: still queued
	}

	close(hold)

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("third probe did not start after a slot freed")
	}

	select {
	case out := <-done:
		require.NoError(t, out.err)
		require.Len(t, out.results, 3)
	case <-time.After(2 * time.Second):
		t.Fatal("scan did not finish after probes were released")
	}
}

func TestChecker_RunConcurrent_ListenerErrorStopsDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockwhois.NewMockClient(ctrl)
	chk := checker.New(mock, checker.Options{Concurrency: 2})

	candidates := []domain.Candidate{
		{Name: "a.com", Base: "a"},
		{Name: "b.net", Base: "b"},
		{Name: "c.org", Base: "c"},
	}

	// Only the first candidate is dispatched; the listener fails on the
	// second and the rest of the scan never probes.
	mock.EXPECT().Lookup(gomock.Any(), "a.com").Return(registeredRecord("a.com"), nil).Times(1)

	listenerErr := errors.New("broken pipe")
	calls := 0
	listener := checker.ProgressFunc(func(domain.Candidate) error {
		calls++
		if calls == 2 {
			return listenerErr
		}

		return nil
	})

	results, err := chk.Run(context.Background(), candidates, listener)
	require.Error(t, err)
	require.ErrorIs(t, err, listenerErr)
	require.Nil(t, results)
	require.Equal(t, 2, calls)
}

func TestChecker_RunConcurrent_ListenerInGenerationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockwhois.NewMockClient(ctrl)
	chk := checker.New(mock, checker.Options{Concurrency: 3})

	candidates := []domain.Candidate{
		{Name: "a.com", Base: "a"},
		{Name: "b.net", Base: "b"},
		{Name: "c.org", Base: "c"},
	}

	mock.EXPECT().Lookup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string) (*whois.Record, error) {
			return registeredRecord(name), nil
		},
	).Times(len(candidates))

	// Dispatch is sequential even when probes race, so no locking is needed.
	var seen []string
	listener := checker.ProgressFunc(func(candidate domain.Candidate) error {
		seen = append(seen, candidate.Name)

		return nil
	})

	results, err := chk.Run(context.Background(), candidates, listener)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, []string{"a.com", "b.net", "c.org"}, seen)
}

func TestChecker_RunConcurrent_ContextCanceledAbortsScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockwhois.NewMockClient(ctrl)
	chk := checker.New(mock, checker.Options{Concurrency: 2})

	candidates := []domain.Candidate{
		{Name: "a.com", Base: "a"},
		{Name: "b.com", Base: "b"},
		{Name: "c.com", Base: "c"},
		{Name: "d.com", Base: "d"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// a.com and b.com occupy both pool slots until released; c.com and d.com
	// must never be probed once the scan is canceled.
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	for _, name := range []string{"a.com", "b.com"} {
		mock.EXPECT().Lookup(gomock.Any(), name).DoAndReturn(
			func(ctx context.Context, _ string) (*whois.Record, error) {
				started <- struct{}{}
				<-release

				return nil, ctx.Err()
			},
		)
	}

	done := runAsync(ctx, chk, candidates, nil)

	for n := 0; n < 2; n++ {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("probe did not start in time")
		}
	}

	cancel()
	close(release)

	select {
	case out := <-done:
		require.Error(t, out.err)
		require.ErrorIs(t, out.err, context.Canceled)
		require.Nil(t, out.results)
	case <-time.After(2 * time.Second):
		t.Fatal("scan did not abort after cancellation")
	}
}
