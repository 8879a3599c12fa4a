package retry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type lineSink struct {
	lines []string
}

func (s *lineSink) Append(line string) {
	s.lines = append(s.lines, line)
}

type recordedSleeps struct {
	waits []time.Duration
}

func (r *recordedSleeps) sleep(ctx context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)
	return nil
}

func TestBackoff(t *testing.T) {
	policy := DefaultPolicy()
	cases := []struct {
		attempt  int
		expected time.Duration
	}{
		{attempt: 0, expected: time.Second},
		{attempt: 1, expected: 2 * time.Second},
		{attempt: 2, expected: 4 * time.Second},
		{attempt: 3, expected: 8 * time.Second},
		{attempt: 4, expected: 16 * time.Second},
		{attempt: 5, expected: 16 * time.Second},
		{attempt: 40, expected: 16 * time.Second},
	}
	for _, test := range cases {
		require.Equal(t, test.expected, policy.Backoff(test.attempt), "attempt %d", test.attempt)
	}
}

func TestRetryBound(t *testing.T) {
	for _, maxRetry := range []int{0, 1, 3, 6} {
		sleeps := &recordedSleeps{}
		sink := &lineSink{}
		policy := DefaultPolicy()
		policy.MaxRetry = maxRetry
		policy.Sleep = sleeps.sleep

		attempts := 0
		err := RunStore(context.Background(), policy, sink, "store.write", func(ctx context.Context) error {
			attempts++
			return fmt.Errorf("rpc error: code = Unavailable attempt %d", attempts)
		})

		require.Error(t, err)
		require.Contains(t, err.Error(), fmt.Sprintf("attempt %d", maxRetry+1))
		require.Equal(t, maxRetry+1, attempts)
		require.Len(t, sleeps.waits, maxRetry)
		for i, wait := range sleeps.waits {
			require.Equal(t, policy.Backoff(i), wait)
		}
		require.Len(t, sink.lines, maxRetry+1)
		for _, line := range sink.lines {
			require.True(t, strings.HasPrefix(line, "store.write: "), line)
		}
	}
}

func TestStoreVariantPermanentError(t *testing.T) {
	sleeps := &recordedSleeps{}
	policy := DefaultPolicy()
	policy.Sleep = sleeps.sleep

	attempts := 0
	permanent := errors.New("constraint failed: NOT NULL")
	err := RunStore(context.Background(), policy, nil, "store.write", func(ctx context.Context) error {
		attempts++
		return permanent
	})
	require.ErrorIs(t, err, permanent)
	require.Equal(t, 1, attempts)
	require.Empty(t, sleeps.waits)
}

func TestGenericVariantRetriesAnything(t *testing.T) {
	sleeps := &recordedSleeps{}
	policy := DefaultPolicy()
	policy.Sleep = sleeps.sleep

	attempts := 0
	value, err := Do(context.Background(), policy, nil, "op", func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("boom")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", value)
	require.Equal(t, 3, attempts)
	require.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeps.waits)
}

func TestContextCancelAbortsWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	policy := DefaultPolicy()
	attempts := 0
	err := Run(ctx, policy, nil, "op", func(ctx context.Context) error {
		attempts++
		return errors.New("boom")
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, attempts)
}

func TestIsTransient(t *testing.T) {
	cases := []struct {
		err      error
		expected bool
	}{
		{err: nil, expected: false},
		{err: errors.New("Service Unavailable"), expected: true},
		{err: errors.New("context deadline exceeded"), expected: true},
		{err: errors.New("i/o timeout"), expected: true},
		{err: errors.New("status 503"), expected: true},
		{err: errors.New("upstream returned 504"), expected: true},
		{err: errors.New("database is locked (5) (SQLITE_BUSY)"), expected: true},
		{err: errors.New("no such table: documents"), expected: false},
		{err: errors.New("permission denied"), expected: false},
	}
	for _, test := range cases {
		require.Equal(t, test.expected, IsTransient(test.err), fmt.Sprint(test.err))
	}
}
