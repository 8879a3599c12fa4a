// Package retry runs operations again after failures with an exponential backoff.
package retry

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Sink receives a line for every failed attempt.
type Sink interface {
	Append(line string)
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Policy describes how many times an operation is retried and how long to wait in between.
type Policy struct {
	// MaxRetry is the amount of retries after the first attempt, so an operation is attempted
	// at most MaxRetry+1 times.
	MaxRetry  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
	// Sleep defaults to a context-aware timer.
	Sleep SleepFunc
}

// DefaultPolicy is 3 retries with the waits 1s, 2s, 4s.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetry:  3,
		BaseDelay: time.Second,
		MaxDelay:  16 * time.Second,
	}
}

// Backoff returns the wait after the i-th failed attempt (0-based): min(MaxDelay, BaseDelay*2^i).
func (p Policy) Backoff(i int) time.Duration {
	wait := p.BaseDelay
	for n := 0; n < i; n++ {
		wait *= 2
		if wait >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if wait > p.MaxDelay {
		return p.MaxDelay
	}
	return wait
}

func (p Policy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	return sleepContext(ctx, d)
}

// ShouldRetry decides if an error is worth another attempt.
type ShouldRetry func(err error) bool

// Always retries every error.
func Always(error) bool {
	return true
}

var transientMarkers = []string{
	"unavailable",
	"deadline",
	"timeout",
	"503",
	"504",
	// sqlite reports contention this way
	"database is locked",
	"busy",
}

// IsTransient reports whether err looks like a temporary store failure.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// DoIf runs fn until it succeeds, until shouldRetry rejects its error or until the policy is
// exhausted, in which case the last error is returned. Every failed attempt is appended to sink
// (which may be nil) under label.
func DoIf[T any](
	ctx context.Context,
	policy Policy,
	sink Sink,
	label string,
	shouldRetry ShouldRetry,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt <= policy.MaxRetry; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			if sink != nil {
				sink.Append(fmt.Sprintf("%s: attempt %d failed permanently: %v", label, attempt+1, err))
			}
			return zero, err
		}
		if attempt == policy.MaxRetry {
			if sink != nil {
				sink.Append(fmt.Sprintf("%s: attempt %d failed, giving up: %v", label, attempt+1, err))
			}
			break
		}

		wait := policy.Backoff(attempt)
		if sink != nil {
			sink.Append(fmt.Sprintf("%s: attempt %d failed, retrying in %s: %v", label, attempt+1, wait, err))
		}
		sleepErr := policy.sleep(ctx, wait)
		if sleepErr != nil {
			return zero, fmt.Errorf("%s: %w (last error: %v)", label, sleepErr, lastErr)
		}
	}
	return zero, lastErr
}

// Do retries fn on any error.
func Do[T any](ctx context.Context, policy Policy, sink Sink, label string, fn func(ctx context.Context) (T, error)) (T, error) {
	return DoIf(ctx, policy, sink, label, Always, fn)
}

// DoStore retries fn only on transient store errors.
func DoStore[T any](ctx context.Context, policy Policy, sink Sink, label string, fn func(ctx context.Context) (T, error)) (T, error) {
	return DoIf(ctx, policy, sink, label, IsTransient, fn)
}

// Run is Do for operations without a result.
func Run(ctx context.Context, policy Policy, sink Sink, label string, fn func(ctx context.Context) error) error {
	_, err := Do(ctx, policy, sink, label, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// RunStore is DoStore for operations without a result.
func RunStore(ctx context.Context, policy Policy, sink Sink, label string, fn func(ctx context.Context) error) error {
	_, err := DoStore(ctx, policy, sink, label, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
