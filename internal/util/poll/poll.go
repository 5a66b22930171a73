// Package poll implements fixed-cadence readiness polling with a bounded
// overall wait.
//
// The same shape repeats across provisioning: evaluate some remote state,
// treat "not yet" and transient read failures alike, and give up only when
// the overall budget is spent. Whether a spent budget is fatal or merely a
// warning is decided by the caller, not here.
package poll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/llamaup/llamaup/internal/util/retry"
)

// Predicate reports whether the awaited condition holds. A non-nil error is
// treated as "not yet" and the loop continues, unless the error is marked
// with retry.Fatal, which aborts the wait immediately.
type Predicate func(ctx context.Context) (bool, error)

// Spec bounds a single wait.
type Spec struct {
	// What names the awaited condition for error messages.
	What string
	// Interval is the cadence between predicate evaluations.
	Interval time.Duration
	// Timeout is the maximum elapsed time before giving up.
	Timeout time.Duration
}

// TimeoutError reports that a bounded wait spent its budget without the
// predicate becoming true.
type TimeoutError struct {
	What    string
	Timeout time.Duration
	LastErr error
}

func (e *TimeoutError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("timed out after %v waiting for %s (last error: %v)", e.Timeout, e.What, e.LastErr)
	}
	return fmt.Sprintf("timed out after %v waiting for %s", e.Timeout, e.What)
}

func (e *TimeoutError) Unwrap() error { return e.LastErr }

// IsTimeout reports whether err is (or wraps) a TimeoutError.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// Until evaluates the predicate on a fixed cadence until it reports true,
// the spec's timeout elapses, or the predicate returns a fatal error.
//
// The predicate is evaluated immediately, then once per interval. Returns
// nil once the predicate is true, a *TimeoutError no earlier than Timeout
// and no later than Timeout+Interval, the fatal error unwrapped if the
// predicate aborts, or ctx.Err() on cancellation.
func Until(ctx context.Context, spec Spec, pred Predicate) error {
	deadline := time.Now().Add(spec.Timeout)
	var lastErr error

	for {
		ok, err := pred(ctx)
		if err != nil {
			if retry.IsFatal(err) {
				return fmt.Errorf("waiting for %s: %w", spec.What, unwrapFatal(err))
			}
			lastErr = err
		} else if ok {
			return nil
		}

		if !time.Now().Before(deadline) {
			return &TimeoutError{What: spec.What, Timeout: spec.Timeout, LastErr: lastErr}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(spec.Interval):
		}
	}
}

func unwrapFatal(err error) error {
	var fe *retry.FatalError
	if errors.As(err, &fe) {
		return fe.Err
	}
	return err
}
