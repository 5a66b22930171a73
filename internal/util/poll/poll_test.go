package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llamaup/llamaup/internal/util/retry"
)

func TestUntil_ReadyImmediately(t *testing.T) {
	t.Parallel()
	calls := 0

	err := Until(context.Background(), Spec{What: "ready", Interval: time.Hour, Timeout: time.Hour},
		func(context.Context) (bool, error) {
			calls++
			return true, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestUntil_ReadyAfterRetries(t *testing.T) {
	t.Parallel()
	calls := 0

	err := Until(context.Background(), Spec{What: "ready", Interval: 5 * time.Millisecond, Timeout: time.Second},
		func(context.Context) (bool, error) {
			calls++
			return calls >= 4, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 4, calls)
}

func TestUntil_TimeoutBounds(t *testing.T) {
	t.Parallel()
	const (
		interval = 20 * time.Millisecond
		timeout  = 100 * time.Millisecond
	)
	start := time.Now()

	err := Until(context.Background(), Spec{What: "never", Interval: interval, Timeout: timeout},
		func(context.Context) (bool, error) { return false, nil })

	elapsed := time.Since(start)
	var te *TimeoutError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "never", te.What)
	// Returns no earlier than the timeout and no later than timeout+interval
	// (plus scheduler slack).
	assert.GreaterOrEqual(t, elapsed, timeout)
	assert.Less(t, elapsed, timeout+interval+50*time.Millisecond)
}

func TestUntil_TransientErrorsKeepPolling(t *testing.T) {
	t.Parallel()
	calls := 0

	err := Until(context.Background(), Spec{What: "flaky", Interval: 5 * time.Millisecond, Timeout: time.Second},
		func(context.Context) (bool, error) {
			calls++
			if calls < 3 {
				return false, errors.New("connection refused")
			}
			return true, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestUntil_TimeoutReportsLastError(t *testing.T) {
	t.Parallel()
	lastErr := errors.New("connection refused")

	err := Until(context.Background(), Spec{What: "ssh", Interval: 5 * time.Millisecond, Timeout: 15 * time.Millisecond},
		func(context.Context) (bool, error) { return false, lastErr })

	var te *TimeoutError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, te, lastErr)
	assert.Contains(t, te.Error(), "connection refused")
}

func TestUntil_FatalAborts(t *testing.T) {
	t.Parallel()
	calls := 0
	boom := errors.New("invalid token")

	err := Until(context.Background(), Spec{What: "status", Interval: time.Hour, Timeout: time.Hour},
		func(context.Context) (bool, error) {
			calls++
			return false, retry.Fatal(boom)
		})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, boom)
	assert.False(t, IsTimeout(err))
}

func TestUntil_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := Until(ctx, Spec{What: "cancelled", Interval: time.Second, Timeout: time.Hour},
		func(context.Context) (bool, error) { return false, nil })

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsTimeout(t *testing.T) {
	t.Parallel()
	te := &TimeoutError{What: "x", Timeout: time.Second}
	assert.True(t, IsTimeout(te))
	assert.True(t, IsTimeout(fmtWrap(te)))
	assert.False(t, IsTimeout(errors.New("x")))
}

func fmtWrap(err error) error {
	return errors.Join(errors.New("stage failed"), err)
}
