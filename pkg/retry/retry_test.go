package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSleeper struct {
	delays []time.Duration
}

func (r *recordingSleeper) Sleep(d time.Duration) {
	r.delays = append(r.delays, d)
}

func swapSleeper(t *testing.T) *recordingSleeper {
	t.Helper()
	rs := &recordingSleeper{}
	prev := sleepFn
	sleepFn = rs.Sleep
	t.Cleanup(func() { sleepFn = prev })
	return rs
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	attempts, err := Do(func() error { return nil }, Limit(3))
	assert.NoError(t, err)
	assert.Equal(t, uint(1), attempts)
}

func TestDo_FailTwiceThenSucceed(t *testing.T) {
	rs := swapSleeper(t)

	calls := 0
	attempts, err := Do(
		func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		},
		Limit(3),
		Backoff(Linear(100*time.Millisecond), time.Second),
	)

	assert.NoError(t, err)
	assert.Equal(t, uint(3), attempts)
	assert.Equal(t, 3, calls)

	require.Len(t, rs.delays, 2)
	assert.Equal(t, 100*time.Millisecond, rs.delays[0])
	assert.Equal(t, 200*time.Millisecond, rs.delays[1])
	assert.Less(t, rs.delays[0], rs.delays[1])
}

func TestDo_Exhausted(t *testing.T) {
	swapSleeper(t)

	permanent := errors.New("still broken")
	calls := 0
	attempts, err := Do(
		func() error {
			calls++
			return permanent
		},
		Limit(3),
		Backoff(Constant(time.Millisecond), time.Millisecond),
	)

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, uint(3), attempts)
	assert.Equal(t, 3, calls)
}

func TestDo_NonRetriable(t *testing.T) {
	swapSleeper(t)

	fatal := errors.New("fatal")
	attempts, err := Do(
		func() error { return fatal },
		NonRetriable(fatal),
		Limit(5),
	)

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, uint(1), attempts)
}

func TestDo_BackoffCapped(t *testing.T) {
	rs := swapSleeper(t)

	_, err := Do(
		func() error { return errors.New("transient") },
		Limit(4),
		Backoff(BinaryExponential(100*time.Millisecond), 250*time.Millisecond),
	)

	assert.Error(t, err)
	require.Len(t, rs.delays, 3)
	assert.Equal(t, 100*time.Millisecond, rs.delays[0])
	assert.Equal(t, 200*time.Millisecond, rs.delays[1])
	assert.Equal(t, 250*time.Millisecond, rs.delays[2])
}

func TestDelayFuncs(t *testing.T) {
	assert.Equal(t, 3*time.Second, Constant(3*time.Second)(7))
	assert.Equal(t, 6*time.Second, Linear(2*time.Second)(3))
	assert.Equal(t, 8*time.Second, BinaryExponential(time.Second)(4))
}
