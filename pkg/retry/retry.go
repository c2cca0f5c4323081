// Package retry executes fallible actions with bounded retries and
// configurable backoff. It is intended for network-fallible calls such as
// event publication; persistence writes should fail fast instead.
package retry

import (
	"errors"
	"math"
	"time"
)

// Action is a function to be performed in a retriable manner.
type Action func() error

// Strategy decides whether a failed attempt should be retried. Strategies may
// delay as a side effect. Note: attempt starts at 1.
type Strategy func(attempt uint, err error) bool

// DelayFunc returns how long to wait before the next attempt.
type DelayFunc func(attempt uint) time.Duration

// sleepFn is swapped out in tests to avoid real sleeps.
var sleepFn = time.Sleep

// Do executes action, retrying while every strategy agrees the failure should
// be retried. Strategies run in order, so delay-inducing ones go last. It
// returns the number of attempts performed alongside the final error, which is
// nil on success and the last action error on exhaustion.
func Do(action Action, strategies ...Strategy) (uint, error) {
	for attempt := uint(1); ; attempt++ {
		err := action()
		if err == nil {
			return attempt, nil
		}

		for _, s := range strategies {
			if !s(attempt, err) {
				return attempt, err
			}
		}
	}
}

// Limit caps the total number of attempts. maxAttempts should be >= 1 since
// the action is always executed once.
func Limit(maxAttempts uint) Strategy {
	return func(attempt uint, err error) bool {
		return attempt < maxAttempts
	}
}

// NonRetriable stops retrying as soon as the error matches one of the given
// sentinels.
func NonRetriable(sentinels ...error) Strategy {
	return func(attempt uint, err error) bool {
		for _, s := range sentinels {
			if errors.Is(err, s) {
				return false
			}
		}
		return true
	}
}

// Backoff sleeps according to delay before allowing the next attempt, capped
// at maxDelay.
func Backoff(delay DelayFunc, maxDelay time.Duration) Strategy {
	return func(attempt uint, err error) bool {
		d := delay(attempt)
		if d > maxDelay {
			d = maxDelay
		}
		sleepFn(d)
		return true
	}
}

// Constant always waits the same interval.
func Constant(interval time.Duration) DelayFunc {
	return func(attempt uint) time.Duration {
		return interval
	}
}

// Linear waits baseDelay * attempt: base, 2*base, 3*base, ...
func Linear(baseDelay time.Duration) DelayFunc {
	return func(attempt uint) time.Duration {
		if d := baseDelay * time.Duration(attempt); d >= 0 {
			return d
		}
		return math.MaxInt64
	}
}

// BinaryExponential waits baseDelay * 2^(attempt-1): base, 2*base, 4*base, ...
func BinaryExponential(baseDelay time.Duration) DelayFunc {
	return func(attempt uint) time.Duration {
		if d := baseDelay * time.Duration(math.Pow(2, float64(attempt-1))); d >= 0 {
			return d
		}
		return math.MaxInt64
	}
}
