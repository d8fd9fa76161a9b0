// Package backoff provides various backoff strategies for retry.
package backoff

import (
	"math"
	"time"
)

// Strategy is a function that provides the amount of time to wait before trying
// again. Note: attempts starts at 1
type Strategy func(attempts uint) time.Duration

// Constant returns a strategy that always returns the provided duration.
func Constant(interval time.Duration) Strategy {
	return func(attempts uint) time.Duration {
		return interval
	}
}

// BinaryExponential returns a strategy that exponentially increases based off
// of the number of attempts, with a base of 2.
//
// delay = baseDelay * 2^(attempts - 1)
func BinaryExponential(baseDelay time.Duration) Strategy {
	return func(attempts uint) time.Duration {
		if delay := baseDelay * time.Duration(math.Pow(2, float64(attempts-1))); delay >= 0 {
			return delay
		}

		return math.MaxInt64
	}
}
