package tgdango

import (
	"context"
	"math/rand"
	"time"
)

// Backoff represents a backoff mechanism with configurable duration and maximum duration.
type Backoff struct {
	Duration    time.Duration // Duration represents the current backoff duration.
	MaxDuration time.Duration // MaxDuration is the maximum allowed backoff duration.
	base        time.Duration // base is the duration restored by Reset.
}

// NewBackoff returns a [Backoff] starting at base and doubling up to maxDuration.
func NewBackoff(base, maxDuration time.Duration) *Backoff {
	return &Backoff{Duration: base, MaxDuration: maxDuration, base: base}
}

// increment increases the backoff duration using an exponential strategy
func (b *Backoff) increment() {
	if b.Duration < b.MaxDuration {
		b.Duration *= 2
	}

	if b.Duration > b.MaxDuration {
		b.Duration = b.MaxDuration
	}
}

// Reset restores the initial duration after a successful attempt.
func (b *Backoff) Reset() {
	b.Duration = b.base
}

// Sleep is a mock of time.Sleep(), that is also responsive to the cancel signal.
// It adds some jitter to the duration and waits until it elapses or the context is done.
// Returns true if the sleep was cancelled before the deadline, false otherwise.
func (b *Backoff) Sleep(ctx context.Context) bool {
	defer b.increment()

	jitter := time.Duration(0)
	if b.Duration >= 4 {
		jitter = time.Duration(rand.Int63n(int64(b.Duration) / 4))
	}

	timer := time.NewTimer(b.Duration + jitter)
	defer timer.Stop()

	select {
	case <-timer.C:
		return false
	case <-ctx.Done():
		return true
	}
}
