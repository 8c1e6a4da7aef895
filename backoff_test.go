package tgdango

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_Increment(t *testing.T) {
	b := NewBackoff(time.Second, 5*time.Second)

	for _, want := range []time.Duration{2 * time.Second, 4 * time.Second, 5 * time.Second, 5 * time.Second} {
		b.increment()
		assert.Equal(t, want, b.Duration)
	}

	b.Reset()
	assert.Equal(t, time.Second, b.Duration)
}

func TestBackoff_Sleep(t *testing.T) {
	b := NewBackoff(time.Millisecond, time.Second)

	assert.False(t, b.Sleep(context.Background()))
	assert.Equal(t, 2*time.Millisecond, b.Duration, "every sleep should back off further")
}

func TestBackoff_SleepCancelled(t *testing.T) {
	b := NewBackoff(time.Hour, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	assert.True(t, b.Sleep(ctx))
	assert.Less(t, time.Since(start), time.Second)
}
