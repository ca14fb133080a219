package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLimiter_PerKeyBurst(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	l := New(1, 3)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "attempt %d", i)
	}
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "other clients keep their own bucket")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestKeyedLimiter_Disabled(t *testing.T) {
	l := New(0, 0)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("x"))
	}
	assert.Equal(t, 0, l.Len())
}

func TestKeyedLimiter_Sweep(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	l := New(5, 5)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(defaultIdle / 2)
	l.Allow("b")
	now = now.Add(defaultIdle/2 + time.Second)

	l.Sweep()
	assert.Equal(t, 1, l.Len())
}
