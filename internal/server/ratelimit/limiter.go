// Package ratelimit throttles login attempts per client key (usually the
// remote IP) with a token bucket per key.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultIdle = 10 * time.Minute

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type KeyedLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	idle    time.Duration
	entries map[string]*entry
	now     func() time.Time
}

// New returns a limiter allowing perSecond events per key with the given
// burst. A non-positive perSecond disables throttling.
func New(perSecond float64, burst int) *KeyedLimiter {
	if burst < 1 {
		burst = 1
	}
	l := rate.Inf
	if perSecond > 0 {
		l = rate.Limit(perSecond)
	}
	return &KeyedLimiter{
		limit:   l,
		burst:   burst,
		idle:    defaultIdle,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

func (k *KeyedLimiter) Allow(key string) bool {
	if k.limit == rate.Inf {
		return true
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// Sweep drops buckets not used for the idle period.
func (k *KeyedLimiter) Sweep() {
	k.mu.Lock()
	defer k.mu.Unlock()

	cutoff := k.now().Add(-k.idle)
	for key, e := range k.entries {
		if e.lastSeen.Before(cutoff) {
			delete(k.entries, key)
		}
	}
}

func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
