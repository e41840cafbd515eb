// Package cooldown rate-limits command invocations per key (typically
// "guild:user"). Each key gets its own token bucket; idle buckets are pruned
// so a busy bot does not accumulate limiters forever.
package cooldown

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Keeper tracks one rate limiter per key. Safe for concurrent use.
type Keeper struct {
	mu      sync.Mutex
	entries map[string]*entry
	every   time.Duration
	burst   int
}

// New returns a Keeper allowing burst invocations, refilling one every
// interval.
func New(every time.Duration, burst int) *Keeper {
	if burst < 1 {
		burst = 1
	}
	return &Keeper{
		entries: make(map[string]*entry),
		every:   every,
		burst:   burst,
	}
}

// Allow reports whether key may proceed now, consuming one token if so.
func (k *Keeper) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rate.Every(k.every), k.burst)}
		k.entries[key] = e
	}
	e.lastSeen = time.Now()
	return e.limiter.Allow()
}

// Prune drops limiters idle for longer than age and returns how many were
// removed.
func (k *Keeper) Prune(age time.Duration) int {
	k.mu.Lock()
	defer k.mu.Unlock()

	cutoff := time.Now().Add(-age)
	removed := 0
	for key, e := range k.entries {
		if e.lastSeen.Before(cutoff) {
			delete(k.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (k *Keeper) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
