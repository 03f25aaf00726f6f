// Package ratelimit implements sliding-window request admission keyed by
// (game, player), so limits apply per player per game rather than globally.
package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Key builds the composite admission key for a player acting in a game.
func Key(gameID uuid.UUID, email string) string {
	return fmt.Sprintf("%s:%s", gameID, email)
}

// Limiter tracks recent request timestamps per key. Window state lives only
// for the process lifetime.
type Limiter struct {
	now func() time.Time

	mu      sync.Mutex
	windows map[string][]time.Time
}

// New creates an empty limiter.
func New() *Limiter {
	return &Limiter{
		now:     time.Now,
		windows: make(map[string][]time.Time),
	}
}

// Allow prunes timestamps older than the window, then admits the request if
// fewer than max remain, recording it. A denied request is not recorded.
func (l *Limiter) Allow(key string, window time.Duration, max int) bool {
	now := l.now()
	cutoff := now.Add(-window)

	l.mu.Lock()
	defer l.mu.Unlock()

	stamps := l.windows[key]
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= max {
		l.windows[key] = kept
		return false
	}

	l.windows[key] = append(kept, now)
	return true
}

// Prune drops every key whose window is fully stale. Optional housekeeping
// so long-idle keys do not accumulate.
func (l *Limiter) Prune(window time.Duration) {
	cutoff := l.now().Add(-window)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, stamps := range l.windows {
		live := false
		for _, ts := range stamps {
			if ts.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(l.windows, key)
		}
	}
}
