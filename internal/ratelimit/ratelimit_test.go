package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestLimiter() (*Limiter, *time.Time) {
	l := New()
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestAllowDeniesAtLimit(t *testing.T) {
	l, _ := newTestLimiter()
	key := Key(uuid.New(), "a@example.com")

	for i := 0; i < 3; i++ {
		if !l.Allow(key, time.Minute, 3) {
			t.Fatalf("request %d denied, want admitted", i+1)
		}
	}
	if l.Allow(key, time.Minute, 3) {
		t.Fatal("request 4 admitted, want denied")
	}
}

func TestDeniedRequestsAreNotRecorded(t *testing.T) {
	l, now := newTestLimiter()
	key := Key(uuid.New(), "a@example.com")

	for i := 0; i < 3; i++ {
		l.Allow(key, time.Minute, 3)
	}
	// Hammering while denied must not extend the lockout.
	for i := 0; i < 10; i++ {
		if l.Allow(key, time.Minute, 3) {
			t.Fatal("request admitted while at limit")
		}
	}

	*now = now.Add(time.Minute + time.Second)
	if !l.Allow(key, time.Minute, 3) {
		t.Fatal("request denied after the window elapsed")
	}
}

func TestWindowSlides(t *testing.T) {
	l, now := newTestLimiter()
	key := Key(uuid.New(), "a@example.com")

	l.Allow(key, time.Minute, 2)
	*now = now.Add(40 * time.Second)
	l.Allow(key, time.Minute, 2)

	if l.Allow(key, time.Minute, 2) {
		t.Fatal("third request admitted inside the window")
	}

	// 61s after the first request: only the second still counts.
	*now = now.Add(21 * time.Second)
	if !l.Allow(key, time.Minute, 2) {
		t.Fatal("request denied after the oldest timestamp aged out")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter()
	gameID := uuid.New()
	a := Key(gameID, "a@example.com")
	b := Key(gameID, "b@example.com")

	if !l.Allow(a, time.Minute, 1) {
		t.Fatal("first request for a denied")
	}
	if !l.Allow(b, time.Minute, 1) {
		t.Fatal("a's admission consumed b's budget")
	}
	if l.Allow(a, time.Minute, 1) {
		t.Fatal("second request for a admitted")
	}
}

func TestKeyFormat(t *testing.T) {
	gameID := uuid.New()
	want := gameID.String() + ":player@example.com"
	if got := Key(gameID, "player@example.com"); got != want {
		t.Fatalf("Key() = %q, want %q", got, want)
	}
}

func TestPrune(t *testing.T) {
	l, now := newTestLimiter()
	stale := Key(uuid.New(), "stale@example.com")
	live := Key(uuid.New(), "live@example.com")

	l.Allow(stale, time.Minute, 5)
	*now = now.Add(2 * time.Minute)
	l.Allow(live, time.Minute, 5)

	l.Prune(time.Minute)

	l.mu.Lock()
	_, staleKept := l.windows[stale]
	_, liveKept := l.windows[live]
	l.mu.Unlock()
	if staleKept {
		t.Fatal("fully stale key survived Prune")
	}
	if !liveKept {
		t.Fatal("live key dropped by Prune")
	}
}

func TestAllowConcurrentAdmitsExactlyMax(t *testing.T) {
	l := New()
	key := Key(uuid.New(), "a@example.com")

	const attempts = 50
	var wg sync.WaitGroup
	admitted := make(chan struct{}, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow(key, time.Minute, 10) {
				admitted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(admitted)

	if got := len(admitted); got != 10 {
		t.Fatalf("admitted %d requests, want exactly 10", got)
	}
}

func TestAllowZeroMax(t *testing.T) {
	l, _ := newTestLimiter()
	if l.Allow("any-key", time.Minute, 0) {
		t.Fatal("request admitted with a zero budget")
	}
}
