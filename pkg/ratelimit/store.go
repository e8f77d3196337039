// Package ratelimit keeps one token bucket per client key.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Store holds the limiters of all clients seen within the ttl.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	rate    rate.Limit
	burst   int
	ttl     time.Duration
}

// NewStore returns a store allowing r events per second with the given burst per key.
func NewStore(r rate.Limit, burst int, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &Store{
		entries: make(map[string]*entry),
		rate:    r,
		burst:   burst,
		ttl:     ttl,
	}
}

// Allow reports whether one more event for key may happen now.
func (s *Store) Allow(key string) bool {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(s.rate, s.burst)}
		s.entries[key] = e
	}
	e.lastSeen = time.Now()
	s.mu.Unlock()

	return e.limiter.Allow()
}

// StartJanitor drops idle keys every interval until ctx is done.
func (s *Store) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}

	ticker := time.NewTicker(every)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.cleanup(time.Now())
			}
		}
	}()
}

func (s *Store) cleanup(now time.Time) {
	cut := now.Add(-s.ttl)

	s.mu.Lock()
	for k, e := range s.entries {
		if e.lastSeen.Before(cut) {
			delete(s.entries, k)
		}
	}
	s.mu.Unlock()
}

// size returns the number of tracked keys.
func (s *Store) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
