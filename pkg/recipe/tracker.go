package recipe

import "sync"

// Tracker discards out-of-order responses. Each request for a key takes a
// token; only the most recent token for that key is accepted.
type Tracker struct {
	mu     sync.Mutex
	latest map[string]uint64
	next   uint64
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{latest: make(map[string]uint64)}
}

// Begin registers a new request for key and returns its token.
func (t *Tracker) Begin(key string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.latest[key] = t.next
	return t.next
}

// Accept reports whether token is still the latest request for key.
// An accepted token is retired so the same response is not applied twice.
func (t *Tracker) Accept(key string, token uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.latest[key] != token {
		return false
	}
	delete(t.latest, key)
	return true
}

// Pending reports how many keys have an outstanding request.
func (t *Tracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.latest)
}
