package ratelimit

import (
	"sync"
	"time"

	"github.com/7PXS/AvouraAuth/internal/config"
)

type record struct {
	attempts      int
	windowResetAt time.Time
}

// Limiter is a fixed-window attempt counter keyed by identifier
// (conventionally "action:origin"). Every Allow call counts as one attempt,
// so callers invoke it exactly once per logical attempt. Bursts straddling a
// window boundary are accepted as a known property of fixed windows.
//
// Under the lenient profile the limiter is disabled and always allows.
type Limiter struct {
	profile config.Profile

	mu      sync.Mutex
	records map[string]*record

	now func() time.Time
}

func New(profile config.Profile) *Limiter {
	return &Limiter{
		profile: profile,
		records: make(map[string]*record),
		now:     time.Now,
	}
}

// Allow records an attempt for identifier and reports whether it is within
// budget. The increment-then-compare runs as one atomic step per key, so
// concurrent attempts on the same identifier cannot lose updates and produce
// a false allow.
func (l *Limiter) Allow(identifier string, maxAttempts int, window time.Duration) bool {
	if l.profile == config.ProfileLenient {
		return true
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.records[identifier]
	if !ok {
		r = &record{windowResetAt: now.Add(window)}
		l.records[identifier] = r
	}

	if now.After(r.windowResetAt) {
		r.attempts = 0
		r.windowResetAt = now.Add(window)
	}

	r.attempts++

	return r.attempts <= maxAttempts
}
