package ratelimit

import (
	"sync"
	"time"
)

// Limiter enforces a per-session sliding window request limit.
// Requests older than the window are pruned on each check, so a session
// regains capacity as its oldest requests age out.
type Limiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	requests    map[string][]time.Time

	now func() time.Time
}

// New creates a Limiter allowing maxRequests per window per session.
func New(maxRequests int, window time.Duration) *Limiter {
	return &Limiter{
		maxRequests: maxRequests,
		window:      window,
		requests:    make(map[string][]time.Time),
		now:         time.Now,
	}
}

// IsAllowed reports whether the session may make another request.
// It returns the number of requests made inside the current window and
// the remaining capacity. Checking does not consume capacity.
func (l *Limiter) IsAllowed(sessionID string) (allowed bool, made int, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked(sessionID)

	made = len(l.requests[sessionID])
	remaining = l.maxRequests - made
	if remaining < 0 {
		remaining = 0
	}
	return made < l.maxRequests, made, remaining
}

// RecordRequest records a request for the session. Callers record only
// requests that were allowed; denied requests never consume capacity.
func (l *Limiter) RecordRequest(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.requests[sessionID] = append(l.requests[sessionID], l.now())
}

// WaitTime returns how long the session must wait before its next
// request will be allowed. Returns zero when the session has capacity.
func (l *Limiter) WaitTime(sessionID string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked(sessionID)

	timestamps := l.requests[sessionID]
	if len(timestamps) < l.maxRequests {
		return 0
	}

	// The oldest request in the window ages out first. Add a second of
	// padding so a client that sleeps exactly this long lands inside
	// the allowed region.
	oldest := timestamps[0]
	wait := l.window - l.now().Sub(oldest) + time.Second
	if wait < 0 {
		wait = 0
	}
	return wait
}

// ResetSession drops all recorded requests for the session.
func (l *Limiter) ResetSession(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.requests, sessionID)
}

// CleanupOldSessions removes sessions whose most recent request is older
// than maxAge. Intended to run periodically from a background goroutine.
func (l *Limiter) CleanupOldSessions(maxAge time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-maxAge)
	removed := 0
	for sessionID, timestamps := range l.requests {
		if len(timestamps) == 0 || timestamps[len(timestamps)-1].Before(cutoff) {
			delete(l.requests, sessionID)
			removed++
		}
	}
	return removed
}

// pruneLocked drops timestamps that fell outside the window.
// Caller must hold l.mu.
func (l *Limiter) pruneLocked(sessionID string) {
	timestamps := l.requests[sessionID]
	if len(timestamps) == 0 {
		return
	}

	cutoff := l.now().Add(-l.window)
	idx := 0
	for idx < len(timestamps) && !timestamps[idx].After(cutoff) {
		idx++
	}

	if idx == len(timestamps) {
		delete(l.requests, sessionID)
		return
	}
	if idx > 0 {
		l.requests[sessionID] = timestamps[idx:]
	}
}
