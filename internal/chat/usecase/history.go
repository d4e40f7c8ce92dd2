package usecase

import (
	"sync"
	"time"
)

// historyDepth is how many history entries feed back into the prompt,
// i.e. the last three exchanges.
const historyDepth = 6

type historyEntry struct {
	Role    string
	Content string
}

type sessionState struct {
	entries    []historyEntry
	lastActive time.Time
}

// SessionMemory keeps per-session conversation history in memory.
type SessionMemory struct {
	mu       sync.Mutex
	sessions map[string]*sessionState

	now func() time.Time
}

// NewSessionMemory creates an empty SessionMemory.
func NewSessionMemory() *SessionMemory {
	return &SessionMemory{
		sessions: make(map[string]*sessionState),
		now:      time.Now,
	}
}

// Append records one history entry for the session.
func (m *SessionMemory) Append(sessionID, role, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[sessionID]
	if !ok {
		state = &sessionState{}
		m.sessions[sessionID] = state
	}
	state.entries = append(state.entries, historyEntry{Role: role, Content: content})
	state.lastActive = m.now()
}

// Recent returns up to n most recent entries, oldest first.
func (m *SessionMemory) Recent(sessionID string, n int) []historyEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[sessionID]
	if !ok {
		return nil
	}

	entries := state.entries
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}

	out := make([]historyEntry, len(entries))
	copy(out, entries)
	return out
}

// Clear drops the session's history.
func (m *SessionMemory) Clear(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
}

// CleanupExpired removes sessions idle for longer than maxAge.
func (m *SessionMemory) CleanupExpired(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-maxAge)
	removed := 0
	for sessionID, state := range m.sessions {
		if state.lastActive.Before(cutoff) {
			delete(m.sessions, sessionID)
			removed++
		}
	}
	return removed
}
