package chatbot

import (
	"log"
	"sync"
	"time"
)

// Session is one conversation per end user per channel. It is created on
// first contact and reset in place after an order completes, never destroyed.
type Session struct {
	Key         string      `json:"key"` // browser session id or phone number
	CurrentStep Step        `json:"current_step"`
	Draft       *OrderDraft `json:"draft"`
	CreatedAt   time.Time   `json:"created_at"`
	LastActive  time.Time   `json:"last_active"`

	mu sync.Mutex
}

// Lock serializes transitions for this session. Channel adapters hold the
// lock across Advance and Save so concurrent inbound messages for the same
// key cannot race on the draft.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-session lock
func (s *Session) Unlock() { s.mu.Unlock() }

// SessionStore is the keyed lookup of per-user conversation state
type SessionStore interface {
	GetOrCreate(key string) *Session
	Save(session *Session)
}

// MemorySessionStore keeps sessions in an in-process map. With a zero TTL
// sessions never expire and the map grows unbounded; a positive TTL starts a
// cleanup routine that drops idle sessions.
type MemorySessionStore struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	ttl      time.Duration
}

// NewMemorySessionStore creates a session store. ttl <= 0 disables expiry.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	store := &MemorySessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}

	if ttl > 0 {
		go store.cleanupIdleSessions()
	}

	return store
}

// GetOrCreate returns the session for key, creating one at the welcome step
// with an empty draft on first contact.
func (m *MemorySessionStore) GetOrCreate(key string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, exists := m.sessions[key]; exists {
		session.LastActive = time.Now()
		return session
	}

	session := &Session{
		Key:         key,
		CurrentStep: StepWelcome,
		Draft:       NewDraft(),
		CreatedAt:   time.Now(),
		LastActive:  time.Now(),
	}
	m.sessions[key] = session
	log.Printf("Session created for %s", key)

	return session
}

// Save persists the session. The in-memory store mutates sessions in place,
// so this only refreshes activity for expiry tracking.
func (m *MemorySessionStore) Save(session *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.LastActive = time.Now()
	m.sessions[session.Key] = session
}

// ActiveSessions returns the number of tracked sessions (for monitoring)
func (m *MemorySessionStore) ActiveSessions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// cleanupIdleSessions runs periodically to drop sessions idle past the TTL
func (m *MemorySessionStore) cleanupIdleSessions() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		for key, session := range m.sessions {
			if time.Since(session.LastActive) > m.ttl {
				delete(m.sessions, key)
				log.Printf("Cleaned up idle session for %s", key)
			}
		}
		m.mu.Unlock()
	}
}
