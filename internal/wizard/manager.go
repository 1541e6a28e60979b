package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager is the in-memory session registry. Nothing survives a restart:
// sessions live here and nowhere else.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	loadingDelay time.Duration
	ttl          time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

// NewManager starts a registry whose sessions show the loading step for
// loadingDelay and expire after ttl without activity.
func NewManager(loadingDelay, ttl time.Duration) *Manager {
	m := &Manager{
		sessions:     make(map[string]*Session),
		loadingDelay: loadingDelay,
		ttl:          ttl,
		stop:         make(chan struct{}),
	}
	go m.sweep()
	return m
}

// Create registers a fresh session at the intro step.
func (m *Manager) Create() *Session {
	session := newSession(uuid.NewString(), m.loadingDelay)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID()] = session
	return session
}

// Get returns the live session for id and refreshes its expiry clock.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	session, ok := m.sessions[id]
	m.mu.Unlock()
	if ok {
		session.Touch()
	}
	return session, ok
}

// Remove tears down a single session, cancelling its pending timer.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	session, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		session.Close()
	}
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close stops the sweeper and tears down every session.
func (m *Manager) Close() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for id, session := range m.sessions {
		sessions = append(sessions, session)
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	for _, session := range sessions {
		session.Close()
	}
}

func (m *Manager) sweep() {
	interval := m.ttl / 2
	if interval <= 0 || interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.expire(time.Now().Add(-m.ttl))
		}
	}
}

func (m *Manager) expire(cutoff time.Time) {
	m.mu.Lock()
	var expired []*Session
	for id, session := range m.sessions {
		if session.lastTouchedAt().Before(cutoff) {
			expired = append(expired, session)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()
	for _, session := range expired {
		session.Close()
	}
}
