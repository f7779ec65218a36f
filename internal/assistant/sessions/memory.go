package sessions

import (
	"context"
	"sync"
)

// MemoryStore keeps sessions for the lifetime of the process.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return Session{}, false, nil
	}
	return session.Clone(), true, nil
}

func (m *MemoryStore) Put(_ context.Context, session Session) error {
	m.mu.Lock()
	m.sessions[session.ID] = session.Clone()
	m.mu.Unlock()
	return nil
}

var _ Store = (*MemoryStore)(nil)
