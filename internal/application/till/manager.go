package till

import (
	"sync"

	"github.com/google/uuid"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
)

// Manager tracks the open till sessions, at most one per operator.
type Manager struct {
	catalog ProductLookup

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	byUID    map[string]uuid.UUID
}

func NewManager(catalog ProductLookup) *Manager {
	return &Manager{
		catalog:  catalog,
		sessions: make(map[uuid.UUID]*Session),
		byUID:    make(map[string]uuid.UUID),
	}
}

// Open returns the operator's session, creating one if none is open.
func (m *Manager) Open(operatorUID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.byUID[operatorUID]; ok {
		return m.sessions[id]
	}

	s := NewSession(operatorUID, m.catalog)
	m.sessions[s.ID()] = s
	m.byUID[operatorUID] = s.ID()
	return s
}

// Get looks up a session by ID and verifies it belongs to the operator.
func (m *Manager) Get(id uuid.UUID, operatorUID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Till session")
	}
	if s.OperatorUID() != operatorUID {
		return nil, apperror.ErrForbidden
	}
	return s, nil
}

// Close discards a session. Any cart contents are abandoned.
func (m *Manager) Close(id uuid.UUID, operatorUID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return apperror.NewNotFoundError("Till session")
	}
	if s.OperatorUID() != operatorUID {
		return apperror.ErrForbidden
	}

	delete(m.sessions, id)
	delete(m.byUID, operatorUID)
	return nil
}

// ReconcileAll pushes a fresh catalog snapshot into every open session.
func (m *Manager) ReconcileAll(products []entity.Product) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.sessions {
		s.Reconcile(products)
	}
}
