package repository

import (
	"sync"
	"time"

	"doc-compare/internal/domain"

	"github.com/google/uuid"
)

// MemorySessionRepository implements domain.SessionStore in memory. Sessions
// live until ttl elapses or the server stops.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.DocumentSession
	ttl      time.Duration
	now      func() time.Time
	logger   domain.Logger
}

// NewMemorySessionRepository creates a store. A non-positive ttl disables expiry.
func NewMemorySessionRepository(ttl time.Duration, logger domain.Logger) *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]*domain.DocumentSession),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

func (r *MemorySessionRepository) Save(documents [2]string) (*domain.DocumentSession, error) {
	session := &domain.DocumentSession{
		ID:        uuid.NewString(),
		Documents: documents,
		CreatedAt: r.now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictExpiredLocked()
	r.sessions[session.ID] = session

	r.logger.Debug("Session stored", "session_id", session.ID, "active_sessions", len(r.sessions))
	copied := *session
	return &copied, nil
}

func (r *MemorySessionRepository) Get(id string) (*domain.DocumentSession, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok || r.expired(session) {
		return nil, domain.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (r *MemorySessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *MemorySessionRepository) expired(session *domain.DocumentSession) bool {
	return r.ttl > 0 && r.now().Sub(session.CreatedAt) > r.ttl
}

func (r *MemorySessionRepository) evictExpiredLocked() {
	for id, session := range r.sessions {
		if r.expired(session) {
			delete(r.sessions, id)
		}
	}
}
