// Package memory provides in-memory implementations of the storage
// ports, used for tests and for per-run caches that need no
// persistence.
package memory

import (
	"context"
	"sync"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
type SessionStore struct {
	mu      sync.RWMutex
	current *domain.User
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// SaveSession stores the user as the current session.
func (s *SessionStore) SaveSession(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user
	return nil
}

// CurrentSession returns the stored user, or domain.ErrNoSession.
func (s *SessionStore) CurrentSession(_ context.Context) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, domain.ErrNoSession
	}
	user := *s.current
	return &user, nil
}

// ClearSession removes the stored session.
func (s *SessionStore) ClearSession(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return nil
}

// Ensure UserStore implements the interface.
var _ driven.UserStore = (*UserStore)(nil)

// UserStore is an in-memory implementation of driven.UserStore.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
	order []string
}

// NewUserStore creates a new in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]domain.User)}
}

// SaveUser creates or updates a user record.
func (s *UserStore) SaveUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Username]; !exists {
		s.order = append(s.order, user.Username)
	}
	s.users[user.Username] = user
	return nil
}

// GetUserByUsername returns a user, or domain.ErrNotFound.
func (s *UserStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

// ListUsers returns all accounts in insertion order.
func (s *UserStore) ListUsers(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.User, 0, len(s.order))
	for _, username := range s.order {
		result = append(result, s.users[username])
	}
	return result, nil
}

// Ensure AuditLog implements the interface.
var _ driven.AuditLog = (*AuditLog)(nil)

// AuditLog is an in-memory implementation of driven.AuditLog.
type AuditLog struct {
	mu      sync.RWMutex
	entries []domain.AuditEntry
}

// NewAuditLog creates a new in-memory audit log.
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// Record appends one entry.
func (l *AuditLog) Record(_ context.Context, entry domain.AuditEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *AuditLog) Recent(_ context.Context, limit int) ([]domain.AuditEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := len(l.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]domain.AuditEntry, 0, n)
	for i := len(l.entries) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, l.entries[i])
	}
	return result, nil
}
