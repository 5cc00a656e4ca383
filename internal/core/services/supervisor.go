package services

import (
	"sync"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

// Supervisor tracks in-flight generation keys for one session, so the
// same logical operation cannot be triggered twice concurrently. A key
// is held only while its operation runs; completion, success or
// failure, releases it so the operation can be issued again.
type Supervisor struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewSupervisor creates an empty supervisor.
func NewSupervisor() *Supervisor {
	return &Supervisor{inflight: make(map[string]struct{})}
}

// Begin claims key. Returns domain.ErrGenerationInProgress if the key
// is already held.
func (s *Supervisor) Begin(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, held := s.inflight[key]; held {
		return domain.ErrGenerationInProgress
	}
	s.inflight[key] = struct{}{}
	return nil
}

// Release frees key so the operation can be retried.
func (s *Supervisor) Release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)
}

// Held reports whether key is currently claimed.
func (s *Supervisor) Held(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, held := s.inflight[key]
	return held
}
