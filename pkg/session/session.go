// Package session holds the single authenticated identity of the running
// process and gates operations by role.
//
// The desktop shell talks to exactly one backend process, so there is at
// most one live session; it is never persisted and dies with the process.
package session

import (
	"sync"

	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/pkg/apperr"
)

// Role is the closed set of identity roles. Gating is exact-match: there
// is no hierarchy and no superuser bypass.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// ErrNotLoggedIn is returned by Require when no identity is set.
var ErrNotLoggedIn = apperr.Unauthorized("not logged in")

// Store is a single-slot identity holder. The lock is held only for the
// instant of a read or write, never across a network call.
type Store struct {
	mu      sync.RWMutex
	current *entity.User
}

func NewStore() *Store {
	return &Store{}
}

// Set replaces the current identity.
func (s *Store) Set(u entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &u
}

// Clear drops the current identity. Clearing an empty store is fine.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns a copy of the current identity, if any.
func (s *Store) Current() (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return entity.User{}, false
	}
	return *s.current, true
}

// Require returns the current identity when its role matches exactly.
// The check runs fresh on every call; nothing is cached.
func (s *Store) Require(role Role) (entity.User, error) {
	u, ok := s.Current()
	if !ok {
		return entity.User{}, ErrNotLoggedIn
	}
	if u.Role == nil || Role(*u.Role) != role {
		return entity.User{}, apperr.Unauthorized(string(role) + " only")
	}
	return u, nil
}
