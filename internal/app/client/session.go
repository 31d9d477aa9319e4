package client

import (
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"medvault/internal/domain/user"
)

// Session keeps the single current-user slot. The user is set at login,
// mirrored to durable storage and cleared at logout; there is no
// multi-session support.
type Session struct {
	storage SlotStorage
	log     *slog.Logger

	mu      sync.RWMutex
	current *user.User
}

// NewSession loads any persisted user from the currentUser slot. An
// unreadable slot leaves the session unauthenticated.
func NewSession(storage SlotStorage, log *slog.Logger) *Session {
	s := &Session{
		storage: storage,
		log:     log.With("component", "session"),
	}

	data, err := storage.Get(SlotCurrentUser)
	if err != nil {
		if err != ErrSlotNotFound {
			s.log.Warn("failed to read user slot", "error", err)
		}
		return s
	}

	var u user.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.log.Warn("user slot unreadable, starting unauthenticated", "error", err)
		return s
	}

	s.current = &u
	return s
}

// Login sets the current user and mirrors it to durable storage. The
// in-memory user is set even when the mirror write fails.
func (s *Session) Login(u *user.User) error {
	if u == nil {
		return fmt.Errorf("login: nil user")
	}
	if err := u.Role.Validate(); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	s.mu.Lock()
	s.current = u
	s.mu.Unlock()

	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("serialize user: %w", err)
	}
	if err := s.storage.Put(SlotCurrentUser, data); err != nil {
		s.log.Warn("failed to persist user slot", "error", err)
	}

	s.log.Info("user logged in", "id", u.ID, "role", u.Role)
	return nil
}

// Logout clears the current user and removes the persisted slot.
func (s *Session) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.storage.Delete(SlotCurrentUser); err != nil {
		s.log.Warn("failed to clear user slot", "error", err)
	}

	s.log.Info("user logged out")
}

// Current returns the logged-in user, or nil when unauthenticated.
func (s *Session) Current() *user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
