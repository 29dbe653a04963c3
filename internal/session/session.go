// Package session tracks which roster identity is currently acting.
//
// Selecting an identity performs no credential check. It scopes queries and
// attributes writes; it is not a security boundary.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"workstudy/internal/logger"
	"workstudy/internal/store"
)

// Session holds at most one active identity and mirrors it to a store.KV.
type Session struct {
	mu      sync.RWMutex
	kv      store.KV
	logger  *slog.Logger
	roster  []store.User
	current *store.User
}

// Open restores the active identity from kv. A missing or unreadable record,
// or one naming a user outside the roster, means nobody is signed in.
func Open(ctx context.Context, kv store.KV, log *slog.Logger) *Session {
	if log == nil {
		log = logger.Discard()
	}
	s := &Session{kv: kv, logger: log, roster: store.Users()}

	data, err := kv.Get(ctx, store.KeyCurrentUser)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warn("failed to read session, starting signed out", "error", err)
		}
		return s
	}

	var stored store.User
	if err := json.Unmarshal(data, &stored); err != nil || stored.ID == "" {
		log.Warn("corrupt session record, starting signed out", "error", err)
		return s
	}
	// Only the id is trusted; profile and role come from the roster.
	u, ok := s.Lookup(stored.ID)
	if !ok {
		log.Warn("session names an unknown user, starting signed out", "user_id", stored.ID)
		return s
	}
	s.current = &u
	return s
}

// Roster returns the identities that can sign in.
func (s *Session) Roster() []store.User {
	out := make([]store.User, len(s.roster))
	copy(out, s.roster)
	return out
}

// Lookup finds a roster identity by id.
func (s *Session) Lookup(userID string) (store.User, bool) {
	for _, u := range s.roster {
		if u.ID == userID {
			return u, true
		}
	}
	return store.User{}, false
}

// Login makes userID the active identity. Unknown ids leave the session
// unchanged and return false.
func (s *Session) Login(ctx context.Context, userID string) (store.User, bool) {
	u, ok := s.Lookup(userID)
	if !ok {
		return store.User{}, false
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()

	data, err := json.Marshal(u)
	if err == nil {
		err = s.kv.Put(ctx, store.KeyCurrentUser, data)
	}
	if err != nil {
		s.logger.Warn("failed to persist session", "user_id", u.ID, "error", err)
	}
	return u, true
}

// Logout clears the active identity and its persisted record.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.kv.Delete(ctx, store.KeyCurrentUser); err != nil {
		s.logger.Warn("failed to clear session", "error", err)
	}
}

// Current returns the active identity, if any.
func (s *Session) Current() (store.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return store.User{}, false
	}
	return *s.current, true
}

// IsAdmin reports whether the active identity is an admin.
func (s *Session) IsAdmin() bool {
	u, ok := s.Current()
	return ok && u.IsAdmin()
}
