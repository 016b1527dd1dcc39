// Package session holds the authenticated identity for the life of the
// process. Exactly one identity is active at a time; views treat "no
// identity" as logged out — there is no pending state.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/comunitur/comunitur/internal/pkg/localstore"
)

// Roles the service issues.
const (
	RoleTourist = "tourist"
	RoleGuide   = "guide"
	RoleAdmin   = "admin"
)

// Identity is the client-held authenticated user.
type Identity struct {
	Username string `json:"username"`
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Role     string `json:"role"`
}

// Store is the process-wide session container. Mutation goes through
// Login/Logout/Restore only; reads are safe from any goroutine because
// Bubble Tea commands run off the update loop.
type Store struct {
	mu       sync.RWMutex
	identity *Identity
	storage  *localstore.Store
}

// NewStore creates a session store over the given durable storage.
func NewStore(storage *localstore.Store) *Store {
	return &Store{storage: storage}
}

// Login replaces the current identity and persists it: the serialized
// identity in one entry and the raw bearer token in the other, matching the
// layout the browser client used.
func (s *Store) Login(id Identity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("session: encode identity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(localstore.EntrySession, string(data)); err != nil {
		return err
	}
	if err := s.storage.Set(localstore.EntryToken, id.Token); err != nil {
		return err
	}
	s.identity = &id
	return nil
}

// Logout clears the identity and removes both persisted entries together.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	if err := s.storage.Delete(localstore.EntrySession); err != nil {
		return err
	}
	return s.storage.Delete(localstore.EntryToken)
}

// Restore adopts a previously persisted identity, if any. Corrupt or
// missing entries leave the store unauthenticated rather than failing
// startup.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.storage.Get(localstore.EntrySession)
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			log.Warn().Err(err).Msg("could not read persisted session")
		}
		return
	}

	var id Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		log.Warn().Err(err).Msg("persisted session is corrupt, discarding")
		_ = s.storage.Delete(localstore.EntrySession)
		_ = s.storage.Delete(localstore.EntryToken)
		return
	}
	s.identity = &id
}

// Current returns the active identity, or nil when logged out.
func (s *Store) Current() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// Authenticated reports whether an identity is active.
func (s *Store) Authenticated() bool {
	return s.Current() != nil
}

// Token implements api.TokenSource: the bearer token for outgoing requests,
// or empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return ""
	}
	return s.identity.Token
}
