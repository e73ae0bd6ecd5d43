// ABOUTME: User-id keyed store of independent dialogue engine instances
// ABOUTME: Create-if-absent semantics; the catalog is shared read-only
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/eagles/winechat/internal/catalog"
	"github.com/eagles/winechat/internal/engine"
)

// Store hands out one Recommender per user identifier. The mutex guards the
// map only; per-user turn ordering is the caller's concern (the design assumes
// at most one in-flight turn per user).
type Store struct {
	mu         sync.Mutex
	catalog    *catalog.Catalog
	maxResults int
	sessions   map[string]*engine.Recommender
}

// NewStore creates a session store over a shared catalog.
func NewStore(cat *catalog.Catalog, maxResults int) (*Store, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	return &Store{
		catalog:    cat,
		maxResults: maxResults,
		sessions:   make(map[string]*engine.Recommender),
	}, nil
}

// Get returns the user's Recommender, creating one on first use.
func (s *Store) Get(userID string) (*engine.Recommender, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.sessions[userID]; ok {
		return rec, nil
	}
	rec, err := engine.New(s.catalog, s.maxResults)
	if err != nil {
		return nil, err
	}
	s.sessions[userID] = rec
	return rec, nil
}

// Reset clears the user's conversation state, reporting whether a session
// existed. A missing session is not an error; there is nothing to clear.
func (s *Store) Reset(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[userID]
	if ok {
		rec.Reset()
	}
	return ok
}

// Remove evicts the user's session entirely.
func (s *Store) Remove(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// NewSessionID generates an identifier for callers that did not supply one.
func NewSessionID() string {
	return uuid.New().String()
}
