// Package session holds the per-user pending slot selection: the slot a
// user was last shown for confirmation. It is process-resident only; a
// restart simply forces users to pick a slot again.
package session

import "sync"

type Store struct {
	mu         sync.Mutex
	selections map[string]string // userID -> slot identity
}

func NewStore() *Store {
	return &Store{
		selections: make(map[string]string),
	}
}

// Put records the pending selection for a user, superseding any
// previous one.
func (s *Store) Put(userID, slotID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selections[userID] = slotID
}

// Get returns the pending selection for a user, if any.
func (s *Store) Get(userID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slotID, ok := s.selections[userID]
	return slotID, ok
}

// TakeIfMatch consumes the pending selection for a user, but only when
// it equals slotID. The compare and the removal happen under one lock,
// so a confirm can only ever act on the exact slot the user was shown.
func (s *Store) TakeIfMatch(userID, slotID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selections[userID] != slotID {
		return false
	}

	delete(s.selections, userID)
	return true
}

// Clear drops the pending selection for a user.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.selections, userID)
}
