package session

import (
	"fmt"
	"strconv"
	"sync"
)

// Store owns the current Session. It is the single writer: every mutation goes
// through Dispatch, which persists the next state to the KV before swapping the
// in-memory value, so the readable session is internally consistent at all
// times and a persist failure leaves it untouched.
type Store struct {
	mu      sync.RWMutex
	kv      KV
	current Session
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Initialize reconstructs the session from durable storage. It is meant to run
// once at process start. An absent token entry means logged out, whatever the
// other entries hold; a user id that fails to parse is treated the same way
// rather than crashing.
func (s *Store) Initialize() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{}

	token, err := s.kv.Get(keyToken)
	if err != nil || token == "" {
		return s.current
	}

	rawID, err := s.kv.Get(keyUserID)
	if err != nil {
		return s.current
	}
	userID, err := strconv.Atoi(rawID)
	if err != nil {
		return s.current
	}

	userType, err := s.kv.Get(keyUserType)
	if err != nil {
		return s.current
	}

	s.current = Session{
		IsAuthenticated: true,
		Token:           token,
		UserID:          userID,
		UserType:        userType,
	}
	return s.current
}

// Current returns a snapshot of the session. It never fails.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Dispatch applies the transition function and persists the result. The new
// session only becomes readable once the durable copy is written.
func (s *Store) Dispatch(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Apply(s.current, ev)
	if next == s.current {
		return nil
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.current = next
	return nil
}

// persist writes or clears the three entries. The token entry is the commit
// marker: it is written last and deleted first, so a crash mid-persist leaves
// durable state that Initialize reads as logged out rather than as a session
// with mismatched identity.
func (s *Store) persist(next Session) error {
	if !next.IsAuthenticated {
		for _, key := range []string{keyToken, keyUserID, keyUserType} {
			if err := s.kv.Delete(key); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
		}
		return nil
	}

	if err := s.kv.Set(keyUserID, strconv.Itoa(next.UserID)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	if err := s.kv.Set(keyUserType, next.UserType); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	if err := s.kv.Set(keyToken, next.Token); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Login dispatches a LOGIN event with the given identity.
func (s *Store) Login(token string, userID int, userType string) error {
	return s.Dispatch(Event{Type: EventLogin, Token: token, UserID: userID, UserType: userType})
}

// SetAuth re-affirms an existing session with the given identity.
func (s *Store) SetAuth(token string, userID int, userType string) error {
	return s.Dispatch(Event{Type: EventSetAuth, Token: token, UserID: userID, UserType: userType})
}

// Logout clears the session and its durable copy.
func (s *Store) Logout() error {
	return s.Dispatch(Event{Type: EventLogout})
}
