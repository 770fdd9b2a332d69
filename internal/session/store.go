package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
)

// DefaultMaxSessions bounds the store when no size is given.
const DefaultMaxSessions = 1024

// Store keeps sessions in memory. The least recently used session is
// evicted once the store is full.
type Store struct {
	mu       sync.Mutex
	sessions *lru.Cache[string, *State]
	now      func() time.Time
}

func NewStore(maxSessions int) (*Store, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	cache, err := lru.New[string, *State](maxSessions)
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Store{sessions: cache, now: time.Now}, nil
}

// Create starts a new session and returns a snapshot of it.
func (s *Store) Create() *State {
	st := New(uuid.New().String(), s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions.Add(st.ID, st)
	return st.Clone()
}

// Get returns a snapshot of the session.
func (s *Store) Get(id string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("get session %s: %w", id, models.ErrSessionNotFound)
	}
	return st.Clone(), nil
}

// Update runs fn on the live session while holding the store lock.
func (s *Store) Update(id string, fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions.Get(id)
	if !ok {
		return fmt.Errorf("update session %s: %w", id, models.ErrSessionNotFound)
	}
	if err := fn(st); err != nil {
		return err
	}
	st.touch(s.now())
	return nil
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Remove(id)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}
