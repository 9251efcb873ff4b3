package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"session-todo/internal/todolist"
)

const (
	DefaultMaxSessions = 10000
	DefaultTTL         = 24 * time.Hour
)

// Store keeps sessions in memory. Idle sessions expire after the TTL and
// the least recently used ones are evicted once MaxSessions is reached.
type Store struct {
	sessions *expirable.LRU[string, *Session]
	now      func() time.Time
}

// NewStore creates a Store. Zero options take the package defaults.
func NewStore(opt Options) *Store {
	if opt.MaxSessions <= 0 {
		opt.MaxSessions = DefaultMaxSessions
	}
	if opt.TTL <= 0 {
		opt.TTL = DefaultTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, *Session](opt.MaxSessions, nil, opt.TTL),
		now:      time.Now,
	}
}

// Create registers a new empty session with a random ID.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: s.now(),
		Lists:     []todolist.List{},
	}
	s.sessions.Add(sess.ID, sess)
	return sess
}

// Get returns the session for id and restarts its idle timer.
func (s *Store) Get(id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	// expirable.LRU only sets the expiry on Add.
	s.sessions.Add(id, sess)
	return sess, nil
}

// Peek returns the session for id without touching its expiry or recency.
func (s *Store) Peek(id string) (*Session, error) {
	sess, ok := s.sessions.Peek(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete drops the session for id.
func (s *Store) Delete(id string) {
	s.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}
