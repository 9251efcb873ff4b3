package session

import (
	"sync"
	"time"

	"session-todo/internal/todolist"
)

// Flash holds one-shot messages shown on the next rendered page.
type Flash struct {
	Success string
	Error   string
}

// Session is the per-visitor record. Callers must hold Lock while reading
// or mutating Lists or Flash; middleware.Session does this for the whole
// request.
type Session struct {
	ID        string
	CreatedAt time.Time
	Lists     []todolist.List

	mu    sync.Mutex
	flash Flash
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// SetSuccess replaces the pending success message.
func (s *Session) SetSuccess(msg string) { s.flash.Success = msg }

// SetError replaces the pending error message.
func (s *Session) SetError(msg string) { s.flash.Error = msg }

// PopFlash returns the pending messages and clears them.
func (s *Session) PopFlash() Flash {
	f := s.flash
	s.flash = Flash{}
	return f
}

// Options configures a Store.
type Options struct {
	MaxSessions int
	TTL         time.Duration
}
