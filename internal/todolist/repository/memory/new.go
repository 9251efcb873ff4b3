package memory

import (
	"fmt"

	"session-todo/internal/session"
	"session-todo/internal/todolist/repository"
	"session-todo/pkg/log"
)

type implRepository struct {
	store *session.Store
	l     log.Logger
}

// New creates a Repository that keeps lists inside session records.
func New(store *session.Store, l log.Logger) repository.Repository {
	if store == nil {
		panic("todolist/repository/memory: store is required")
	}
	return &implRepository{store: store, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todolist/repository/memory.%s", method)
}
