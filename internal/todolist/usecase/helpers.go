package usecase

import (
	"errors"

	"session-todo/internal/todolist"
	repo "session-todo/internal/todolist/repository"
)

// mapRepoError turns out-of-range errors into the domain's not-found errors.
func (uc *implUseCase) mapRepoError(err error) error {
	switch {
	case errors.Is(err, repo.ErrListIndexOutOfRange):
		return todolist.ErrListNotFound
	case errors.Is(err, repo.ErrTodoIndexOutOfRange):
		return todolist.ErrTodoNotFound
	default:
		return err
	}
}

// listNames returns the names of lists, skipping the one at skip (-1 skips none).
func (uc *implUseCase) listNames(lists []todolist.List, skip int) []string {
	names := make([]string, 0, len(lists))
	for i, l := range lists {
		if i == skip {
			continue
		}
		names = append(names, l.Name)
	}
	return names
}
