package usecase

import (
	"session-todo/internal/todolist"
	"session-todo/internal/todolist/repository"
	"session-todo/pkg/log"
)

// implUseCase is the private implementation of todolist.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ todolist.UseCase = (*implUseCase)(nil)

// New creates a new todolist UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
