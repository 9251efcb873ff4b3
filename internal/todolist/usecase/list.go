package usecase

import (
	"context"

	"session-todo/internal/model"
	"session-todo/internal/todolist"
	repo "session-todo/internal/todolist/repository"
)

// ListLists returns the session's lists, incomplete ones first.
func (uc *implUseCase) ListLists(ctx context.Context, sc model.Scope) (todolist.ListListsOutput, error) {
	lists, err := uc.repo.ListLists(ctx, repo.ListListsOptions{SessionID: sc.SessionID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListLists ListLists: %v", err)
		return todolist.ListListsOutput{}, err
	}
	return todolist.ListListsOutput{Lists: todolist.SortLists(lists)}, nil
}

// DetailList returns one list with its todos ordered incomplete-first.
func (uc *implUseCase) DetailList(ctx context.Context, sc model.Scope, listIndex int) (todolist.DetailListOutput, error) {
	l, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{SessionID: sc.SessionID, Index: listIndex})
	if err != nil {
		return todolist.DetailListOutput{}, uc.mapRepoError(err)
	}
	return todolist.DetailListOutput{
		Index: listIndex,
		List:  l,
		Todos: todolist.SortTodos(l.Todos),
	}, nil
}
