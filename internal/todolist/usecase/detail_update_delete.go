package usecase

import (
	"context"
	"strings"

	"session-todo/internal/model"
	"session-todo/internal/todolist"
	repo "session-todo/internal/todolist/repository"
)

// RenameList renames a list. Keeping the current name is allowed; taking
// another list's name is not.
func (uc *implUseCase) RenameList(ctx context.Context, sc model.Scope, input todolist.RenameListInput) (todolist.RenameListOutput, error) {
	name := strings.TrimSpace(input.Name)

	lists, err := uc.repo.ListLists(ctx, repo.ListListsOptions{SessionID: sc.SessionID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RenameList ListLists: %v", err)
		return todolist.RenameListOutput{}, err
	}
	if input.ListIndex < 0 || input.ListIndex >= len(lists) {
		return todolist.RenameListOutput{}, todolist.ErrListNotFound
	}
	if err := todolist.ValidateListName(name, uc.listNames(lists, input.ListIndex)); err != nil {
		return todolist.RenameListOutput{}, err
	}

	l, err := uc.repo.UpdateList(ctx, repo.UpdateListOptions{
		SessionID: sc.SessionID,
		Index:     input.ListIndex,
		Name:      name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RenameList UpdateList: %v", err)
		return todolist.RenameListOutput{}, uc.mapRepoError(err)
	}
	return todolist.RenameListOutput{Index: input.ListIndex, List: l}, nil
}

// DeleteList removes a list. Lists after it move down one index.
func (uc *implUseCase) DeleteList(ctx context.Context, sc model.Scope, listIndex int) error {
	if err := uc.repo.DeleteList(ctx, repo.DeleteListOptions{SessionID: sc.SessionID, Index: listIndex}); err != nil {
		return uc.mapRepoError(err)
	}
	return nil
}

// CompleteAll marks every todo in a list as completed.
func (uc *implUseCase) CompleteAll(ctx context.Context, sc model.Scope, listIndex int) error {
	err := uc.repo.CompleteAllTodos(ctx, repo.CompleteAllTodosOptions{SessionID: sc.SessionID, ListIndex: listIndex})
	if err != nil {
		return uc.mapRepoError(err)
	}
	return nil
}
