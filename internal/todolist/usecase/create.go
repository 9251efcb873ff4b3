package usecase

import (
	"context"
	"strings"

	"session-todo/internal/model"
	"session-todo/internal/todolist"
	repo "session-todo/internal/todolist/repository"
)

// CreateList validates the trimmed name against the session's lists and appends a new list.
func (uc *implUseCase) CreateList(ctx context.Context, sc model.Scope, input todolist.CreateListInput) (todolist.CreateListOutput, error) {
	name := strings.TrimSpace(input.Name)

	lists, err := uc.repo.ListLists(ctx, repo.ListListsOptions{SessionID: sc.SessionID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateList ListLists: %v", err)
		return todolist.CreateListOutput{}, err
	}
	if err := todolist.ValidateListName(name, uc.listNames(lists, -1)); err != nil {
		return todolist.CreateListOutput{}, err
	}

	idx, l, err := uc.repo.CreateList(ctx, repo.CreateListOptions{SessionID: sc.SessionID, Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateList CreateList: %v", err)
		return todolist.CreateListOutput{}, err
	}

	uc.l.Debugf(ctx, "uc.CreateList: created list %d %q", idx, name)
	return todolist.CreateListOutput{Index: idx, List: l}, nil
}
