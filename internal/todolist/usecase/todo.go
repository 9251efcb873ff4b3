package usecase

import (
	"context"
	"strings"

	"session-todo/internal/model"
	"session-todo/internal/todolist"
	repo "session-todo/internal/todolist/repository"
)

// AddTodo appends a todo to a list. The list is checked before the name so
// a missing list always wins over a bad name.
func (uc *implUseCase) AddTodo(ctx context.Context, sc model.Scope, input todolist.AddTodoInput) (todolist.AddTodoOutput, error) {
	if _, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{SessionID: sc.SessionID, Index: input.ListIndex}); err != nil {
		return todolist.AddTodoOutput{}, uc.mapRepoError(err)
	}

	name := strings.TrimSpace(input.Name)
	if err := todolist.ValidateTodoName(name); err != nil {
		return todolist.AddTodoOutput{}, err
	}

	idx, t, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		SessionID: sc.SessionID,
		ListIndex: input.ListIndex,
		Name:      name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddTodo CreateTodo: %v", err)
		return todolist.AddTodoOutput{}, uc.mapRepoError(err)
	}
	return todolist.AddTodoOutput{Index: idx, Todo: t}, nil
}

// DeleteTodo removes a todo. Todos after it move down one index.
func (uc *implUseCase) DeleteTodo(ctx context.Context, sc model.Scope, input todolist.DeleteTodoInput) error {
	err := uc.repo.DeleteTodo(ctx, repo.DeleteTodoOptions{
		SessionID: sc.SessionID,
		ListIndex: input.ListIndex,
		TodoIndex: input.TodoIndex,
	})
	if err != nil {
		return uc.mapRepoError(err)
	}
	return nil
}

// SetTodoCompleted sets the completion state of a single todo.
func (uc *implUseCase) SetTodoCompleted(ctx context.Context, sc model.Scope, input todolist.SetTodoCompletedInput) error {
	_, err := uc.repo.UpdateTodo(ctx, repo.UpdateTodoOptions{
		SessionID: sc.SessionID,
		ListIndex: input.ListIndex,
		TodoIndex: input.TodoIndex,
		Completed: input.Completed,
	})
	if err != nil {
		return uc.mapRepoError(err)
	}
	return nil
}
