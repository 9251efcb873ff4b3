package todolist

import (
	"context"

	"session-todo/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Lists
	ListLists(ctx context.Context, sc model.Scope) (ListListsOutput, error)
	DetailList(ctx context.Context, sc model.Scope, listIndex int) (DetailListOutput, error)
	CreateList(ctx context.Context, sc model.Scope, input CreateListInput) (CreateListOutput, error)
	RenameList(ctx context.Context, sc model.Scope, input RenameListInput) (RenameListOutput, error)
	DeleteList(ctx context.Context, sc model.Scope, listIndex int) error
	CompleteAll(ctx context.Context, sc model.Scope, listIndex int) error

	// Todos
	AddTodo(ctx context.Context, sc model.Scope, input AddTodoInput) (AddTodoOutput, error)
	DeleteTodo(ctx context.Context, sc model.Scope, input DeleteTodoInput) error
	SetTodoCompleted(ctx context.Context, sc model.Scope, input SetTodoCompletedInput) error
}
