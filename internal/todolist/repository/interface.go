package repository

import (
	"context"

	"session-todo/internal/todolist"
)

// Repository is the composed interface for the todolist data store.
type Repository interface {
	ListRepository
	TodoRepository
}

// ListRepository defines index-based access to a session's lists.
type ListRepository interface {
	ListLists(ctx context.Context, opt ListListsOptions) ([]todolist.List, error)
	GetOneList(ctx context.Context, opt GetOneListOptions) (todolist.List, error)
	CreateList(ctx context.Context, opt CreateListOptions) (int, todolist.List, error)
	UpdateList(ctx context.Context, opt UpdateListOptions) (todolist.List, error)
	DeleteList(ctx context.Context, opt DeleteListOptions) error
}

// TodoRepository defines index-based access to the todos of a list.
type TodoRepository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (int, todolist.Todo, error)
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (todolist.Todo, error)
	DeleteTodo(ctx context.Context, opt DeleteTodoOptions) error
	CompleteAllTodos(ctx context.Context, opt CompleteAllTodosOptions) error
}
