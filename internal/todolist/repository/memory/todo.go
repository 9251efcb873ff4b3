package memory

import (
	"context"
	"slices"

	"session-todo/internal/todolist"
	repo "session-todo/internal/todolist/repository"
)

// CreateTodo appends an incomplete todo to the list at opt.ListIndex.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (int, todolist.Todo, error) {
	sess, err := r.load(ctx, opt.SessionID, "CreateTodo")
	if err != nil {
		return 0, todolist.Todo{}, err
	}
	if !inRange(opt.ListIndex, len(sess.Lists)) {
		return 0, todolist.Todo{}, repo.ErrListIndexOutOfRange
	}

	t := todolist.Todo{Name: opt.Name}
	l := &sess.Lists[opt.ListIndex]
	l.Todos = append(l.Todos, t)
	return len(l.Todos) - 1, t, nil
}

// UpdateTodo sets the completion state of one todo.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (todolist.Todo, error) {
	sess, err := r.load(ctx, opt.SessionID, "UpdateTodo")
	if err != nil {
		return todolist.Todo{}, err
	}
	if !inRange(opt.ListIndex, len(sess.Lists)) {
		return todolist.Todo{}, repo.ErrListIndexOutOfRange
	}
	todos := sess.Lists[opt.ListIndex].Todos
	if !inRange(opt.TodoIndex, len(todos)) {
		return todolist.Todo{}, repo.ErrTodoIndexOutOfRange
	}

	todos[opt.TodoIndex].Completed = opt.Completed
	return todos[opt.TodoIndex], nil
}

// DeleteTodo removes one todo; later todos shift down by one.
func (r *implRepository) DeleteTodo(ctx context.Context, opt repo.DeleteTodoOptions) error {
	sess, err := r.load(ctx, opt.SessionID, "DeleteTodo")
	if err != nil {
		return err
	}
	if !inRange(opt.ListIndex, len(sess.Lists)) {
		return repo.ErrListIndexOutOfRange
	}
	l := &sess.Lists[opt.ListIndex]
	if !inRange(opt.TodoIndex, len(l.Todos)) {
		return repo.ErrTodoIndexOutOfRange
	}

	l.Todos = slices.Delete(l.Todos, opt.TodoIndex, opt.TodoIndex+1)
	return nil
}

// CompleteAllTodos marks every todo of the list as completed.
func (r *implRepository) CompleteAllTodos(ctx context.Context, opt repo.CompleteAllTodosOptions) error {
	sess, err := r.load(ctx, opt.SessionID, "CompleteAllTodos")
	if err != nil {
		return err
	}
	if !inRange(opt.ListIndex, len(sess.Lists)) {
		return repo.ErrListIndexOutOfRange
	}

	todos := sess.Lists[opt.ListIndex].Todos
	for i := range todos {
		todos[i].Completed = true
	}
	return nil
}
