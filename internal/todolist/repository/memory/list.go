package memory

import (
	"context"
	"slices"

	"session-todo/internal/session"
	"session-todo/internal/todolist"
	repo "session-todo/internal/todolist/repository"
)

// ListLists returns copies of all lists in storage order.
func (r *implRepository) ListLists(ctx context.Context, opt repo.ListListsOptions) ([]todolist.List, error) {
	sess, err := r.load(ctx, opt.SessionID, "ListLists")
	if err != nil {
		return nil, err
	}

	lists := make([]todolist.List, len(sess.Lists))
	for i, l := range sess.Lists {
		lists[i] = cloneList(l)
	}
	return lists, nil
}

// GetOneList returns the list at opt.Index.
func (r *implRepository) GetOneList(ctx context.Context, opt repo.GetOneListOptions) (todolist.List, error) {
	sess, err := r.load(ctx, opt.SessionID, "GetOneList")
	if err != nil {
		return todolist.List{}, err
	}
	if !inRange(opt.Index, len(sess.Lists)) {
		return todolist.List{}, repo.ErrListIndexOutOfRange
	}
	return cloneList(sess.Lists[opt.Index]), nil
}

// CreateList appends an empty list and returns its index.
func (r *implRepository) CreateList(ctx context.Context, opt repo.CreateListOptions) (int, todolist.List, error) {
	sess, err := r.load(ctx, opt.SessionID, "CreateList")
	if err != nil {
		return 0, todolist.List{}, err
	}

	l := todolist.List{Name: opt.Name, Todos: []todolist.Todo{}}
	sess.Lists = append(sess.Lists, l)
	return len(sess.Lists) - 1, cloneList(l), nil
}

// UpdateList renames the list at opt.Index.
func (r *implRepository) UpdateList(ctx context.Context, opt repo.UpdateListOptions) (todolist.List, error) {
	sess, err := r.load(ctx, opt.SessionID, "UpdateList")
	if err != nil {
		return todolist.List{}, err
	}
	if !inRange(opt.Index, len(sess.Lists)) {
		return todolist.List{}, repo.ErrListIndexOutOfRange
	}

	sess.Lists[opt.Index].Name = opt.Name
	return cloneList(sess.Lists[opt.Index]), nil
}

// DeleteList removes the list at opt.Index; later lists shift down by one.
func (r *implRepository) DeleteList(ctx context.Context, opt repo.DeleteListOptions) error {
	sess, err := r.load(ctx, opt.SessionID, "DeleteList")
	if err != nil {
		return err
	}
	if !inRange(opt.Index, len(sess.Lists)) {
		return repo.ErrListIndexOutOfRange
	}

	sess.Lists = slices.Delete(sess.Lists, opt.Index, opt.Index+1)
	return nil
}

// load resolves the session record for id. The session bound to the
// request by the session middleware wins over the store, so a record
// evicted mid-request is still the one being mutated.
func (r *implRepository) load(ctx context.Context, id string, method string) (*session.Session, error) {
	if sess, err := session.FromContext(ctx); err == nil && sess.ID == id {
		return sess, nil
	}

	sess, err := r.store.Peek(id)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToLoadSession
	}
	return sess, nil
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}

func cloneList(l todolist.List) todolist.List {
	todos := make([]todolist.Todo, len(l.Todos))
	copy(todos, l.Todos)
	return todolist.List{Name: l.Name, Todos: todos}
}
