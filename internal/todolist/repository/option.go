package repository

// Every option carries the SessionID whose data is read or written.

type ListListsOptions struct {
	SessionID string
}

type GetOneListOptions struct {
	SessionID string
	Index     int
}

type CreateListOptions struct {
	SessionID string
	Name      string
}

// UpdateListOptions renames the list at Index.
type UpdateListOptions struct {
	SessionID string
	Index     int
	Name      string
}

type DeleteListOptions struct {
	SessionID string
	Index     int
}

type CreateTodoOptions struct {
	SessionID string
	ListIndex int
	Name      string
}

type UpdateTodoOptions struct {
	SessionID string
	ListIndex int
	TodoIndex int
	Completed bool
}

type DeleteTodoOptions struct {
	SessionID string
	ListIndex int
	TodoIndex int
}

type CompleteAllTodosOptions struct {
	SessionID string
	ListIndex int
}
