package todolist

// --- Domain Model ---

// List is a named, ordered collection of todos. It is addressed by its
// position in the session's list sequence.
type List struct {
	Name  string
	Todos []Todo
}

// Todo is a single entry of a List, addressed by its position in the list.
type Todo struct {
	Name      string
	Completed bool
}

// IndexedList pairs a list with its position in the session.
type IndexedList struct {
	Index int
	List  List
}

// IndexedTodo pairs a todo with its position in its parent list.
type IndexedTodo struct {
	Index int
	Todo  Todo
}

// --- UseCase Inputs ---

type CreateListInput struct {
	Name string
}

type RenameListInput struct {
	ListIndex int
	Name      string
}

type AddTodoInput struct {
	ListIndex int
	Name      string
}

type DeleteTodoInput struct {
	ListIndex int
	TodoIndex int
}

type SetTodoCompletedInput struct {
	ListIndex int
	TodoIndex int
	Completed bool
}

// --- UseCase Outputs ---

type ListListsOutput struct {
	Lists []IndexedList // incomplete first
}

type DetailListOutput struct {
	Index int
	List  List
	Todos []IndexedTodo // incomplete first
}

type CreateListOutput struct {
	Index int
	List  List
}

type RenameListOutput struct {
	Index int
	List  List
}

type AddTodoOutput struct {
	Index int
	Todo  Todo
}
