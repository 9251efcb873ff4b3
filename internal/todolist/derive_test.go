package todolist_test

import (
	"testing"

	"session-todo/internal/todolist"
)

func TestCompletion(t *testing.T) {
	tests := []struct {
		name          string
		list          todolist.List
		wantComplete  bool
		wantRemaining int
		wantClass     string
	}{
		{"No Todos", todolist.List{Name: "Empty"}, false, 0, ""},
		{"All Completed", todolist.List{Name: "Done", Todos: []todolist.Todo{{Name: "a", Completed: true}, {Name: "b", Completed: true}}}, true, 0, "complete"},
		{"One Incomplete", todolist.List{Name: "Mixed", Todos: []todolist.Todo{{Name: "a", Completed: true}, {Name: "b"}}}, false, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := todolist.IsListComplete(tt.list); got != tt.wantComplete {
				t.Errorf("IsListComplete = %v, want %v", got, tt.wantComplete)
			}
			if got := todolist.RemainingCount(tt.list); got != tt.wantRemaining {
				t.Errorf("RemainingCount = %d, want %d", got, tt.wantRemaining)
			}
			if got := todolist.TodosCount(tt.list); got != len(tt.list.Todos) {
				t.Errorf("TodosCount = %d, want %d", got, len(tt.list.Todos))
			}
			if got := todolist.ListClass(tt.list); got != tt.wantClass {
				t.Errorf("ListClass = %q, want %q", got, tt.wantClass)
			}
		})
	}
}

func TestTodoClass(t *testing.T) {
	if got := todolist.TodoClass(todolist.Todo{Completed: true}); got != todolist.ClassComplete {
		t.Errorf("expected %q, got %q", todolist.ClassComplete, got)
	}
	if got := todolist.TodoClass(todolist.Todo{}); got != "" {
		t.Errorf("expected empty class, got %q", got)
	}
}
