package todolist_test

import (
	"testing"

	"session-todo/internal/todolist"
)

func TestSortLists(t *testing.T) {
	done := []todolist.Todo{{Name: "x", Completed: true}}
	lists := []todolist.List{
		{Name: "A", Todos: done},
		{Name: "B", Todos: []todolist.Todo{{Name: "y"}}},
		{Name: "C", Todos: done},
	}

	got := todolist.SortLists(lists)

	want := []struct {
		name  string
		index int
	}{{"B", 1}, {"A", 0}, {"C", 2}}

	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].List.Name != w.name || got[i].Index != w.index {
			t.Errorf("position %d: got %s(%d), want %s(%d)", i, got[i].List.Name, got[i].Index, w.name, w.index)
		}
	}
}

func TestSortListsKeepsIndexForEqualLists(t *testing.T) {
	lists := []todolist.List{{Name: "Same"}, {Name: "Same"}}
	got := todolist.SortLists(lists)
	if got[0].Index != 0 || got[1].Index != 1 {
		t.Errorf("expected indices 0,1 got %d,%d", got[0].Index, got[1].Index)
	}
}

func TestSortTodos(t *testing.T) {
	todos := []todolist.Todo{
		{Name: "a", Completed: true},
		{Name: "b"},
		{Name: "c", Completed: true},
		{Name: "d"},
	}

	got := todolist.SortTodos(todos)

	wantIdx := []int{1, 3, 0, 2}
	for i, idx := range wantIdx {
		if got[i].Index != idx || got[i].Todo.Name != todos[idx].Name {
			t.Errorf("position %d: got index %d (%s), want %d", i, got[i].Index, got[i].Todo.Name, idx)
		}
	}

	if len(todolist.SortTodos(nil)) != 0 {
		t.Errorf("expected empty result for nil input")
	}
}
