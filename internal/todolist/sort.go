package todolist

// SortLists orders lists incomplete-first. Relative order inside each
// partition is kept and every entry remembers its original index.
func SortLists(lists []List) []IndexedList {
	out := make([]IndexedList, 0, len(lists))
	for i, l := range lists {
		if !IsListComplete(l) {
			out = append(out, IndexedList{Index: i, List: l})
		}
	}
	for i, l := range lists {
		if IsListComplete(l) {
			out = append(out, IndexedList{Index: i, List: l})
		}
	}
	return out
}

// SortTodos orders todos incomplete-first with the same guarantees as SortLists.
func SortTodos(todos []Todo) []IndexedTodo {
	out := make([]IndexedTodo, 0, len(todos))
	for i, t := range todos {
		if !t.Completed {
			out = append(out, IndexedTodo{Index: i, Todo: t})
		}
	}
	for i, t := range todos {
		if t.Completed {
			out = append(out, IndexedTodo{Index: i, Todo: t})
		}
	}
	return out
}
