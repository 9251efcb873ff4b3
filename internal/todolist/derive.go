package todolist

// ClassComplete marks completed lists and todos in rendered pages.
const ClassComplete = "complete"

// TodosCount returns the number of todos in l.
func TodosCount(l List) int {
	return len(l.Todos)
}

// RemainingCount returns the number of todos in l that are not completed.
func RemainingCount(l List) int {
	remaining := 0
	for _, t := range l.Todos {
		if !t.Completed {
			remaining++
		}
	}
	return remaining
}

// IsListComplete is true when l has at least one todo and all are completed.
func IsListComplete(l List) bool {
	return TodosCount(l) > 0 && RemainingCount(l) == 0
}

// ListClass returns ClassComplete for a complete list, otherwise "".
func ListClass(l List) string {
	if IsListComplete(l) {
		return ClassComplete
	}
	return ""
}

// TodoClass returns ClassComplete for a completed todo, otherwise "".
func TodoClass(t Todo) string {
	if t.Completed {
		return ClassComplete
	}
	return ""
}
