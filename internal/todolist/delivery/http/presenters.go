package http

import (
	"session-todo/internal/session"
	"session-todo/internal/todolist"
)

// --- Request DTOs ---

type listURI struct {
	ListIndex int `uri:"id" binding:"min=0"`
}

type todoURI struct {
	ListIndex int `uri:"id"      binding:"min=0"`
	TodoIndex int `uri:"todo_id" binding:"min=0"`
}

type listNameReq struct {
	ListName string `form:"list_name"`
}

func (r listNameReq) toCreateInput() todolist.CreateListInput {
	return todolist.CreateListInput{Name: r.ListName}
}

func (r listNameReq) toRenameInput(listIndex int) todolist.RenameListInput {
	return todolist.RenameListInput{ListIndex: listIndex, Name: r.ListName}
}

type todoReq struct {
	Todo string `form:"todo"`
}

func (r todoReq) toInput(listIndex int) todolist.AddTodoInput {
	return todolist.AddTodoInput{ListIndex: listIndex, Name: r.Todo}
}

type completedReq struct {
	Completed string `form:"completed"`
}

func (r completedReq) toInput(uri todoURI) todolist.SetTodoCompletedInput {
	return todolist.SetTodoCompletedInput{
		ListIndex: uri.ListIndex,
		TodoIndex: uri.TodoIndex,
		Completed: r.Completed == "true",
	}
}

// --- Page views ---

// page is implemented by every view rendered inside the layout.
type page interface {
	setFlash(f session.Flash)
}

type layoutView struct {
	Title string
	Flash session.Flash
}

func (v *layoutView) setFlash(f session.Flash) { v.Flash = f }

type listRow struct {
	Index     int
	Name      string
	Class     string
	Remaining int
	Total     int
}

type listsView struct {
	layoutView
	Lists []listRow
}

func (h *handler) newListsView(out todolist.ListListsOutput) *listsView {
	rows := make([]listRow, len(out.Lists))
	for i, il := range out.Lists {
		rows[i] = listRow{
			Index:     il.Index,
			Name:      il.List.Name,
			Class:     todolist.ListClass(il.List),
			Remaining: todolist.RemainingCount(il.List),
			Total:     todolist.TodosCount(il.List),
		}
	}
	return &listsView{layoutView: layoutView{Title: "Lists"}, Lists: rows}
}

type newListView struct {
	layoutView
	ListName string
}

func (h *handler) newNewListView(listName string) *newListView {
	return &newListView{layoutView: layoutView{Title: "New List"}, ListName: listName}
}

type todoRow struct {
	Index     int
	Name      string
	Completed bool
	Class     string
}

type listView struct {
	layoutView
	Index     int
	Name      string
	Class     string
	Remaining int
	Total     int
	Todos     []todoRow
	TodoName  string
}

func (h *handler) newListView(out todolist.DetailListOutput, todoName string) *listView {
	todos := make([]todoRow, len(out.Todos))
	for i, it := range out.Todos {
		todos[i] = todoRow{
			Index:     it.Index,
			Name:      it.Todo.Name,
			Completed: it.Todo.Completed,
			Class:     todolist.TodoClass(it.Todo),
		}
	}
	return &listView{
		layoutView: layoutView{Title: out.List.Name},
		Index:      out.Index,
		Name:       out.List.Name,
		Class:      todolist.ListClass(out.List),
		Remaining:  todolist.RemainingCount(out.List),
		Total:      todolist.TodosCount(out.List),
		Todos:      todos,
		TodoName:   todoName,
	}
}

type editListView struct {
	layoutView
	Index       int
	CurrentName string
	ListName    string
}

func (h *handler) newEditListView(out todolist.DetailListOutput, listName string) *editListView {
	return &editListView{
		layoutView:  layoutView{Title: "Edit " + out.List.Name},
		Index:       out.Index,
		CurrentName: out.List.Name,
		ListName:    listName,
	}
}

func (u todoURI) toDeleteInput() todolist.DeleteTodoInput {
	return todolist.DeleteTodoInput{ListIndex: u.ListIndex, TodoIndex: u.TodoIndex}
}
