package usecase_test

import (
	"context"
	"errors"
	"testing"

	"session-todo/internal/todolist"
)

func TestAddTodo(t *testing.T) {
	ctx := context.Background()
	uc, sc := newUseCase(t)
	idx := mustCreateList(t, uc, sc, "Groceries")

	t.Run("Added", func(t *testing.T) {
		out, err := uc.AddTodo(ctx, sc, todolist.AddTodoInput{ListIndex: idx, Name: " milk "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Index != 0 || out.Todo.Name != "milk" || out.Todo.Completed {
			t.Errorf("unexpected output %+v", out)
		}
	})

	t.Run("Empty Name", func(t *testing.T) {
		_, err := uc.AddTodo(ctx, sc, todolist.AddTodoInput{ListIndex: idx, Name: ""})
		if !todolist.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("Missing List Wins Over Bad Name", func(t *testing.T) {
		_, err := uc.AddTodo(ctx, sc, todolist.AddTodoInput{ListIndex: 4, Name: ""})
		if !errors.Is(err, todolist.ErrListNotFound) {
			t.Errorf("expected ErrListNotFound, got %v", err)
		}
	})
}

func TestTodoCompletion(t *testing.T) {
	ctx := context.Background()
	uc, sc := newUseCase(t)
	idx := mustCreateList(t, uc, sc, "Work")
	uc.AddTodo(ctx, sc, todolist.AddTodoInput{ListIndex: idx, Name: "report"})
	uc.AddTodo(ctx, sc, todolist.AddTodoInput{ListIndex: idx, Name: "email"})

	if err := uc.SetTodoCompleted(ctx, sc, todolist.SetTodoCompletedInput{ListIndex: idx, TodoIndex: 0, Completed: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, _ := uc.DetailList(ctx, sc, idx)
	if todolist.IsListComplete(out.List) {
		t.Errorf("list with one incomplete todo reported complete")
	}

	if err := uc.CompleteAll(ctx, sc, idx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, _ = uc.DetailList(ctx, sc, idx)
	if !todolist.IsListComplete(out.List) {
		t.Errorf("expected list complete after CompleteAll")
	}

	if err := uc.SetTodoCompleted(ctx, sc, todolist.SetTodoCompletedInput{ListIndex: idx, TodoIndex: 0, Completed: false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, _ = uc.DetailList(ctx, sc, idx)
	if todolist.RemainingCount(out.List) != 1 {
		t.Errorf("expected one remaining todo, got %d", todolist.RemainingCount(out.List))
	}

	err := uc.SetTodoCompleted(ctx, sc, todolist.SetTodoCompletedInput{ListIndex: idx, TodoIndex: 9, Completed: true})
	if !errors.Is(err, todolist.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}
	if err := uc.CompleteAll(ctx, sc, 9); !errors.Is(err, todolist.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}

func TestDeleteTodo(t *testing.T) {
	ctx := context.Background()
	uc, sc := newUseCase(t)
	idx := mustCreateList(t, uc, sc, "Work")
	uc.AddTodo(ctx, sc, todolist.AddTodoInput{ListIndex: idx, Name: "a"})
	uc.AddTodo(ctx, sc, todolist.AddTodoInput{ListIndex: idx, Name: "b"})

	if err := uc.DeleteTodo(ctx, sc, todolist.DeleteTodoInput{ListIndex: idx, TodoIndex: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, _ := uc.DetailList(ctx, sc, idx)
	if len(out.List.Todos) != 1 || out.List.Todos[0].Name != "b" {
		t.Errorf("unexpected todos %+v", out.List.Todos)
	}

	err := uc.DeleteTodo(ctx, sc, todolist.DeleteTodoInput{ListIndex: idx, TodoIndex: 1})
	if !errors.Is(err, todolist.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}
	err = uc.DeleteTodo(ctx, sc, todolist.DeleteTodoInput{ListIndex: 3, TodoIndex: 0})
	if !errors.Is(err, todolist.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}
