package todolist_test

import (
	"errors"
	"strings"
	"testing"

	"session-todo/internal/todolist"
)

func TestValidateListName(t *testing.T) {
	existing := []string{"Groceries", "Work"}

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"Empty", "", todolist.ErrInvalidNameLength},
		{"Single Char", "a", nil},
		{"Max Length", strings.Repeat("x", 100), nil},
		{"Too Long", strings.Repeat("x", 101), todolist.ErrInvalidNameLength},
		{"Multibyte At Max", strings.Repeat("é", 100), nil},
		{"Duplicate", "Groceries", todolist.ErrDuplicateListName},
		{"Duplicate Is Case Sensitive", "groceries", nil},
		{"Length Checked Before Uniqueness", "", todolist.ErrInvalidNameLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := todolist.ValidateListName(tt.input, existing)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateListName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTodoName(t *testing.T) {
	if err := todolist.ValidateTodoName(""); !errors.Is(err, todolist.ErrInvalidNameLength) {
		t.Errorf("expected length error for empty name, got %v", err)
	}
	if err := todolist.ValidateTodoName(strings.Repeat("y", 101)); !errors.Is(err, todolist.ErrInvalidNameLength) {
		t.Errorf("expected length error for 101 chars, got %v", err)
	}
	if err := todolist.ValidateTodoName("Milk"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestErrorKinds(t *testing.T) {
	if !todolist.IsValidation(todolist.ErrDuplicateListName) || !todolist.IsValidation(todolist.ErrInvalidNameLength) {
		t.Errorf("validation errors not recognised")
	}
	if todolist.IsValidation(todolist.ErrListNotFound) {
		t.Errorf("not-found error classified as validation")
	}
	wrapped := errors.Join(errors.New("ctx"), todolist.ErrTodoNotFound)
	if !todolist.IsNotFound(wrapped) {
		t.Errorf("wrapped not-found error not recognised")
	}
}
