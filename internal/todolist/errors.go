package todolist

import "errors"

const (
	MinNameLength = 1
	MaxNameLength = 100
)

// Validation errors.
var (
	ErrInvalidNameLength = errors.New("name length must be between 1 and 100")
	ErrDuplicateListName = errors.New("list name must be unique")
)

// Not-found errors.
var (
	ErrListNotFound = errors.New("list not found")
	ErrTodoNotFound = errors.New("todo not found")
)

// IsValidation reports whether err is caused by a rejected name.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidNameLength) || errors.Is(err, ErrDuplicateListName)
}

// IsNotFound reports whether err is caused by an out-of-range list or todo index.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrListNotFound) || errors.Is(err, ErrTodoNotFound)
}
