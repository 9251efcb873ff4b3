package repository

import "errors"

var (
	ErrListIndexOutOfRange = errors.New("list index out of range")
	ErrTodoIndexOutOfRange = errors.New("todo index out of range")
	ErrFailedToLoadSession = errors.New("failed to load session")
)
