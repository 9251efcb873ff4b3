package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoSession       = errors.New("no session in context")
)
