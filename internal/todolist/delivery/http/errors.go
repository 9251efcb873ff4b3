package http

import (
	"errors"
	"net/http"

	"session-todo/internal/todolist"
	pkgErrors "session-todo/pkg/errors"
)

// User-facing messages.
const (
	msgNameLength   = "The name should have a length between 1 and 100 characters."
	msgNameUnique   = "The list name must be unique."
	msgListNotFound = "The specified list was not found."
	msgTodoNotFound = "The specified todo was not found."
	msgListCreated  = "The list has been created."
	msgListEdited   = "The list has been successfully edited."
	msgListDeleted  = "The list has been deleted."
	msgAllCompleted = "All todos have been completed."
	msgTodoAdded    = "The todo was added."
	msgTodoDeleted  = "The todo has been deleted."
	msgTodoUpdated  = "The todo has been updated."
)

// mapError translates domain errors into HTTP errors carrying the message
// shown to the user. Unknown errors become ErrInternalServerError.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, todolist.ErrInvalidNameLength):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, msgNameLength)
	case errors.Is(err, todolist.ErrDuplicateListName):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, msgNameUnique)
	case errors.Is(err, todolist.ErrListNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, msgListNotFound)
	case errors.Is(err, todolist.ErrTodoNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, msgTodoNotFound)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
