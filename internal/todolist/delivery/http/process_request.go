package http

import (
	"github.com/gin-gonic/gin"

	"session-todo/internal/todolist"
)

// processListURI binds the list index from the path. A malformed index is
// reported as a missing list.
func (h *handler) processListURI(c *gin.Context) (listURI, error) {
	var uri listURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return uri, todolist.ErrListNotFound
	}
	return uri, nil
}

// processTodoURI binds the list and todo indices from the path.
func (h *handler) processTodoURI(c *gin.Context) (todoURI, error) {
	var uri todoURI
	if err := c.ShouldBindUri(&uri); err != nil {
		if _, listErr := h.processListURI(c); listErr != nil {
			return uri, listErr
		}
		return uri, todolist.ErrTodoNotFound
	}
	return uri, nil
}

// processListNameReq binds the list_name form field.
func (h *handler) processListNameReq(c *gin.Context) (listNameReq, error) {
	var req listNameReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processTodoReq binds the todo form field.
func (h *handler) processTodoReq(c *gin.Context) (todoReq, error) {
	var req todoReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCompletedReq binds the completed form field.
func (h *handler) processCompletedReq(c *gin.Context) (completedReq, error) {
	var req completedReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}

func isXHR(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
