package http

import (
	"github.com/gin-gonic/gin"

	"session-todo/internal/todolist"
	"session-todo/pkg/log"
)

// Handler is the public interface for the todolist HTTP delivery layer.
type Handler interface {
	Index(c *gin.Context)
	ListLists(c *gin.Context)
	NewList(c *gin.Context)
	CreateList(c *gin.Context)
	DetailList(c *gin.Context)
	EditList(c *gin.Context)
	RenameList(c *gin.Context)
	DeleteList(c *gin.Context)
	CompleteAll(c *gin.Context)
	AddTodo(c *gin.Context)
	DeleteTodo(c *gin.Context)
	UpdateTodo(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc todolist.UseCase
}

// New creates a new HTTP handler for the todolist domain.
func New(l log.Logger, uc todolist.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
