package http

import (
	"github.com/gin-gonic/gin"

	"session-todo/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// runs inside a session.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.GET("/", mw.Session(), h.Index)

	lists := r.Group("/lists", mw.Session())
	{
		lists.GET("", h.ListLists)
		lists.GET("/new", h.NewList)
		lists.POST("", h.CreateList)
		lists.GET("/:id", h.DetailList)
		lists.GET("/:id/edit", h.EditList)
		lists.POST("/:id", h.RenameList)
		lists.POST("/:id/delete", h.DeleteList)
		lists.POST("/:id/complete_all", h.CompleteAll)

		lists.POST("/:id/todos", h.AddTodo)
		lists.POST("/:id/todos/:todo_id/delete", h.DeleteTodo)
		lists.POST("/:id/todos/:todo_id", h.UpdateTodo)
	}
}
