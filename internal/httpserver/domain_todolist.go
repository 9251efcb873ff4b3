package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	todolistHTTP "session-todo/internal/todolist/delivery/http"
)

// setupTodolistDomain registers the todolist pages and the templates they render.
func (srv *HTTPServer) setupTodolistDomain(ctx context.Context, r *gin.Engine) error {
	r.SetHTMLTemplate(todolistHTTP.Templates())

	h := todolistHTTP.New(srv.l, srv.todolistUC)
	todolistHTTP.RegisterRoutes(r, h, srv.mw)
	r.NoRoute(srv.noRoute)

	srv.l.Infof(ctx, "Todolist domain registered")
	return nil
}
