package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"session-todo/internal/model"
	pkgErrors "session-todo/pkg/errors"
	"session-todo/pkg/response"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.Recovery(), srv.mw.Logger(), srv.mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if err := srv.setupTodolistDomain(ctx, srv.gin); err != nil {
		return err
	}

	return nil
}

// noRoute answers unknown paths with the JSON 404 envelope.
func (srv *HTTPServer) noRoute(c *gin.Context) {
	srv.l.Debugf(c.Request.Context(), "no route for %s %s", c.Request.Method, c.Request.URL.Path)
	response.Error(c, pkgErrors.ErrNotFound)
}
