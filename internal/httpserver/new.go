package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"session-todo/internal/middleware"
	"session-todo/internal/todolist"
	"session-todo/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	trustedProxies  []string

	// Middleware
	mw middleware.Middleware

	// Todolist domain
	todolistUC todolist.UseCase
	sessions   SessionCounter
}

// SessionCounter reports the number of live sessions for the readiness probe.
type SessionCounter interface {
	Len() int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	TrustedProxies  []string

	Middleware middleware.Middleware

	// Todolist domain
	TodolistUseCase todolist.UseCase
	Sessions        SessionCounter
}

// New creates a new HTTPServer instance with all routes registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		trustedProxies:  cfg.TrustedProxies,
		mw:              cfg.Middleware,
		todolistUC:      cfg.TodolistUseCase,
		sessions:        cfg.Sessions,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// X-Forwarded-For is only honoured from trusted proxies; none by default.
	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.todolistUC == nil {
		return errors.New("todolist use case is required")
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}
	return nil
}
