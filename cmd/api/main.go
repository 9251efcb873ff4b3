package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"session-todo/config"
	_ "session-todo/docs" // Swagger docs
	"session-todo/internal/httpserver"
	"session-todo/internal/middleware"
	"session-todo/internal/session"
	"session-todo/internal/todolist/repository/memory"
	"session-todo/internal/todolist/usecase"
	"session-todo/pkg/log"
)

// @title       Session Todo Lists
// @description Session-backed to-do lists: create lists, add todos and track completion.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Session Todo...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Sessions
	sessions := session.NewStore(session.Options{
		MaxSessions: cfg.Session.MaxSessions,
		TTL:         cfg.Session.TTL,
	})
	logger.Infof(ctx, "Session store ready (max %d, ttl %s)", cfg.Session.MaxSessions, cfg.Session.TTL)

	// 4. Todolist domain
	todolistRepo := memory.New(sessions, logger)
	todolistUC := usecase.New(todolistRepo, logger)

	// 5. Middleware
	mw := middleware.New(logger, sessions, cfg.Session, cfg.RateLimit)
	if cfg.RateLimit.Enabled {
		logger.Infof(ctx, "Rate limit: %d requests/min per client", cfg.RateLimit.RequestsPerMin)
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		Middleware:      mw,
		TodolistUseCase: todolistUC,
		Sessions:        sessions,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
