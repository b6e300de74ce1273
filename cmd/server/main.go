// Package main implements the entry point for the Taskwell API server,
// a task-tracking backend with cookie-carried stateless sessions.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/taskwell/taskwell-api/internal/config"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env file")
	}

	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run wires configuration, logging, storage, and the HTTP server together,
// then blocks until shutdown. Split from main so initialization failures
// flow back as errors.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return err
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer app.cleanup()

	if err := app.migrate(ctx); err != nil {
		return err
	}

	return app.serve(ctx)
}
