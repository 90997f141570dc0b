// Command bootstrap creates the database schema and seeds users.
//
//	bootstrap migrate
//	bootstrap insert-user -name Ann -email ann@example.com -password secret -gender female -age 28 [-bio ...] [-picture URL]
//	bootstrap list-users
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gdugdh24/heartline-backend/internal/config"
	"github.com/gdugdh24/heartline-backend/internal/infrastructure/container"
	"github.com/gdugdh24/heartline-backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr, connect))
}

// connect loads configuration and opens the database behind the bootstrap
// use case. The returned func closes the pool and flushes the logger.
func connect() (Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	app, err := container.NewBootstrapContainer(cfg, log)
	if err != nil {
		log.Error("failed to initialize bootstrap", zap.Error(err))
		_ = log.Sync()
		return nil, nil, fmt.Errorf("failed to initialize bootstrap: %w", err)
	}

	return app.Bootstrap, func() {
		if err := app.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
		_ = log.Sync()
	}, nil
}
