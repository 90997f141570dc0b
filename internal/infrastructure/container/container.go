package container

import (
	"context"
	"fmt"

	"github.com/gdugdh24/heartline-backend/internal/config"
	delivery "github.com/gdugdh24/heartline-backend/internal/delivery/http"
	"github.com/gdugdh24/heartline-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/heartline-backend/internal/infrastructure/cache"
	"github.com/gdugdh24/heartline-backend/internal/infrastructure/database"
	"github.com/gdugdh24/heartline-backend/internal/infrastructure/server"
	"github.com/gdugdh24/heartline-backend/internal/repository/postgres"
	"github.com/gdugdh24/heartline-backend/internal/usecase/bootstrap"
	"github.com/gdugdh24/heartline-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	DB        *sqlx.DB
	Redis     *redis.Client
	Server    *server.Server
	Bootstrap *bootstrap.BootstrapUseCase
	Log       *zap.Logger
}

// NewBootstrapContainer wires only what the bootstrap CLI needs.
func NewBootstrapContainer(cfg *config.Config, log *zap.Logger) (*Container, error) {
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Bootstrap: bootstrap.NewBootstrapUseCase(
			postgres.NewMigrator(db),
			postgres.NewUserRepository(db),
			log,
		),
		Log: log,
	}, nil
}

// NewContainer creates the dependency graph of the HTTP API
func NewContainer(cfg *config.Config, log *zap.Logger) (*Container, error) {
	c, err := NewBootstrapContainer(cfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := c.Bootstrap.CreateProfilesTable(context.Background()); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to migrate profiles table: %w", err)
		}
	}

	// Redis is optional; without it profile reads always hit Postgres
	if cfg.Redis.Enabled() {
		redisClient, err := database.NewRedisClient(context.Background(), &cfg.Redis)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = redisClient
	}

	profileRepo := postgres.NewProfileRepository(c.DB)
	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
		cache.NewProfileCache(c.Redis, cfg.Cache.TTL),
		log,
	)

	router := delivery.NewRouter(
		handler.NewProfileHandler(profileUseCase),
		handler.NewHealthHandler(c.DB),
		log,
	)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	c.Server = server.NewServer(&cfg.Server, router.Setup(), log)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
