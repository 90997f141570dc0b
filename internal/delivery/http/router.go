package http

import (
	"github.com/gdugdh24/heartline-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/heartline-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	profileHandler *handler.ProfileHandler
	healthHandler  *handler.HealthHandler
	log            *zap.Logger
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	healthHandler *handler.HealthHandler,
	log *zap.Logger,
) *Router {
	return &Router{
		profileHandler: profileHandler,
		healthHandler:  healthHandler,
		log:            log,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(r.log),
		middleware.Recovery(r.log),
	)

	// Health check (supports both GET and HEAD)
	router.GET("/health", r.healthHandler.Liveness)
	router.HEAD("/health", r.healthHandler.Liveness)
	router.GET("/ready", r.healthHandler.Readiness)

	api := router.Group("/api")
	{
		profiles := api.Group("/profiles")
		{
			profiles.POST("", r.profileHandler.CreateProfile)
			profiles.GET("", r.profileHandler.ListProfiles)
			profiles.GET("/:id", r.profileHandler.GetProfile)
			profiles.PUT("/:id", r.profileHandler.UpdateProfile)
			profiles.DELETE("/:id", r.profileHandler.DeleteProfile)
		}
	}

	return router
}
