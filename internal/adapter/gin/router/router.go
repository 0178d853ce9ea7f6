package router

import (
	"student-registration-service/internal/adapter/gin/handler"
	"student-registration-service/internal/adapter/gin/middleware"
	"student-registration-service/internal/adapter/ratelimit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	userHandler *handler.UserHandler,
	rateLimiter *ratelimit.Limiter,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	// Probes are never rate limited
	router.GET("/health", handler.Health)
	router.GET("/", handler.Root)

	api := router.Group("/api")
	api.Use(middleware.RateLimiter(rateLimiter, log))
	{
		api.POST("/register", userHandler.RegisterUser)
		api.GET("/users", userHandler.ListUsers)
		api.DELETE("/users/:id", userHandler.DeleteUser)
	}

	return router
}
