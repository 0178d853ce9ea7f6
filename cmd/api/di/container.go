package di

import (
	"context"
	"fmt"

	"student-registration-service/cmd/api/infrastructure"
	ginhandler "student-registration-service/internal/adapter/gin/handler"
	grpcadapter "student-registration-service/internal/adapter/grpc"
	"student-registration-service/internal/adapter/memory"
	"student-registration-service/internal/adapter/ratelimit"
	"student-registration-service/internal/config"
	"student-registration-service/internal/usecase/user"
	redisclient "student-registration-service/pkg/redis"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Store       *memory.UserStore
	RedisClient *redisclient.Client
	UserUC      user.Usecase
	RateLimiter *ratelimit.Limiter
	GinHandler  *ginhandler.UserHandler
	Health      *grpcadapter.HealthService
}

// NewContainer creates and initializes all application dependencies
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Redis is optional and only backs the rate limiter
	rdb, err := infrastructure.NewRedisClient(ctx, cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	var scripter redis.Scripter
	if rdb != nil {
		scripter = rdb.Client
	}
	rateLimiter := ratelimit.New(scripter, ratelimit.Config{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstCapacity:     cfg.RateLimit.BurstCapacity,
		Enabled:           cfg.RateLimit.Enabled,
	}, l)

	// One store for the whole process lifetime
	store := memory.NewUserStore()
	userUC := user.New(store, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		Store:       store,
		RedisClient: rdb,
		UserUC:      userUC,
		RateLimiter: rateLimiter,
		GinHandler:  ginhandler.NewUserHandler(userUC, l),
		Health:      grpcadapter.NewHealthService(),
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}
	return nil
}
