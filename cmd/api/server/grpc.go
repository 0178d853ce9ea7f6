package server

import (
	grpcadapter "student-registration-service/internal/adapter/grpc"
	"student-registration-service/internal/adapter/grpc/middleware"
	"student-registration-service/internal/adapter/ratelimit"
	"student-registration-service/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// SetupGRPC creates the gRPC server carrying the health service
func SetupGRPC(health *grpcadapter.HealthService, rateLimiter *ratelimit.Limiter, l *zap.Logger) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.RequestIDInterceptor(),
			middleware.RateLimitInterceptor(rateLimiter, l),
		),
	)
	health.Register(grpcServer)
	reflection.Register(grpcServer)

	return grpcServer
}
