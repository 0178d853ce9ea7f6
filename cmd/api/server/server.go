package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"student-registration-service/internal/adapter/gin/handler"
	grpcadapter "student-registration-service/internal/adapter/grpc"
	"student-registration-service/internal/adapter/ratelimit"
	"student-registration-service/internal/config"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	Gin    *http.Server
	GRPC   *grpc.Server // nil when GRPC_ENABLED is false
	Health *grpcadapter.HealthService

	httpLis  net.Listener
	grpcLis  net.Listener
	ready    chan struct{}
	stopping chan struct{}
	stopOnce sync.Once
}

// New creates a new server instance
func New(
	cfg *config.Config,
	l *zap.Logger,
	userHandler *handler.UserHandler,
	rateLimiter *ratelimit.Limiter,
	health *grpcadapter.HealthService,
) *Server {
	s := &Server{
		Config: cfg,
		Logger: l,
		Health: health,
		ready:    make(chan struct{}),
		stopping: make(chan struct{}),
	}
	s.Gin = SetupGinServer(userHandler, rateLimiter, s.httpAddress(), l)
	if cfg.App.GRPCEnabled {
		s.GRPC = SetupGRPC(health, rateLimiter, l)
	}
	return s
}

// Start binds the listeners and serves until the servers are shut down
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(ctx); err != nil {
		return err
	}
	return s.Serve()
}

// Listen binds the HTTP listener and, when enabled, the gRPC listener
func (s *Server) Listen(ctx context.Context) error {
	lc := net.ListenConfig{}

	httpLis, err := lc.Listen(ctx, "tcp", s.httpAddress())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpAddress(), err)
	}
	s.httpLis = httpLis

	if s.GRPC != nil {
		grpcLis, err := lc.Listen(ctx, "tcp", s.grpcAddress())
		if err != nil {
			_ = httpLis.Close()
			return fmt.Errorf("failed to listen on %s: %w", s.grpcAddress(), err)
		}
		s.grpcLis = grpcLis
	}

	close(s.ready)
	return nil
}

// Ready is closed once Listen has bound every listener
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Serve runs both servers on the bound listeners and returns once both have stopped.
// If one server fails the other is closed, so a half-running process never blocks here.
func (s *Server) Serve() error {
	g, gctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		select {
		case <-gctx.Done():
			s.Logger.Error("server failed, stopping remaining servers", zap.Error(context.Cause(gctx)))
			_ = s.Gin.Close()
			if s.GRPC != nil {
				s.GRPC.Stop()
			}
		case <-s.stopping:
		}
		return nil
	})

	g.Go(func() error {
		s.Logger.Info("REST API running", zap.String("address", s.httpLis.Addr().String()))
		if err := s.Gin.Serve(s.httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server: %w", err)
		}
		return nil
	})

	if s.GRPC != nil {
		g.Go(func() error {
			s.Logger.Info("gRPC server running", zap.String("address", s.grpcLis.Addr().String()))
			if err := s.GRPC.Serve(s.grpcLis); err != nil {
				return fmt.Errorf("gRPC server: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}

// Shutdown marks the service unhealthy, drains HTTP within ctx and stops gRPC
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopping) })
	s.Health.Shutdown()

	var errs []error

	s.Logger.Info("shutting down HTTP server...")
	if err := s.Gin.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("HTTP shutdown: %w", err))
	}

	if s.GRPC != nil {
		s.Logger.Info("shutting down gRPC server...")
		stopped := make(chan struct{})
		go func() {
			s.GRPC.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-ctx.Done():
			s.Logger.Warn("gRPC graceful stop timed out, forcing stop")
			s.GRPC.Stop()
			<-stopped
		}
	}

	return errors.Join(errs...)
}

// HTTPAddr returns the bound HTTP address, or the configured one before Listen
func (s *Server) HTTPAddr() string {
	if s.httpLis != nil {
		return s.httpLis.Addr().String()
	}
	return s.httpAddress()
}

// GRPCAddr returns the bound gRPC address, or the configured one before Listen
func (s *Server) GRPCAddr() string {
	if s.grpcLis != nil {
		return s.grpcLis.Addr().String()
	}
	return s.grpcAddress()
}

// grpcAddress returns the configured gRPC server address
func (s *Server) grpcAddress() string {
	return ":" + s.Config.App.GRPCPort
}

// httpAddress returns the configured HTTP server address
func (s *Server) httpAddress() string {
	return ":" + s.Config.App.HTTPPort
}
