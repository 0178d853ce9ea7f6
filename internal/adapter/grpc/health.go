package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UserServiceName is the service name reported by the health service for the registration API.
const UserServiceName = "student.v1.UserService"

// HealthService exposes grpc.health.v1.Health for the student registration API.
type HealthService struct {
	srv *health.Server
}

// NewHealthService creates a health service reporting SERVING for the overall server and the user service.
func NewHealthService() *HealthService {
	srv := health.NewServer()
	srv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	srv.SetServingStatus(UserServiceName, healthpb.HealthCheckResponse_SERVING)
	return &HealthService{srv: srv}
}

// Register attaches the health service to a gRPC server.
func (h *HealthService) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.srv)
}

// Shutdown flips every service to NOT_SERVING. Later status updates are ignored.
func (h *HealthService) Shutdown() {
	h.srv.Shutdown()
}
