package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	grpcadapter "student-registration-service/internal/adapter/grpc"
	"student-registration-service/internal/adapter/ratelimit"
)

func TestSetupGRPC_HealthNotRateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l := zaptest.NewLogger(t)
	limiter := ratelimit.New(client, ratelimit.Config{
		Enabled:           true,
		RequestsPerSecond: 0.001,
		BurstCapacity:     1,
	}, l)

	lis := bufconn.Listen(1024 * 1024)
	srv := SetupGRPC(grpcadapter.NewHealthService(), limiter, l)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hc := healthpb.NewHealthClient(conn)
	for i := 0; i < 3; i++ {
		resp, err := hc.Check(ctx, &healthpb.HealthCheckRequest{})
		require.NoError(t, err, "check %d", i)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}
}
