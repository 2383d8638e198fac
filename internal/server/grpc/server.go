// Package grpc serves the standard grpc.health.v1 service so orchestrators can
// probe the server without going through the HTTP API.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/footsteps/internal/common"
	"github.com/dmitrijs2005/footsteps/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger reports whether storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthServer struct {
	address  string
	checker  Pinger
	interval time.Duration
	logger   logging.Logger
	health   *health.Server
}

func NewHealthServer(a string, l logging.Logger, checker Pinger, interval time.Duration) *HealthServer {
	return &HealthServer{
		address:  a,
		checker:  checker,
		interval: interval,
		logger:   l.With("module", "grpc_health"),
		health:   health.NewServer(),
	}
}

// check pings storage once and publishes the result for both the overall
// server ("") and the named service.
func (s *HealthServer) check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := s.checker.Ping(ctx); err != nil {
		s.logger.Warn(ctx, "storage ping failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(common.ServiceName, status)
	return status
}

func (s *HealthServer) watch(ctx context.Context) {
	if s.interval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *HealthServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve answers health checks on listen until ctx is cancelled.
func (s *HealthServer) Serve(ctx context.Context, listen net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, s.health)

	s.check(ctx)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		s.watch(ctx)
		s.logger.Info(ctx, "Stopping gRPC health server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC health server", "address", listen.Addr().String())

	err := srv.Serve(listen)
	cancel()
	<-stopped
	return err
}
