// Package httpserver exposes the electricity counter over HTTP.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/footsteps/internal/logging"
)

type HTTPServer struct {
	address         string
	handler         http.Handler
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewHTTPServer(address string, h http.Handler, l logging.Logger, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		address:         address,
		handler:         h,
		logger:          l.With("module", "http_server"),
		shutdownTimeout: shutdownTimeout,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on listen until ctx is cancelled, then drains
// in-flight requests for at most the shutdown timeout.
func (s *HTTPServer) Serve(ctx context.Context, listen net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer shutdownCancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	err := srv.Serve(listen)
	if errors.Is(err, http.ErrServerClosed) {
		return <-stopped
	}

	cancel()
	<-stopped
	return err
}
