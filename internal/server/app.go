// Package server wires storage, the electricity service and the network
// endpoints together and runs them until a stop signal arrives.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/dmitrijs2005/footsteps/internal/logging"
	"github.com/dmitrijs2005/footsteps/internal/server/config"
	"github.com/dmitrijs2005/footsteps/internal/server/httpserver"
	"github.com/dmitrijs2005/footsteps/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/footsteps/internal/server/services"
	"github.com/dmitrijs2005/footsteps/internal/server/telemetry"

	gs "github.com/dmitrijs2005/footsteps/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	manager        repomanager.RepositoryManager
	service        *services.ElectricityService
	tracerProvider *sdktrace.TracerProvider
}

// NewApp connects to storage and initializes the counter. The returned error
// means storage could not be verified and the server must not start.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogFormat, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	m, err := repomanager.NewRepositoryManager(ctx, c.DatabaseDSN, repomanager.Options{
		ConnectTimeout: c.ConnectTimeout,
		IdleTimeout:    c.IdleTimeout,
		MaxOpenConns:   c.MaxOpenConns,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	logger.Info(ctx, "Database connected")

	es := services.NewElectricityService(m.Counter(), logger)
	if err := es.Initialize(ctx); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var traceOut io.Writer
	if c.TraceStdout {
		traceOut = os.Stdout
	}
	tp, err := telemetry.NewTracerProvider(traceOut)
	if err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}
	otel.SetTracerProvider(tp)

	return &App{config: c, logger: logger, manager: m, service: es, tracerProvider: tp}, nil
}

type runner struct {
	name string
	run  func(context.Context) error
}

func (app *App) startHTTPServer(ctx context.Context) error {
	router := httpserver.NewRouter(app.service, app.logger, httpserver.RouterOptions{
		Production: app.config.Production,
		StaticDir:  app.config.StaticDir,
	})
	s := httpserver.NewHTTPServer(app.config.EndpointAddrHTTP, router, app.logger, app.config.ShutdownTimeout)
	return s.Run(ctx)
}

func (app *App) startGRPCHealthServer(ctx context.Context) error {
	s := gs.NewHealthServer(app.config.GRPCHealthAddr, app.logger, app.service, app.config.HealthCheckInterval)
	return s.Run(ctx)
}

// Run serves until ctx is cancelled, SIGINT/SIGTERM/SIGQUIT arrives, or a
// server fails. Storage is closed before returning.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "production", app.config.Production)

	servers := []runner{{name: "HTTP server", run: app.startHTTPServer}}
	if app.config.GRPCHealthAddr != "" {
		servers = append(servers, runner{name: "gRPC health server", run: app.startGRPCHealthServer})
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, s := range servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.run(ctx); err != nil {
				app.logger.Error(ctx, s.name+" failed", "error", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
				mu.Unlock()
				cancelFunc()
			}
		}()
	}

	wg.Wait()
	app.shutdown()

	return errors.Join(errs...)
}

func (app *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := app.tracerProvider.Shutdown(ctx); err != nil {
		app.logger.Warn(ctx, "tracer shutdown failed", "error", err)
	}
	if err := app.manager.Close(); err != nil {
		app.logger.Warn(ctx, "closing storage failed", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
