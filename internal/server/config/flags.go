package config

import (
	"flag"

	"github.com/dmitrijs2005/footsteps/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":4000")
//	-g string     gRPC health bind address (empty disables)
//	-d string     database DSN
//	-p            production mode: serve the compiled front-end
//	-s string     static assets directory
//	-t duration   database connect timeout
//	-i duration   idle connection timeout
//	-m int        max open database connections
//	-w duration   graceful shutdown timeout
//	-k duration   gRPC health check interval
//	-f string     log format (slog, zap)
//	-l string     log level
//	-o            export traces to stdout
//
// Only these flags are read; anything else in args is ignored.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args,
		[]string{"-a", "-g", "-d", "-s", "-t", "-i", "-m", "-w", "-k", "-f", "-l"},
		[]string{"-p", "-o"},
	)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.GRPCHealthAddr, "g", config.GRPCHealthAddr, "address and port to run gRPC health server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.BoolVar(&config.Production, "p", config.Production, "production mode")
	fs.StringVar(&config.StaticDir, "s", config.StaticDir, "static assets directory")
	fs.DurationVar(&config.ConnectTimeout, "t", config.ConnectTimeout, "database connect timeout")
	fs.DurationVar(&config.IdleTimeout, "i", config.IdleTimeout, "idle connection timeout")
	fs.IntVar(&config.MaxOpenConns, "m", config.MaxOpenConns, "max open database connections")
	fs.DurationVar(&config.ShutdownTimeout, "w", config.ShutdownTimeout, "graceful shutdown timeout")
	fs.DurationVar(&config.HealthCheckInterval, "k", config.HealthCheckInterval, "gRPC health check interval")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (slog, zap)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.TraceStdout, "o", config.TraceStdout, "export traces to stdout")

	return fs.Parse(args)
}
