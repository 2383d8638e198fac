package config

import "strings"

// parseEnv applies the variables a PaaS usually injects:
//
//	DATABASE_URL       database DSN
//	PORT               HTTP port, bound on all interfaces
//	APP_ENV, NODE_ENV  "production" enables static asset serving
//	STATIC_DIR         compiled front-end directory
//	GRPC_HEALTH_ADDR   gRPC health bind address
//	LOG_FORMAT         slog or zap
//	LOG_LEVEL          debug, info, warn, error
//
// APP_ENV takes precedence over NODE_ENV.
func parseEnv(config *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("DATABASE_URL"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		config.EndpointAddrHTTP = ":" + v
	}

	for _, name := range []string{"APP_ENV", "NODE_ENV"} {
		if v, ok := lookup(name); ok && v != "" {
			config.Production = strings.EqualFold(v, "production")
			break
		}
	}

	if v, ok := lookup("STATIC_DIR"); ok && v != "" {
		config.StaticDir = v
	}
	if v, ok := lookup("GRPC_HEALTH_ADDR"); ok {
		config.GRPCHealthAddr = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		config.LogFormat = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		config.LogLevel = v
	}
}
