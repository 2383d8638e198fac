package config

import (
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/dmitrijs2005/footsteps/internal/flagx"
	"github.com/dmitrijs2005/footsteps/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "5s" style
// strings or integer nanoseconds. Pointer fields distinguish "false" from
// "not set".
type JsonConfig struct {
	EndpointAddrHTTP    string         `json:"endpoint_addr_http"`
	GRPCHealthAddr      string         `json:"grpc_health_addr"`
	DatabaseDSN         string         `json:"database_dsn"`
	Production          *bool          `json:"production"`
	StaticDir           string         `json:"static_dir"`
	ConnectTimeout      timex.Duration `json:"connect_timeout"`
	IdleTimeout         timex.Duration `json:"idle_timeout"`
	MaxOpenConns        int            `json:"max_open_conns"`
	ShutdownTimeout     timex.Duration `json:"shutdown_timeout"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
	LogFormat           string         `json:"log_format"`
	LogLevel            string         `json:"log_level"`
	TraceStdout         *bool          `json:"trace_stdout"`
}

// parseJson overlays values from the JSON file named by -c/-config. Fields
// absent from the file keep their current values. No flag, no change.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.GRPCHealthAddr, c.GRPCHealthAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.StaticDir, c.StaticDir)
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.LogLevel, c.LogLevel)

	if c.Production != nil {
		config.Production = *c.Production
	}
	if c.TraceStdout != nil {
		config.TraceStdout = *c.TraceStdout
	}
	if c.MaxOpenConns > 0 {
		config.MaxOpenConns = c.MaxOpenConns
	}

	setDuration(&config.ConnectTimeout, c.ConnectTimeout)
	setDuration(&config.IdleTimeout, c.IdleTimeout)
	setDuration(&config.ShutdownTimeout, c.ShutdownTimeout)
	setDuration(&config.HealthCheckInterval, c.HealthCheckInterval)

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration > 0 {
		*dst = v.Duration
	}
}
