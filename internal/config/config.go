// Package config loads server settings from TOML or YAML files
package config

import (
	"os"
	"time"

	"github.com/KirkDiggler/hexpath/internal/errors"
)

// EnvRedisAddr overrides Redis.Endpoints with a single address
const EnvRedisAddr = "HEXPATH_REDIS_ADDR"

// Config is the full server configuration
type Config struct {
	Server    Server    `toml:"server" yaml:"server"`
	Redis     Redis     `toml:"redis" yaml:"redis"`
	RateLimit RateLimit `toml:"rate_limit" yaml:"rate_limit"`
	Log       Log       `toml:"log" yaml:"log"`
}

// Server configures the listeners
type Server struct {
	GRPCPort    int      `toml:"grpc_port" yaml:"grpc_port"`
	HTTPPort    int      `toml:"http_port" yaml:"http_port"`
	CORSOrigins []string `toml:"cors_origins" yaml:"cors_origins"`

	// TrustProxy keys rate limits by X-Forwarded-For
	TrustProxy bool `toml:"trust_proxy" yaml:"trust_proxy"`
}

// Redis configures the rate limit store. No endpoints means counters are
// kept in process memory.
type Redis struct {
	Endpoints  []string `toml:"endpoints" yaml:"endpoints"`
	MasterName string   `toml:"master_name" yaml:"master_name"`
	UseTLS     bool     `toml:"use_tls" yaml:"use_tls"`
}

// RateLimit configures request throttling. Zero Requests disables the HTTP
// limiter and zero GRPCRate disables the gRPC one.
type RateLimit struct {
	Requests  int      `toml:"requests" yaml:"requests"`
	Window    Duration `toml:"window" yaml:"window"`
	GRPCRate  float64  `toml:"grpc_rate" yaml:"grpc_rate"`
	GRPCBurst int      `toml:"grpc_burst" yaml:"grpc_burst"`
}

// Log configures the slog handler
type Log struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Server: Server{
			GRPCPort:    50051,
			HTTPPort:    8000,
			CORSOrigins: []string{"*"},
		},
		RateLimit: RateLimit{
			Requests:  120,
			Window:    Duration(time.Minute),
			GRPCRate:  50,
			GRPCBurst: 100,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// ApplyEnv applies environment overrides
func (c *Config) ApplyEnv() {
	if addr := os.Getenv(EnvRedisAddr); addr != "" {
		c.Redis.Endpoints = []string{addr}
	}
}

// Validate checks ports, limits and log settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.grpc_port", c.Server.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("server.http_port", c.Server.HTTPPort, 1, 65535, vb)
	if c.Server.GRPCPort == c.Server.HTTPPort {
		vb.InvalidField("server.http_port", "must differ from grpc_port")
	}

	if c.RateLimit.Requests < 0 {
		vb.InvalidField("rate_limit.requests", "must not be negative")
	}
	if c.RateLimit.Requests > 0 && c.RateLimit.Window <= 0 {
		vb.InvalidField("rate_limit.window", "must be positive when requests is set")
	}
	if c.RateLimit.GRPCRate < 0 {
		vb.InvalidField("rate_limit.grpc_rate", "must not be negative")
	}
	if c.RateLimit.GRPCRate > 0 && c.RateLimit.GRPCBurst <= 0 {
		vb.InvalidField("rate_limit.grpc_burst", "must be positive when grpc_rate is set")
	}

	if c.Redis.MasterName != "" && len(c.Redis.Endpoints) == 0 {
		vb.RequiredField("redis.endpoints")
	}

	errors.ValidateEnum("log.level", c.Log.Level, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", c.Log.Format, []string{"text", "json"}, vb)

	return vb.Build()
}
