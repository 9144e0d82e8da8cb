package config_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hexpath/internal/config"
	"github.com/KirkDiggler/hexpath/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv(config.EnvRedisAddr, "")
}

func (s *ConfigTestSuite) write(name, body string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaultIsValid() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Assert().Equal(config.Default(), cfg)
	s.Assert().Equal(time.Minute, cfg.RateLimit.Window.Std())
}

func (s *ConfigTestSuite) TestLoadTOML() {
	path := s.write("hexpath.toml", `
[server]
grpc_port = 6000
http_port = 6001
cors_origins = ["https://example.com"]
trust_proxy = true

[redis]
endpoints = ["localhost:6379"]

[rate_limit]
requests = 10
window = "30s"

[log]
level = "debug"
format = "json"
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Assert().Equal(6000, cfg.Server.GRPCPort)
	s.Assert().Equal(6001, cfg.Server.HTTPPort)
	s.Assert().Equal([]string{"https://example.com"}, cfg.Server.CORSOrigins)
	s.Assert().True(cfg.Server.TrustProxy)
	s.Assert().Equal([]string{"localhost:6379"}, cfg.Redis.Endpoints)
	s.Assert().Equal(10, cfg.RateLimit.Requests)
	s.Assert().Equal(30*time.Second, cfg.RateLimit.Window.Std())
	s.Assert().Equal("debug", cfg.Log.Level)
	s.Assert().Equal("json", cfg.Log.Format)

	// untouched sections keep defaults
	s.Assert().Equal(config.Default().RateLimit.GRPCBurst, cfg.RateLimit.GRPCBurst)
}

func (s *ConfigTestSuite) TestLoadYAML() {
	path := s.write("hexpath.yaml", `
server:
  grpc_port: 7000
  http_port: 7001
rate_limit:
  requests: 5
  window: 2m
  grpc_rate: 0
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Assert().Equal(7000, cfg.Server.GRPCPort)
	s.Assert().False(cfg.Server.TrustProxy)
	s.Assert().Equal(5, cfg.RateLimit.Requests)
	s.Assert().Equal(2*time.Minute, cfg.RateLimit.Window.Std())
	s.Assert().Zero(cfg.RateLimit.GRPCRate)
	s.Assert().Equal("info", cfg.Log.Level)
}

func (s *ConfigTestSuite) TestLoadEmptyYAML() {
	cfg, err := config.Load(s.write("empty.yml", ""))
	s.Require().NoError(err)
	s.Assert().Equal(config.Default(), cfg)
}

func (s *ConfigTestSuite) TestLoadErrors() {
	testCases := []struct {
		name  string
		path  func() string
		check func(error) bool
	}{
		{
			name:  "missing file",
			path:  func() string { return filepath.Join(s.dir, "absent.toml") },
			check: errors.IsNotFound,
		},
		{
			name:  "unknown extension",
			path:  func() string { return s.write("hexpath.ini", "x=1") },
			check: errors.IsInvalidArgument,
		},
		{
			name:  "malformed toml",
			path:  func() string { return s.write("bad.toml", "[server\n") },
			check: errors.IsInvalidArgument,
		},
		{
			name:  "unknown toml key",
			path:  func() string { return s.write("extra.toml", "[server]\nport = 1\n") },
			check: errors.IsInvalidArgument,
		},
		{
			name:  "unknown yaml key",
			path:  func() string { return s.write("extra.yaml", "nope: true\n") },
			check: errors.IsInvalidArgument,
		},
		{
			name:  "bad duration",
			path:  func() string { return s.write("dur.toml", "[rate_limit]\nwindow = \"soon\"\n") },
			check: errors.IsInvalidArgument,
		},
		{
			name:  "invalid values",
			path:  func() string { return s.write("ports.toml", "[server]\ngrpc_port = 0\n") },
			check: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.Load(tc.path())
			s.Require().Error(err)
			s.Assert().Nil(cfg)
			s.Assert().True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *ConfigTestSuite) TestEnvOverride() {
	s.T().Setenv(config.EnvRedisAddr, "redis.internal:6380")

	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Assert().Equal([]string{"redis.internal:6380"}, cfg.Redis.Endpoints)
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"same ports", func(c *config.Config) { c.Server.HTTPPort = c.Server.GRPCPort }, "server.http_port"},
		{"port out of range", func(c *config.Config) { c.Server.GRPCPort = 70000 }, "server.grpc_port"},
		{"negative requests", func(c *config.Config) { c.RateLimit.Requests = -1 }, "rate_limit.requests"},
		{"zero window", func(c *config.Config) { c.RateLimit.Window = 0 }, "rate_limit.window"},
		{"negative grpc rate", func(c *config.Config) { c.RateLimit.GRPCRate = -1 }, "rate_limit.grpc_rate"},
		{"zero burst", func(c *config.Config) { c.RateLimit.GRPCBurst = 0 }, "rate_limit.grpc_burst"},
		{"sentinel without endpoints", func(c *config.Config) { c.Redis.MasterName = "primary" }, "redis.endpoints"},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *config.Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			s.Require().Error(err)
			s.Assert().Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestNewLogger() {
	var buf bytes.Buffer
	logger, level := config.NewLogger(config.Log{Level: "warn", Format: "json"}, &buf)

	logger.Info("hidden")
	s.Assert().Empty(buf.String())

	logger.Warn("shown", "cells", 9)
	s.Assert().Contains(buf.String(), `"msg":"shown"`)
	s.Assert().Contains(buf.String(), `"cells":9`)

	buf.Reset()
	level.Set(config.ParseLevel("debug"))
	logger.Debug("now visible")
	s.Assert().Contains(buf.String(), "now visible")
}

func (s *ConfigTestSuite) TestNewLoggerText() {
	var buf bytes.Buffer
	logger, _ := config.NewLogger(config.Log{Level: "info", Format: "text"}, &buf)

	logger.Info("hello", "source", "Hex(0,0,0)")
	s.Assert().True(strings.Contains(buf.String(), "msg=hello"))
}

func (s *ConfigTestSuite) TestWatchReloads() {
	path := s.write("hexpath.toml", "[log]\nlevel = \"info\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *config.Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- config.Watch(ctx, path, nil, func(cfg *config.Config) {
			changes <- cfg
		})
	}()

	s.Require().Eventually(func() bool {
		s.write("hexpath.toml", "[log]\nlevel = \"debug\"\n")
		select {
		case cfg := <-changes:
			return cfg.Log.Level == "debug"
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	s.Require().NoError(<-done)
}

func (s *ConfigTestSuite) TestWatchRequiresPath() {
	err := config.Watch(context.Background(), "", nil, func(*config.Config) {})
	s.Assert().True(errors.IsInvalidArgument(err))
}
