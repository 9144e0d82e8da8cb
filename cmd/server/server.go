package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_ratelimit "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/ratelimit"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	apiv1alpha1 "github.com/KirkDiggler/hexpath/internal/api/v1alpha1"
	"github.com/KirkDiggler/hexpath/internal/config"
	"github.com/KirkDiggler/hexpath/internal/engine"
	"github.com/KirkDiggler/hexpath/internal/errors"
	"github.com/KirkDiggler/hexpath/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/hexpath/internal/handlers/rest"
	"github.com/KirkDiggler/hexpath/internal/metrics"
	"github.com/KirkDiggler/hexpath/internal/orchestrators/pathfinding"
	"github.com/KirkDiggler/hexpath/internal/pkg/clock"
	"github.com/KirkDiggler/hexpath/internal/pkg/idgen"
	"github.com/KirkDiggler/hexpath/internal/redis"
	"github.com/KirkDiggler/hexpath/internal/repositories/ratelimit"
)

const shutdownTimeout = 30 * time.Second

var (
	configPath string
	grpcPort   int
	httpPort   int
	redisAddr  string
	logLevel   string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long:  `Start the hexpath gRPC server and the HTTP/JSON server side by side.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "Path to a .toml or .yaml config file")
	serverCmd.Flags().IntVar(&grpcPort, "grpc-port", 50051, "gRPC server port")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 8000, "HTTP server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for rate limit counters")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// loadConfig reads the config file and applies flags the user set explicitly
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("grpc-port") {
		cfg.Server.GRPCPort = grpcPort
	}
	if flags.Changed("http-port") {
		cfg.Server.HTTPPort = httpPort
	}
	if flags.Changed("redis-addr") {
		cfg.Redis.Endpoints = []string{redisAddr}
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid flags")
	}
	return cfg, nil
}

// app holds the wired services shared by both listeners
type app struct {
	registry    *prometheus.Registry
	metrics     *metrics.Metrics
	pathfinding pathfinding.Service
	grpcHandler *v1alpha1.PathfinderHandler
	httpServer  *rest.Server
	redis       redis.Client
}

func (a *app) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	eng, err := engine.New(&engine.Config{Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	orch, err := pathfinding.NewOrchestrator(&pathfinding.Config{
		Engine:  eng,
		Metrics: m,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pathfinding orchestrator: %w", err)
	}

	grpcHandler, err := v1alpha1.NewPathfinderHandler(&v1alpha1.PathfinderHandlerConfig{
		PathfindingService: orch,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pathfinder handler: %w", err)
	}

	a := &app{
		registry:    registry,
		metrics:     m,
		pathfinding: orch,
		grpcHandler: grpcHandler,
	}

	var limitRepo ratelimit.Repository
	if cfg.RateLimit.Requests > 0 {
		limitRepo, err = a.rateLimitRepository(cfg, logger)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
	}

	httpServer, err := rest.NewServer(&rest.Config{
		PathfindingService: orch,
		RateLimitRepo:      limitRepo,
		RateLimit:          cfg.RateLimit.Requests,
		Window:             cfg.RateLimit.Window.Std(),
		TrustForwardedFor:  cfg.Server.TrustProxy,
		CORSOrigins:        cfg.Server.CORSOrigins,
		Gatherer:           registry,
		Metrics:            m,
		IDGenerator:        idgen.NewUUID(""),
		Logger:             logger,
	})
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to create http server: %w", err)
	}
	a.httpServer = httpServer

	return a, nil
}

// rateLimitRepository uses redis when endpoints are configured and process
// memory otherwise
func (a *app) rateLimitRepository(cfg *config.Config, logger *slog.Logger) (ratelimit.Repository, error) {
	if len(cfg.Redis.Endpoints) == 0 {
		logger.Info("rate limit counters kept in memory")
		return ratelimit.NewInMemory(clock.New()), nil
	}

	client, err := redis.Connect(cfg.Redis.Endpoints, cfg.Redis.MasterName, &redis.Options{
		UseTLS:      cfg.Redis.UseTLS,
		DialTimeout: 2 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	a.redis = client

	repo, err := ratelimit.NewRedisRepository(&ratelimit.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit repository: %w", err)
	}

	logger.Info("rate limit counters kept in redis", "endpoints", cfg.Redis.Endpoints)
	return repo, nil
}

func newGRPCServer(cfg *config.Config, a *app, logger *slog.Logger) (*grpc.Server, *health.Server) {
	logFunc := grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "recovered from panic", "panic", p)
		return errors.ToGRPCError(errors.Internal("internal error"))
	})

	unary := []grpc.UnaryServerInterceptor{
		grpc_logging.UnaryServerInterceptor(logFunc),
	}
	stream := []grpc.StreamServerInterceptor{
		grpc_logging.StreamServerInterceptor(logFunc),
	}
	if cfg.RateLimit.GRPCRate > 0 {
		limiter := newTokenBucket(cfg.RateLimit.GRPCRate, cfg.RateLimit.GRPCBurst, a.metrics)
		unary = append(unary, grpc_ratelimit.UnaryServerInterceptor(limiter))
		stream = append(stream, grpc_ratelimit.StreamServerInterceptor(limiter))
	}
	unary = append(unary, grpc_recovery.UnaryServerInterceptor(recoveryOpt))
	stream = append(stream, grpc_recovery.StreamServerInterceptor(recoveryOpt))

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
	)

	apiv1alpha1.RegisterPathfinderServiceServer(srv, a.grpcHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(apiv1alpha1.PathfinderServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, healthServer
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, level := config.NewLogger(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()

	if configPath != "" {
		go func() {
			err := config.Watch(ctx, configPath, logger, func(next *config.Config) {
				level.Set(config.ParseLevel(next.Log.Level))
				logger.Info("log level updated", "level", next.Log.Level)
			})
			if err != nil {
				logger.Warn("config watch stopped", "error", err)
			}
		}()
	}

	grpcLis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	grpcServer, healthServer := newGRPCServer(cfg, a, logger)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           a.httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		logger.Info("gRPC server starting", "port", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(grpcLis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		logger.Info("HTTP server starting", "port", cfg.Server.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal, gracefully stopping")
	case serveErr = <-errChan:
		logger.Error("server failed, shutting down", "error", serveErr)
	}

	shutdown(grpcServer, healthServer, httpServer, logger)
	return serveErr
}

func shutdown(grpcServer *grpc.Server, healthServer *health.Server, httpServer *http.Server, logger *slog.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	healthServer.Shutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown incomplete", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		logger.Info("servers stopped gracefully")
	}
}
